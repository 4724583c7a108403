// Package layout measures styled terminal text and centers it on screen.
package layout

import "github.com/charmbracelet/x/ansi"

// Strip removes terminal control sequences (colors, styles, cursor moves)
// from s, leaving only what would be printed.
func Strip(s string) string {
	return ansi.Strip(s)
}

// VisibleWidth returns the number of cells s occupies once rendered.
// Control sequences take no room; wide runes take two cells.
func VisibleWidth(s string) int {
	return ansi.StringWidth(s)
}

// BlockWidth is the visible width of the widest line.
func BlockWidth(lines []string) int {
	widest := 0
	for _, l := range lines {
		if w := VisibleWidth(l); w > widest {
			widest = w
		}
	}
	return widest
}
