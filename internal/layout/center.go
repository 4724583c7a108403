package layout

import (
	"strings"

	"github.com/muesli/reflow/indent"
)

// Geometry is a terminal size in character cells.
type Geometry struct {
	Width  int
	Height int
}

// LeftPadding is the number of spaces that centers content of the given
// visible width. Never negative.
func LeftPadding(contentWidth, termWidth int) int {
	return max(0, (termWidth-contentWidth)/2)
}

// TopPadding is the number of blank rows that vertically centers a block of
// n lines. Wrapped lines are not accounted for: each line is one row.
func TopPadding(n, termHeight int) int {
	return max(0, (termHeight-n)/2)
}

// CenterBlock pads every line by the same amount, derived from the widest
// line, so the block keeps its silhouette.
func CenterBlock(lines []string, termWidth int) []string {
	n := LeftPadding(BlockWidth(lines), termWidth)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = pad(l, n)
	}
	return out
}

// CenterLine centers a single line on its own visible width.
func CenterLine(line string, termWidth int) string {
	return pad(line, LeftPadding(VisibleWidth(line), termWidth))
}

// CenterLines centers each line independently.
func CenterLines(lines []string, termWidth int) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = CenterLine(l, termWidth)
	}
	return out
}

// Compose stacks already padded lines under enough blank rows to center them
// vertically.
func Compose(lines []string, geom Geometry) string {
	top := TopPadding(len(lines), geom.Height)
	return strings.Repeat("\n", top) + strings.Join(lines, "\n")
}

// Text centers a (possibly multi-line) message, each line on its own width.
func Text(text string, geom Geometry) string {
	return Compose(CenterLines(strings.Split(text, "\n"), geom.Width), geom)
}

func pad(line string, n int) string {
	if n <= 0 {
		return line
	}
	if line == "" {
		return strings.Repeat(" ", n)
	}
	return indent.String(line, uint(n))
}
