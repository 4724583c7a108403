// Package style maps named style tokens onto terminal escape sequences.
// Tokens are resolved when text is rendered, against the color profile of
// the output they are written to.
package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Token names a color or text attribute.
type Token int

const (
	Black Token = iota
	Dark1
	Dark2
	Dark3
	Dark4
	Gray
	Light0
	Light1
	Light2
	Light3
	Red
	Green
	Yellow
	Blue
	Purple
	Aqua
	Orange

	Bold
	Underline
)

var tokenNames = [...]string{
	Black:     "black",
	Dark1:     "dark1",
	Dark2:     "dark2",
	Dark3:     "dark3",
	Dark4:     "dark4",
	Gray:      "gray",
	Light0:    "light0",
	Light1:    "light1",
	Light2:    "light2",
	Light3:    "light3",
	Red:       "red",
	Green:     "green",
	Yellow:    "yellow",
	Blue:      "blue",
	Purple:    "purple",
	Aqua:      "aqua",
	Orange:    "orange",
	Bold:      "bold",
	Underline: "underline",
}

// 256-color indexes of the gruvbox-like palette.
var colorCodes = map[Token]lipgloss.Color{
	Black:  "234",
	Dark1:  "235",
	Dark2:  "236",
	Dark3:  "237",
	Dark4:  "239",
	Gray:   "244",
	Light0: "223",
	Light1: "230",
	Light2: "229",
	Light3: "180",
	Red:    "167",
	Green:  "142",
	Yellow: "214",
	Blue:   "109",
	Purple: "175",
	Aqua:   "108",
	Orange: "208",
}

func (t Token) String() string {
	if t < 0 || int(t) >= len(tokenNames) {
		return fmt.Sprintf("token(%d)", int(t))
	}
	return tokenNames[t]
}

// IsColor reports whether t is a foreground color rather than an attribute.
func (t Token) IsColor() bool {
	_, ok := colorCodes[t]
	return ok
}

// Palette renders tokens for one output.
type Palette struct {
	r *lipgloss.Renderer
}

// NewPalette detects the color profile of w. With noColor set, or when w is
// not a terminal, rendering produces plain text.
func NewPalette(w io.Writer, noColor bool) *Palette {
	if noColor {
		return NewPaletteWithProfile(w, termenv.Ascii)
	}
	return &Palette{r: lipgloss.NewRenderer(w)}
}

// NewPaletteWithProfile forces a color profile, regardless of the output.
func NewPaletteWithProfile(w io.Writer, p termenv.Profile) *Palette {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(p)
	return &Palette{r: r}
}

// Profile is the color profile tokens resolve against.
func (p *Palette) Profile() termenv.Profile {
	return p.r.ColorProfile()
}

// Style builds the lipgloss style for a set of tokens.
func (p *Palette) Style(tokens ...Token) lipgloss.Style {
	s := p.r.NewStyle()
	for _, t := range tokens {
		switch {
		case t == Bold:
			s = s.Bold(true)
		case t == Underline:
			s = s.Underline(true)
		case t.IsColor():
			s = s.Foreground(colorCodes[t])
		}
	}
	return s
}

// Render styles text. Lines are rendered one by one so that short lines are
// not padded out to the widest one.
func (p *Palette) Render(text string, tokens ...Token) string {
	if len(tokens) == 0 {
		return text
	}
	st := p.Style(tokens...)
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if l == "" {
			continue
		}
		lines[i] = st.Render(l)
	}
	return strings.Join(lines, "\n")
}
