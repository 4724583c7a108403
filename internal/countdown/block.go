package countdown

import (
	"fmt"
	"time"

	"github.com/max-pantom/work/internal/config"
	"github.com/max-pantom/work/internal/layout"
	"github.com/max-pantom/work/internal/style"
)

// Block is one frame: the art, then the quote, then the status line.
type Block struct {
	Art    []string
	Quote  string
	Status string
}

// Lines pads the frame for a terminal of the given width. The art keeps its
// shape; quote and status are centered on their own widths.
func (b Block) Lines(width int) []string {
	lines := layout.CenterBlock(b.Art, width)
	return append(lines,
		layout.CenterLine(b.Quote, width),
		layout.CenterLine(b.Status, width),
	)
}

// Render lays the frame out for geom.
func (b Block) Render(geom layout.Geometry) string {
	return layout.Compose(b.Lines(geom.Width), geom)
}

// Renderer turns timer state into styled text.
type Renderer struct {
	Palette *style.Palette
	Art     []string
}

// NewRenderer uses the skyline art.
func NewRenderer(p *style.Palette) Renderer {
	return Renderer{Palette: p, Art: Skyline()}
}

// Block builds the frame for a running tick.
func (r Renderer) Block(t *Timer, snap Snapshot) Block {
	return Block{
		Art:    r.Art,
		Quote:  r.Palette.Render(snap.Quote, style.Green),
		Status: r.Status(t.Start, t.End, snap.Remaining),
	}
}

// Status is "start | goal pending 1h 2m 3s | end".
func (r Renderer) Status(start, end time.Time, remaining time.Duration) string {
	return fmt.Sprintf("%s | goal pending %s | %s",
		r.Palette.Render(start.Format(config.TimeLayout), style.Purple, style.Underline),
		Countdown(remaining),
		r.Palette.Render(end.Format(config.TimeLayout), style.Purple),
	)
}

// Completion is the message shown once the run reaches its end.
func (r Renderer) Completion(rep Report) string {
	return fmt.Sprintf("%s | ✅ goal complete | %s",
		rep.Start.Format(config.TimeLayout),
		rep.At.Format(config.TimeLayout),
	)
}

// Interruption reports elapsed and remaining time at the moment of cancel.
func (r Renderer) Interruption(rep Report) string {
	msg := fmt.Sprintf("⚠️  Timer interrupted! ⚠️\nElapsed: %s\nRemaining: %s",
		Clock(rep.Elapsed), Clock(rep.Remaining))
	return r.Palette.Render(msg, style.Yellow)
}

// Final picks the closing message for a terminal report.
func (r Renderer) Final(rep Report) string {
	if rep.State == Interrupted {
		return r.Interruption(rep)
	}
	return r.Completion(rep)
}
