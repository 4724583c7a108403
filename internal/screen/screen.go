// Package screen owns the terminal: its size, clearing it, and the cursor.
package screen

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/max-pantom/work/internal/config"
	"github.com/max-pantom/work/internal/layout"
)

// Terminal writes frames to an output stream.
type Terminal struct {
	w      io.Writer
	fd     int
	tty    bool
	goos   string
	out    *termenv.Output
	logger *log.Logger

	// run executes the platform clear command.
	run func(*exec.Cmd) error
}

// New wraps f, usually os.Stdout.
func New(f *os.File, logger *log.Logger) *Terminal {
	fd := f.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return newTerminal(f, int(fd), tty, logger)
}

// NewWriter wraps a plain writer. Its size is always the fallback and it is
// never treated as a terminal.
func NewWriter(w io.Writer, logger *log.Logger) *Terminal {
	return newTerminal(w, -1, false, logger)
}

func newTerminal(w io.Writer, fd int, tty bool, logger *log.Logger) *Terminal {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Terminal{
		w:      w,
		fd:     fd,
		tty:    tty,
		goos:   runtime.GOOS,
		out:    termenv.NewOutput(w),
		logger: logger,
		run:    (*exec.Cmd).Run,
	}
}

// Size reports the terminal size, or 80x24 when it cannot be queried.
func (t *Terminal) Size() layout.Geometry {
	fallback := layout.Geometry{Width: config.FallbackWidth, Height: config.FallbackHeight}
	if t.fd < 0 {
		return fallback
	}
	w, h, err := term.GetSize(t.fd)
	if err != nil || w <= 0 || h <= 0 {
		t.logger.Debug("terminal size unavailable, using fallback", "err", err,
			"width", fallback.Width, "height", fallback.Height)
		return fallback
	}
	return layout.Geometry{Width: w, Height: h}
}

// ClearCommand is the screen-clear command for goos.
func ClearCommand(goos string) []string {
	if goos == "windows" {
		return []string{"cmd", "/c", "cls"}
	}
	return []string{"clear"}
}

// Clear wipes the screen with the platform command. When the output is not a
// terminal, or the command fails, escape codes are written instead.
func (t *Terminal) Clear() {
	if t.tty {
		argv := ClearCommand(t.goos)
		cmd := exec.Command(argv[0], argv[1:]...)
		cmd.Stdout = t.w
		err := t.run(cmd)
		if err == nil {
			return
		}
		t.logger.Debug("clear command failed", "cmd", argv[0], "err", err)
	}
	t.out.ClearScreen()
}

// Print writes s followed by a newline.
func (t *Terminal) Print(s string) {
	fmt.Fprintln(t.w, s)
}

// Acquire hides the cursor. The returned release resets text attributes and
// shows the cursor again; it is safe to call more than once.
func (t *Terminal) Acquire() (release func()) {
	t.out.HideCursor()
	var once sync.Once
	return func() {
		once.Do(func() {
			t.out.Reset()
			fmt.Fprintln(t.w)
			t.out.ShowCursor()
		})
	}
}
