package screen

import (
	"bytes"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/max-pantom/work/internal/layout"
)

func TestClearCommand(t *testing.T) {
	assert.Equal(t, []string{"cmd", "/c", "cls"}, ClearCommand("windows"))
	assert.Equal(t, []string{"clear"}, ClearCommand("linux"))
	assert.Equal(t, []string{"clear"}, ClearCommand("darwin"))
}

func TestSizeFallback(t *testing.T) {
	term := NewWriter(&bytes.Buffer{}, nil)
	assert.Equal(t, layout.Geometry{Width: 80, Height: 24}, term.Size())
}

func TestSizeFallbackOnBadDescriptor(t *testing.T) {
	term := newTerminal(&bytes.Buffer{}, 987654, true, nil)
	assert.Equal(t, layout.Geometry{Width: 80, Height: 24}, term.Size())
}

func TestAcquireRelease(t *testing.T) {
	var buf bytes.Buffer
	term := NewWriter(&buf, nil)

	release := term.Acquire()
	assert.Equal(t, "\x1b[?25l", buf.String())

	buf.Reset()
	release()
	assert.Equal(t, "\x1b[0m\n\x1b[?25h", buf.String())

	buf.Reset()
	release()
	assert.Empty(t, buf.String())
}

func TestClearWithoutTerminalWritesEscapes(t *testing.T) {
	var buf bytes.Buffer
	term := NewWriter(&buf, nil)
	term.run = func(*exec.Cmd) error {
		t.Fatal("clear command must not run without a terminal")
		return nil
	}
	term.Clear()
	assert.Equal(t, "\x1b[2J\x1b[1;1H", buf.String())
}

func TestClearRunsPlatformCommand(t *testing.T) {
	var buf bytes.Buffer
	term := newTerminal(&buf, -1, true, nil)
	term.goos = "windows"

	var ran []string
	term.run = func(c *exec.Cmd) error {
		ran = c.Args
		assert.Same(t, &buf, c.Stdout)
		return nil
	}
	term.Clear()
	require.Equal(t, []string{"cmd", "/c", "cls"}, ran)
	assert.Empty(t, buf.String())
}

func TestClearFallsBackWhenCommandFails(t *testing.T) {
	var buf bytes.Buffer
	term := newTerminal(&buf, -1, true, nil)
	term.run = func(*exec.Cmd) error { return errors.New("no clear here") }
	term.Clear()
	assert.Equal(t, "\x1b[2J\x1b[1;1H", buf.String())
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf, nil).Print("\n\n  hello")
	assert.Equal(t, "\n\n  hello\n", buf.String())
}
