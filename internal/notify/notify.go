package notify

import (
	"os/exec"
	"runtime"
)

// Send best-effort desktop notification. Falls back silently if unavailable.
func Send(title, message string) error {
	cmd := Command(runtime.GOOS, title, message)
	if cmd == nil {
		return nil
	}
	return cmd.Run()
}

// Command builds the notifier invocation for goos, or nil when the platform
// has none.
func Command(goos, title, message string) *exec.Cmd {
	switch goos {
	case "darwin":
		// osascript native notification
		return exec.Command("osascript", "-e", `display notification "`+escapeQuotes(message)+`" with title "`+escapeQuotes(title)+`"`)
	case "linux":
		return exec.Command("notify-send", title, message)
	default:
		return nil
	}
}

func escapeQuotes(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '"' {
			out = append(out, '\\', '"')
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}
