package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandLinux(t *testing.T) {
	cmd := Command("linux", "work", "goal complete")
	require.NotNil(t, cmd)
	assert.Equal(t, []string{"notify-send", "work", "goal complete"}, cmd.Args)
}

func TestCommandDarwinEscapesQuotes(t *testing.T) {
	cmd := Command("darwin", `say "hi"`, `elapsed "2s"`)
	require.NotNil(t, cmd)
	require.Len(t, cmd.Args, 3)
	assert.Equal(t, `display notification "elapsed \"2s\"" with title "say \"hi\""`, cmd.Args[2])
}

func TestCommandUnsupported(t *testing.T) {
	assert.Nil(t, Command("plan9", "work", "done"))
}

func TestEscapeQuotes(t *testing.T) {
	assert.Equal(t, `a\"b`, escapeQuotes(`a"b`))
	assert.Equal(t, "plain", escapeQuotes("plain"))
}
