// Package sound plays the completion chime.
package sound

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// DefaultFile is looked up next to the executable.
const DefaultFile = "done.wav"

// DefaultPath returns done.wav beside the running binary.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultFile
	}
	return filepath.Join(filepath.Dir(exe), DefaultFile)
}

// Load opens and decodes a WAV file. Closing the streamer closes the file.
func Load(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return streamer, format, nil
}

// bufferLen is the speaker buffer size, in playback time.
const bufferLen = time.Second / 10

// Play blocks until the file has been played to the end.
func Play(path string) error {
	streamer, format, err := Load(path)
	if err != nil {
		return err
	}
	defer streamer.Close()

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(bufferLen)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	defer speaker.Close()

	playAndDrain(streamer, speaker.Play, time.Sleep)
	return nil
}

// playAndDrain hands s to play and returns once s is exhausted and the last
// buffer of samples has had time to reach the device.
func playAndDrain(s beep.Streamer, play func(...beep.Streamer), sleep func(time.Duration)) {
	done := make(chan struct{})
	play(beep.Seq(s, beep.Callback(func() {
		close(done)
	})))
	<-done
	sleep(bufferLen)
}

// Chime plays path with play and reports the result to w. Failures are
// reported, never returned.
func Chime(w io.Writer, path string, play func(string) error) {
	fmt.Fprintln(w, "Playing:", path)
	if err := play(path); err != nil {
		fmt.Fprintln(w, "⚠️ Error:", err)
		return
	}
	fmt.Fprintln(w, "✅ Sound played successfully.")
}
