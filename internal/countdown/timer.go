// Package countdown runs the focus timer: a state machine advanced once per
// tick, and the loop that redraws the screen around it.
package countdown

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/max-pantom/work/internal/config"
)

// State of a run. Complete and Interrupted are terminal.
type State int

const (
	Running State = iota
	Complete
	Interrupted
)

func (s State) String() string {
	switch s {
	case Running:
		return "RUNNING"
	case Complete:
		return "COMPLETE"
	case Interrupted:
		return "INTERRUPTED"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Timer holds everything that changes between ticks.
type Timer struct {
	Start     time.Time
	End       time.Time
	Quote     string
	NextQuote time.Time

	state  State
	quotes []string
	rng    *rand.Rand
}

// Snapshot is what one tick produced.
type Snapshot struct {
	State        State
	Now          time.Time
	Remaining    time.Duration
	Quote        string
	QuoteChanged bool
}

// Report describes a run that reached a terminal state.
type Report struct {
	State     State
	Start     time.Time
	End       time.Time
	At        time.Time
	Elapsed   time.Duration
	Remaining time.Duration
}

// NewTimer starts a run of duration d at start. quotes must not be empty.
func NewTimer(start time.Time, d time.Duration, quotes []string, rng *rand.Rand) *Timer {
	t := &Timer{
		Start:  start,
		End:    start.Add(d),
		quotes: quotes,
		rng:    rng,
	}
	t.rotate(start)
	return t
}

// State returns the current state.
func (t *Timer) State() State {
	return t.state
}

// Remaining is the time left at now, never negative.
func (t *Timer) Remaining(now time.Time) time.Duration {
	return max(0, t.End.Sub(now))
}

// Tick advances the timer to now. Once terminal, further ticks only report
// the state.
func (t *Timer) Tick(now time.Time) Snapshot {
	snap := Snapshot{State: t.state, Now: now, Quote: t.Quote}
	if t.state != Running {
		return snap
	}
	remaining := t.End.Sub(now)
	if remaining <= 0 {
		t.state = Complete
		snap.State = Complete
		return snap
	}
	snap.Remaining = remaining
	if !now.Before(t.NextQuote) {
		t.rotate(now)
		snap.Quote = t.Quote
		snap.QuoteChanged = true
	}
	return snap
}

// Interrupt stops a running timer and reports elapsed and remaining time at
// now. Interrupting a finished timer leaves its state alone.
func (t *Timer) Interrupt(now time.Time) Report {
	if t.state == Running {
		t.state = Interrupted
	}
	return t.report(now)
}

// Report summarizes the run as of now.
func (t *Timer) Report(now time.Time) Report {
	return t.report(now)
}

func (t *Timer) report(now time.Time) Report {
	return Report{
		State:     t.state,
		Start:     t.Start,
		End:       t.End,
		At:        now,
		Elapsed:   max(0, now.Sub(t.Start)),
		Remaining: t.Remaining(now),
	}
}

// Progress is the elapsed fraction of the run, in [0, 1].
func (t *Timer) Progress(now time.Time) float64 {
	total := t.End.Sub(t.Start)
	if total <= 0 {
		return 1
	}
	return min(1, max(0, float64(now.Sub(t.Start))/float64(total)))
}

func (t *Timer) rotate(now time.Time) {
	t.Quote = t.quotes[t.rng.IntN(len(t.quotes))]
	t.NextQuote = now.Add(QuoteDelay(t.rng))
}

// QuoteDelay draws the time until the next quote change, uniformly in whole
// seconds between config.QuoteMinInterval and config.QuoteMaxInterval.
func QuoteDelay(rng *rand.Rand) time.Duration {
	lo := int64(config.QuoteMinInterval / time.Second)
	hi := int64(config.QuoteMaxInterval / time.Second)
	return time.Duration(lo+rng.Int64N(hi-lo+1)) * time.Second
}

// Countdown renders d truncated to whole seconds, e.g. "1h 1m 1s".
func Countdown(d time.Duration) string {
	total := int64(max(0, d) / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}

// Clock renders d truncated to whole seconds as H:MM:SS.
func Clock(d time.Duration) string {
	total := int64(max(0, d) / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
