package countdown

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func assertQuoteWindow(t *testing.T, from, next time.Time) {
	t.Helper()
	assert.False(t, next.Before(from.Add(900*time.Second)), "next %v too early", next)
	assert.False(t, next.After(from.Add(1800*time.Second)), "next %v too late", next)
}

func TestNewTimer(t *testing.T) {
	tm := NewTimer(t0, 4*time.Hour, Quotes, seeded())
	assert.Equal(t, Running, tm.State())
	assert.Equal(t, t0.Add(14400*time.Second), tm.End)
	assert.Contains(t, Quotes, tm.Quote)
	assertQuoteWindow(t, t0, tm.NextQuote)
}

func TestTickCompletesAtEnd(t *testing.T) {
	tm := NewTimer(t0, 5*time.Second, Quotes, seeded())

	snap := tm.Tick(t0.Add(4 * time.Second))
	assert.Equal(t, Running, snap.State)
	assert.Equal(t, time.Second, snap.Remaining)

	snap = tm.Tick(t0.Add(5 * time.Second))
	assert.Equal(t, Complete, snap.State)
	assert.Equal(t, Complete, tm.State())

	snap = tm.Tick(t0.Add(6 * time.Second))
	assert.Equal(t, Complete, snap.State)
}

func TestQuoteRotatesOnlyAfterThreshold(t *testing.T) {
	tm := NewTimer(t0, 24*time.Hour, Quotes, seeded())

	for i := 0; i < 20; i++ {
		due := tm.NextQuote

		snap := tm.Tick(due.Add(-time.Second))
		require.False(t, snap.QuoteChanged, "rotation %d fired early", i)
		require.Equal(t, due, tm.NextQuote)

		snap = tm.Tick(due)
		require.True(t, snap.QuoteChanged, "rotation %d missed", i)
		assert.Contains(t, Quotes, snap.Quote)
		assert.Equal(t, tm.Quote, snap.Quote)
		assertQuoteWindow(t, due, tm.NextQuote)
	}
}

func TestQuoteRotationIsDeterministicForSeed(t *testing.T) {
	a := NewTimer(t0, time.Hour, Quotes, seeded())
	b := NewTimer(t0, time.Hour, Quotes, seeded())
	assert.Equal(t, a.Quote, b.Quote)
	assert.Equal(t, a.NextQuote, b.NextQuote)
}

func TestQuoteDelayBounds(t *testing.T) {
	rng := seeded()
	for i := 0; i < 5000; i++ {
		d := QuoteDelay(rng)
		require.GreaterOrEqual(t, d, 900*time.Second)
		require.LessOrEqual(t, d, 1800*time.Second)
		require.Zero(t, d%time.Second)
	}
}

func TestInterrupt(t *testing.T) {
	tm := NewTimer(t0, 10*time.Second, Quotes, seeded())
	tm.Tick(t0)

	rep := tm.Interrupt(t0.Add(2 * time.Second))
	assert.Equal(t, Interrupted, rep.State)
	assert.Equal(t, 2*time.Second, rep.Elapsed)
	assert.Equal(t, 8*time.Second, rep.Remaining)

	snap := tm.Tick(t0.Add(3 * time.Second))
	assert.Equal(t, Interrupted, snap.State)
}

func TestInterruptAfterCompleteKeepsState(t *testing.T) {
	tm := NewTimer(t0, time.Second, Quotes, seeded())
	tm.Tick(t0.Add(time.Second))
	rep := tm.Interrupt(t0.Add(2 * time.Second))
	assert.Equal(t, Complete, rep.State)
	assert.Zero(t, rep.Remaining)
}

func TestProgress(t *testing.T) {
	tm := NewTimer(t0, 10*time.Second, Quotes, seeded())
	assert.InDelta(t, 0, tm.Progress(t0.Add(-time.Second)), 1e-9)
	assert.InDelta(t, 0.25, tm.Progress(t0.Add(2500*time.Millisecond)), 1e-9)
	assert.InDelta(t, 1, tm.Progress(t0.Add(time.Minute)), 1e-9)
}

func TestCountdown(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{3661 * time.Second, "1h 1m 1s"},
		{14400 * time.Second, "4h 0m 0s"},
		{59*time.Second + 999*time.Millisecond, "0h 0m 59s"},
		{0, "0h 0m 0s"},
		{-time.Second, "0h 0m 0s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Countdown(tt.d), "%v", tt.d)
	}
}

func TestClock(t *testing.T) {
	assert.Equal(t, "0:00:02", Clock(2*time.Second+400*time.Millisecond))
	assert.Equal(t, "3:59:58", Clock(4*time.Hour-2*time.Second))
	assert.Equal(t, "0:00:00", Clock(-time.Minute))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "RUNNING", Running.String())
	assert.Equal(t, "COMPLETE", Complete.String())
	assert.Equal(t, "INTERRUPTED", Interrupted.String())
	assert.Equal(t, "State(9)", State(9).String())
}

func TestSkyline(t *testing.T) {
	art := Skyline()
	require.Len(t, art, 14)
	assert.Equal(t, "", art[12])
	assert.Equal(t, "", art[13])
	assert.Contains(t, art[0], "|")
}
