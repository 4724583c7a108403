package countdown

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/max-pantom/work/internal/config"
	"github.com/max-pantom/work/internal/layout"
)

// Display is the screen the loop draws on. Size is read again every tick.
type Display interface {
	Size() layout.Geometry
	Clear()
	Print(s string)
}

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// Waiter blocks for up to d, returning early with an error when ctx is
// cancelled.
type Waiter interface {
	Wait(ctx context.Context, d time.Duration) error
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// SleepWaiter waits on a real timer.
type SleepWaiter struct{}

func (SleepWaiter) Wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Loop redraws the timer once per tick until it completes or ctx is
// cancelled.
type Loop struct {
	Timer    *Timer
	Display  Display
	Clock    Clock
	Waiter   Waiter
	Renderer Renderer
	Logger   *log.Logger

	// OnFinish, when set, is called once with the terminal report.
	OnFinish func(Report)
}

// Run drives the timer. Cancellation is not an error: it ends the run in the
// Interrupted state.
func (l *Loop) Run(ctx context.Context) (Report, error) {
	logger := l.logger()
	logger.Info("timer started",
		"start", l.Timer.Start.Format(config.TimeLayout),
		"end", l.Timer.End.Format(config.TimeLayout))

	for {
		if ctx.Err() != nil {
			return l.interrupt(), nil
		}

		now := l.Clock.Now()
		snap := l.Timer.Tick(now)
		if snap.State == Complete {
			return l.finish(l.Timer.Report(now)), nil
		}
		if snap.QuoteChanged {
			logger.Debug("quote rotated", "quote", snap.Quote,
				"next", l.Timer.NextQuote.Format(config.TimeLayout))
		}

		l.Display.Clear()
		l.Display.Print(l.Renderer.Block(l.Timer, snap).Render(l.Display.Size()))

		if err := l.Waiter.Wait(ctx, config.TickInterval); err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return l.interrupt(), nil
			}
			return l.Timer.Report(l.Clock.Now()), fmt.Errorf("wait for next tick: %w", err)
		}
	}
}

func (l *Loop) interrupt() Report {
	return l.finish(l.Timer.Interrupt(l.Clock.Now()))
}

func (l *Loop) finish(rep Report) Report {
	l.Display.Clear()
	l.Display.Print(layout.Text(l.Renderer.Final(rep), l.Display.Size()))
	l.logger().Info("timer finished", "state", rep.State,
		"elapsed", Clock(rep.Elapsed), "remaining", Clock(rep.Remaining))
	if l.OnFinish != nil {
		l.OnFinish(rep)
	}
	return rep
}

func (l *Loop) logger() *log.Logger {
	if l.Logger == nil {
		l.Logger = log.New(io.Discard)
	}
	return l.Logger
}
