package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/max-pantom/work/internal/countdown"
)

// Run shows the timer on the alternate screen until it completes, the user
// quits, or ctx is cancelled, and returns the final report.
func Run(ctx context.Context, timer *countdown.Timer, r countdown.Renderer, logger *log.Logger) (countdown.Report, error) {
	clock := countdown.SystemClock{}
	p := tea.NewProgram(newModel(timer, r, clock, logger), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, tea.ErrInterrupted) {
		return timer.Report(clock.Now()), err
	}
	if m, ok := final.(model); ok && m.report != nil {
		return *m.report, nil
	}
	return timer.Interrupt(clock.Now()), nil
}
