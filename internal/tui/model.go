package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/max-pantom/work/internal/config"
	"github.com/max-pantom/work/internal/countdown"
	"github.com/max-pantom/work/internal/layout"
)

type tickMsg time.Time

const progressWidth = 48

type model struct {
	timer    *countdown.Timer
	renderer countdown.Renderer
	clock    countdown.Clock
	logger   *log.Logger

	tickRate time.Duration
	width    int
	height   int

	snap     countdown.Snapshot
	progress progress.Model
	report   *countdown.Report
}

func newModel(t *countdown.Timer, r countdown.Renderer, clock countdown.Clock, logger *log.Logger) model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := model{
		timer:    t,
		renderer: r,
		clock:    clock,
		logger:   logger,
		tickRate: config.TickInterval,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(progressWidth)),
	}
	m.advance(clock.Now())
	return m
}

func (m model) Init() tea.Cmd {
	if m.report != nil {
		return tea.Quit
	}
	return tick(m.tickRate)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			rep := m.timer.Interrupt(m.clock.Now())
			m.report = &rep
			m.logger.Info("timer interrupted", "elapsed", countdown.Clock(rep.Elapsed))
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(progressWidth, max(0, msg.Width-4))
	case tickMsg:
		if m.advance(time.Time(msg)) {
			return m, tea.Quit
		}
		return m, tick(m.tickRate)
	}
	return m, nil
}

// advance ticks the timer and reports whether it just completed.
func (m *model) advance(now time.Time) bool {
	m.snap = m.timer.Tick(now)
	if m.snap.QuoteChanged {
		m.logger.Debug("quote rotated", "quote", m.snap.Quote)
	}
	if m.snap.State != countdown.Complete {
		return false
	}
	rep := m.timer.Report(now)
	m.report = &rep
	return true
}

func (m model) geometry() layout.Geometry {
	if m.width > 0 && m.height > 0 {
		return layout.Geometry{Width: m.width, Height: m.height}
	}
	return layout.Geometry{Width: config.FallbackWidth, Height: config.FallbackHeight}
}

func (m model) View() string {
	geom := m.geometry()
	if m.report != nil {
		return layout.Text(m.renderer.Final(*m.report), geom)
	}

	lines := m.renderer.Block(m.timer, m.snap).Lines(geom.Width)
	bar := m.progress.ViewAs(m.timer.Progress(m.snap.Now))
	lines = append(lines, "", layout.CenterLine(bar, geom.Width))
	return layout.Compose(lines, geom)
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
