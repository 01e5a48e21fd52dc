package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mapointeuse/pointeuse/internal/engine"
	apperrors "github.com/mapointeuse/pointeuse/internal/errors"
	"github.com/mapointeuse/pointeuse/internal/model"
	"github.com/mapointeuse/pointeuse/internal/stats"
	"github.com/mapointeuse/pointeuse/internal/storage"
)

// tickMsg is sent when the elapsed-time timer ticks.
type tickMsg time.Time

// refreshMsg is sent when data needs to be refreshed.
type refreshMsg struct{}

// DashboardModel is the bubbletea model for the dashboard.
type DashboardModel struct {
	engine   *engine.Engine
	sessions *storage.SessionRepo

	open        *model.Session
	today       []*model.Session
	weekSummary stats.Summary
	weekTrend   float64

	width      int
	height     int
	err        error
	message    string
	messageExp time.Time

	// ticking is true while a tick command is in flight. The timer only
	// runs while a session is open so the elapsed display can advance;
	// with no open session there is nothing to animate.
	ticking         bool
	refreshInterval time.Duration
}

// DashboardConfig holds configuration for the dashboard.
type DashboardConfig struct {
	Engine          *engine.Engine
	SessionRepo     *storage.SessionRepo
	RefreshInterval time.Duration
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(config DashboardConfig) *DashboardModel {
	if config.RefreshInterval == 0 {
		config.RefreshInterval = time.Second
	}
	return &DashboardModel{
		engine:          config.Engine,
		sessions:        config.SessionRepo,
		refreshInterval: config.RefreshInterval,
	}
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return func() tea.Msg { return refreshMsg{} }
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.ticking = false
		if !m.messageExp.IsZero() && time.Now().After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		m.loadData()
		return m, m.maybeTick()

	case refreshMsg:
		m.loadData()
		return m, m.maybeTick()
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "s":
		m.mutate(func() error {
			_, err := m.engine.StartWork()
			return err
		}, "Session started")

	case "p":
		if m.open != nil && m.open.Status == model.StatusPaused {
			m.mutate(func() error {
				_, err := m.engine.EndPause()
				return err
			}, "Session resumed")
		} else {
			m.mutate(func() error {
				_, err := m.engine.StartPause()
				return err
			}, "Session paused")
		}

	case "e":
		m.mutate(func() error {
			_, err := m.engine.EndWork()
			return err
		}, "Session ended")

	case "r":
		m.loadData()
		m.setMessage("Refreshed", time.Second)
	}

	return m, m.maybeTick()
}

// mutate runs an engine operation and reloads. Precondition errors show as
// a transient message instead of an error banner.
func (m *DashboardModel) mutate(op func() error, success string) {
	if err := op(); err != nil {
		if apperrors.IsPrecondition(err) {
			m.setMessage(err.Error(), 3*time.Second)
		} else {
			m.err = err
		}
		return
	}
	m.setMessage(success, 2*time.Second)
	m.loadData()
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	if m.err != nil {
		sections = append(sections, StyleError.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	if m.message != "" {
		sections = append(sections, StyleWarning.Render(m.message))
	}

	now := time.Now()
	sections = append(sections, NewStatusComponent(m.open, now, m.width).View())
	sections = append(sections, NewSessionsComponent(m.today, m.width).View())
	sections = append(sections, NewSummaryComponent(m.weekSummary, m.weekTrend, m.width).View())
	sections = append(sections, HelpBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the dashboard header.
func (m *DashboardModel) renderHeader() string {
	title := StyleTitle.Render("Pointeuse")
	now := time.Now().Format("Mon Jan 2, 15:04:05")
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", StyleSubtitle.Render(now)) + "\n"
}

// loadData loads the open session, today's sessions and the week summary.
func (m *DashboardModel) loadData() {
	open, err := m.engine.Open()
	if err != nil {
		m.err = err
		return
	}
	m.open = open

	today, err := m.engine.Today()
	if err != nil {
		m.err = err
		return
	}
	m.today = today

	now := time.Now()
	start, end := stats.RangeFor(stats.PeriodWeek, now)
	sessions, err := m.sessions.ListBetween(start, end)
	if err != nil {
		m.err = err
		return
	}
	m.weekSummary = stats.Aggregate(sessions)

	prevStart, prevEnd := stats.PreviousRange(start, end)
	previous, err := m.sessions.ListBetween(prevStart, prevEnd)
	if err != nil {
		m.err = err
		return
	}
	m.weekTrend = stats.TrendPercent(
		m.weekSummary.TotalMinutes, stats.Aggregate(previous).TotalMinutes)

	m.err = nil
}

// setMessage sets a temporary message.
func (m *DashboardModel) setMessage(msg string, duration time.Duration) {
	m.message = msg
	m.messageExp = time.Now().Add(duration)
}

// maybeTick schedules the next tick while a session is open. With no open
// session the timer loop ends here.
func (m *DashboardModel) maybeTick() tea.Cmd {
	if m.open == nil || m.ticking {
		return nil
	}
	m.ticking = true
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the dashboard TUI.
func Run(config DashboardConfig) error {
	p := tea.NewProgram(NewDashboardModel(config), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
