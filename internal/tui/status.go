package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/mapointeuse/pointeuse/internal/model"
	"github.com/mapointeuse/pointeuse/internal/output"
	"github.com/mapointeuse/pointeuse/internal/stats"
)

// StatusComponent displays the current open session.
type StatusComponent struct {
	Session *model.Session
	Now     time.Time
	Width   int
}

// NewStatusComponent creates a new status component.
func NewStatusComponent(session *model.Session, now time.Time, width int) *StatusComponent {
	return &StatusComponent{Session: session, Now: now, Width: width}
}

// View renders the status component.
func (sc *StatusComponent) View() string {
	var content strings.Builder

	if sc.Session == nil {
		content.WriteString(StyleInactive.Render("Not clocked in"))
		content.WriteString("\n\n")
		content.WriteString(StyleSubtitle.Render("Press 's' to start a session"))
		return StyleBox.Width(sc.Width - 4).Render(content.String())
	}

	box := StyleActiveBox
	if sc.Session.Status == model.StatusPaused {
		content.WriteString(StylePaused.Render("● PAUSED"))
		box = StylePausedBox
	} else {
		content.WriteString(StyleActive.Render("● WORKING"))
	}
	content.WriteString("\n\n")

	content.WriteString(StyleDuration.Render(output.FormatDuration(sc.Session.Elapsed(sc.Now))))
	content.WriteString("\n\n")
	content.WriteString(StyleSubtitle.Render(
		fmt.Sprintf("Started: %s", output.FormatTime(sc.Session.StartTime))))

	return box.Width(sc.Width - 4).Render(content.String())
}

// SessionsComponent displays today's sessions.
type SessionsComponent struct {
	Sessions []*model.Session
	Width    int
}

// NewSessionsComponent creates a new sessions component.
func NewSessionsComponent(sessions []*model.Session, width int) *SessionsComponent {
	return &SessionsComponent{Sessions: sessions, Width: width}
}

// View renders the sessions component.
func (sc *SessionsComponent) View() string {
	var content strings.Builder

	content.WriteString(StyleTitle.Render("Today"))
	content.WriteString("\n")

	if len(sc.Sessions) == 0 {
		content.WriteString(StyleSubtitle.Render("No sessions yet"))
	} else {
		for i, s := range sc.Sessions {
			if i > 0 {
				content.WriteString("\n")
			}
			content.WriteString(sc.renderSession(s))
		}
		content.WriteString("\n\n")
		content.WriteString("Total: ")
		content.WriteString(StyleDuration.Render(
			output.FormatMinutes(model.DailyTotal(sc.Sessions))))
	}

	return StyleBox.Width(sc.Width - 4).Render(content.String())
}

func (sc *SessionsComponent) renderSession(s *model.Session) string {
	if s.EndTime.IsZero() {
		return StyleSubtitle.Render(
			fmt.Sprintf("%s - (open)", output.FormatTimeOnly(s.StartTime)))
	}
	return StyleSubtitle.Render(fmt.Sprintf("%s - %s  ",
		output.FormatTimeOnly(s.StartTime),
		output.FormatTimeOnly(s.EndTime))) +
		StyleDuration.Render(output.FormatMinutes(s.WorkedMinutes))
}

// SummaryComponent displays this week's aggregates.
type SummaryComponent struct {
	Summary stats.Summary
	Trend   float64
	Width   int
}

// NewSummaryComponent creates a new summary component.
func NewSummaryComponent(summary stats.Summary, trend float64, width int) *SummaryComponent {
	return &SummaryComponent{Summary: summary, Trend: trend, Width: width}
}

// View renders the summary component.
func (sc *SummaryComponent) View() string {
	var content strings.Builder

	content.WriteString(StyleTitle.Render("This Week"))
	content.WriteString("\n")
	content.WriteString("Total: ")
	content.WriteString(StyleDuration.Render(output.FormatMinutes(sc.Summary.TotalMinutes)))
	content.WriteString(StyleSubtitle.Render(
		fmt.Sprintf("  over %d days", sc.Summary.DistinctDays)))
	content.WriteString("\n")
	content.WriteString(StyleSubtitle.Render(
		fmt.Sprintf("Avg/day: %s   Trend: %s",
			output.FormatMinutes(sc.Summary.AveragePerDay),
			output.FormatTrend(sc.Trend))))

	return StyleBox.Width(sc.Width - 4).Render(content.String())
}

// HelpBar renders the help bar at the bottom.
func HelpBar() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"s", "start"},
		{"p", "pause/resume"},
		{"e", "end"},
		{"r", "refresh"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, StyleHelpKey.Render(k.key)+" "+StyleSubtitle.Render(k.desc))
	}

	return StyleHelp.Render(strings.Join(parts, "  •  "))
}
