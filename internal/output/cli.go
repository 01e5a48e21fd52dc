package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mapointeuse/pointeuse/internal/model"
	"github.com/mapointeuse/pointeuse/internal/stats"
)

// Styles for CLI output.
var (
	colorPrimary = lipgloss.Color("#2563EB") // Blue
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)

	styleDuration = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// Duration formats a duration string with emphasis.
func (c *CLIFormatter) Duration(text string) string {
	if c.IsColorEnabled() {
		return styleDuration.Render(text)
	}
	return text
}

// StatusLabel renders a session status with a matching color.
func (c *CLIFormatter) StatusLabel(status model.Status) string {
	label := statusText(status)
	if !c.IsColorEnabled() {
		return label
	}
	switch status {
	case model.StatusInProgress:
		return styleSuccess.Render(label)
	case model.StatusPaused:
		return styleWarning.Render(label)
	default:
		return styleMuted.Render(label)
	}
}

func statusText(status model.Status) string {
	switch status {
	case model.StatusInProgress:
		return "in progress"
	case model.StatusPaused:
		return "paused"
	case model.StatusCompleted:
		return "completed"
	}
	return string(status)
}

// PrintSessionStarted prints a clock-in confirmation.
func (c *CLIFormatter) PrintSessionStarted(s *model.Session) {
	c.Success("Work session started")
	c.Printf("  Started: %s\n", FormatTime(s.StartTime))
}

// PrintSessionEnded prints a clock-out confirmation.
func (c *CLIFormatter) PrintSessionEnded(s *model.Session) {
	c.Success("Work session ended")
	c.Printf("  Started: %s\n", FormatTime(s.StartTime))
	c.Printf("  Ended:   %s\n", FormatTime(s.EndTime))
	c.Printf("  Worked:  %s\n", c.Duration(FormatMinutes(s.WorkedMinutes)))
}

// PrintStatus prints the state of the current open session, if any.
func (c *CLIFormatter) PrintStatus(s *model.Session, now time.Time) {
	if s == nil {
		c.Muted("No open session today.")
		c.Muted("Use 'pointeuse start' to clock in.")
		return
	}

	c.Printf("Session %s\n", c.StatusLabel(s.Status))
	c.Printf("  Started: %s\n", FormatTime(s.StartTime))
	c.Printf("  Elapsed: %s\n", c.Duration(FormatDuration(s.Elapsed(now))))
}

// PrintSessionRow prints one session as a log line.
func (c *CLIFormatter) PrintSessionRow(s *model.Session) {
	end := "—"
	if !s.EndTime.IsZero() {
		end = FormatTimeOnly(s.EndTime)
	}
	c.Printf("%s  %s → %s  %-12s %s\n",
		s.Date,
		FormatTimeOnly(s.StartTime),
		end,
		statusText(s.Status),
		FormatMinutes(s.WorkedMinutes))
}

// PrintSummary prints aggregated statistics for a period.
func (c *CLIFormatter) PrintSummary(period stats.Period, sum stats.Summary, trend float64) {
	c.Title(fmt.Sprintf("Statistics (%s)", period))
	c.Printf("  Total:    %s\n", c.Duration(FormatMinutes(sum.TotalMinutes)))
	c.Printf("  Days:     %d\n", sum.DistinctDays)
	c.Printf("  Avg/day:  %s\n", FormatMinutes(sum.AveragePerDay))
	c.Printf("  Trend:    %s\n", FormatTrend(trend))
}

// PrintTable prints a simple aligned table.
func (c *CLIFormatter) PrintTable(headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, col := range row {
			if i < len(widths) && len(col) > widths[i] {
				widths[i] = len(col)
			}
		}
	}

	var headerLine strings.Builder
	for i, h := range headers {
		headerLine.WriteString(fmt.Sprintf("%-*s  ", widths[i], h))
	}
	if c.IsColorEnabled() {
		c.Println(styleBold.Render(headerLine.String()))
	} else {
		c.Println(headerLine.String())
	}

	var sep strings.Builder
	for _, w := range widths {
		sep.WriteString(strings.Repeat("─", w) + "  ")
	}
	c.Println(sep.String())

	for _, row := range rows {
		var line strings.Builder
		for i, col := range row {
			if i < len(widths) {
				line.WriteString(fmt.Sprintf("%-*s  ", widths[i], col))
			}
		}
		c.Println(line.String())
	}
}
