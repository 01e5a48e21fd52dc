package output

import (
	"fmt"
	"strings"

	"github.com/mapointeuse/pointeuse/internal/stats"
)

// defaultBarWidth is the width of the longest bar in a chart.
const defaultBarWidth = 30

// Bar renders a proportional bar of the given width.
func Bar(value, max int64, width int) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	filled := int(int64(width) * value / max)
	if filled == 0 {
		filled = 1
	}
	return strings.Repeat("█", filled)
}

// PrintWeekdayChart prints a bar chart of minutes per day of the week.
func (c *CLIFormatter) PrintWeekdayChart(totals []stats.WeekdayTotal) {
	var max int64
	for _, t := range totals {
		if t.Minutes > max {
			max = t.Minutes
		}
	}
	for _, t := range totals {
		bar := Bar(t.Minutes, max, defaultBarWidth)
		if c.IsColorEnabled() {
			bar = styleTitle.Render(bar)
		}
		c.Printf("  %-9s %-7s %s\n", t.Weekday.String(), FormatMinutes(t.Minutes), bar)
	}
}

// PrintDateChart prints a bar chart of minutes per calendar date.
func (c *CLIFormatter) PrintDateChart(totals []stats.DateTotal) {
	var max int64
	for _, t := range totals {
		if t.Minutes > max {
			max = t.Minutes
		}
	}
	for _, t := range totals {
		bar := Bar(t.Minutes, max, defaultBarWidth)
		if c.IsColorEnabled() {
			bar = styleTitle.Render(bar)
		}
		c.Printf("  %s %-7s %s\n", t.Date, FormatMinutes(t.Minutes), bar)
	}
}

// TrendArrow returns a direction indicator for a trend percentage.
func TrendArrow(trend float64) string {
	switch {
	case trend > 0:
		return "↑"
	case trend < 0:
		return "↓"
	default:
		return "→"
	}
}

// FormatTrend renders a trend percentage with its direction.
func FormatTrend(trend float64) string {
	return fmt.Sprintf("%s %.0f%%", TrendArrow(trend), trend)
}
