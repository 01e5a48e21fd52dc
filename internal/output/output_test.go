package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapointeuse/pointeuse/internal/model"
	"github.com/mapointeuse/pointeuse/internal/stats"
)

func newTestFormatter() (*CLIFormatter, *bytes.Buffer) {
	var buf bytes.Buffer
	f := NewFormatter()
	f.Writer = &buf
	f.ColorMode = ColorNever
	return NewCLIFormatter(f), &buf
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "1h", FormatMinutes(60))
	assert.Equal(t, "2h 5m", FormatMinutes(125))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "30s", FormatDuration(30*time.Second))
	assert.Equal(t, "2m 5s", FormatDuration(125*time.Second))
	assert.Equal(t, "5m", FormatDuration(5*time.Minute))
	assert.Equal(t, "1h 30m", FormatDuration(90*time.Minute))
}

func TestColorModeNever(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter()
	f.Writer = &buf
	f.ColorMode = ColorNever
	assert.False(t, f.IsColorEnabled())

	f.ColorMode = ColorAlways
	assert.True(t, f.IsColorEnabled())

	// Non-file writers never auto-enable color.
	f.ColorMode = ColorAuto
	assert.False(t, f.IsColorEnabled())
}

func TestPrintStatusNoSession(t *testing.T) {
	c, buf := newTestFormatter()
	c.PrintStatus(nil, time.Now())
	assert.Contains(t, buf.String(), "No open session")
}

func TestPrintStatusOpenSession(t *testing.T) {
	c, buf := newTestFormatter()
	start := time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local)
	s := model.NewSession(start)
	c.PrintStatus(s, start.Add(90*time.Minute))

	out := buf.String()
	assert.Contains(t, out, "in progress")
	assert.Contains(t, out, "1h 30m")
}

func TestPrintSummary(t *testing.T) {
	c, buf := newTestFormatter()
	c.PrintSummary(stats.PeriodWeek, stats.Summary{
		TotalMinutes:  360,
		DistinctDays:  3,
		AveragePerDay: 120,
	}, 50)

	out := buf.String()
	assert.Contains(t, out, "6h")
	assert.Contains(t, out, "3")
	assert.Contains(t, out, "2h")
	assert.Contains(t, out, "↑ 50%")
}

func TestSessionOutputJSON(t *testing.T) {
	start := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	s := model.NewSession(start)
	s.Key = "session:abc"

	out := NewSessionOutput(s)
	data, err := json.Marshal(out)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "session:abc", decoded["key"])
	assert.Equal(t, "in_progress", decoded["status"])
	assert.Equal(t, true, decoded["open"])
	_, hasEnd := decoded["end_time"]
	assert.False(t, hasEnd, "open session has no end_time")
}

func TestBar(t *testing.T) {
	assert.Equal(t, "", Bar(0, 100, 10))
	assert.Equal(t, strings.Repeat("█", 10), Bar(100, 100, 10))
	assert.Equal(t, strings.Repeat("█", 5), Bar(50, 100, 10))
	// Non-zero values always show at least one cell.
	assert.Equal(t, "█", Bar(1, 1000, 10))
}

func TestPrintWeekdayChart(t *testing.T) {
	c, buf := newTestFormatter()
	c.PrintWeekdayChart([]stats.WeekdayTotal{
		{Weekday: time.Monday, Minutes: 120},
		{Weekday: time.Tuesday, Minutes: 60},
	})

	out := buf.String()
	assert.Contains(t, out, "Monday")
	assert.Contains(t, out, "2h")
	assert.Contains(t, out, "█")
}

func TestPrintTable(t *testing.T) {
	c, buf := newTestFormatter()
	c.PrintTable([]string{"Date", "Worked"}, [][]string{
		{"2025-03-14", "2h 5m"},
		{"2025-03-13", "7h"},
	})

	out := buf.String()
	assert.Contains(t, out, "Date")
	assert.Contains(t, out, "2025-03-14")
	assert.Contains(t, out, "─")
}
