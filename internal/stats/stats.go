// Package stats derives per-period totals, averages and trend deltas from
// stored sessions. Everything here is a pure function of the session set;
// callers reload and recompute on every underlying change.
package stats

import (
	"sort"
	"time"

	"github.com/mapointeuse/pointeuse/internal/model"
)

// Period selects the aggregation window.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod maps a user-supplied string onto a Period.
func ParsePeriod(s string) (Period, bool) {
	switch Period(s) {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return Period(s), true
	}
	return "", false
}

// RangeFor returns the [start, end] calendar-day range for the period
// containing today. Weeks run Monday through Sunday.
func RangeFor(p Period, today time.Time) (time.Time, time.Time) {
	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, today.Location())

	switch p {
	case PeriodDay:
		return day, day
	case PeriodWeek:
		weekday := int(day.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday
		}
		start := day.AddDate(0, 0, -(weekday - 1))
		return start, start.AddDate(0, 0, 6)
	case PeriodMonth:
		start := time.Date(y, m, 1, 0, 0, 0, 0, today.Location())
		return start, start.AddDate(0, 1, -1)
	case PeriodYear:
		start := time.Date(y, 1, 1, 0, 0, 0, 0, today.Location())
		return start, time.Date(y, 12, 31, 0, 0, 0, 0, today.Location())
	default:
		return day, day
	}
}

// PreviousRange shifts [start, end] back by its own span in days, yielding
// the immediately preceding range of equal length.
func PreviousRange(start, end time.Time) (time.Time, time.Time) {
	span := daysBetween(start, end) + 1
	return start.AddDate(0, 0, -span), end.AddDate(0, 0, -span)
}

// daysBetween counts calendar days from start to end. Both ends are
// normalized to UTC midnights first, so a DST transition inside the range
// cannot shorten the count.
func daysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s) / (24 * time.Hour))
}

// Summary holds the aggregate figures for a session set.
type Summary struct {
	TotalMinutes  int64 `json:"total_minutes"`
	DistinctDays  int   `json:"distinct_days"`
	AveragePerDay int64 `json:"average_per_day"`
}

// Aggregate computes totals over the given sessions: summed worked minutes,
// the number of distinct dates represented, and the integer average per day.
func Aggregate(sessions []*model.Session) Summary {
	var total int64
	days := make(map[string]struct{})
	for _, s := range sessions {
		total += s.WorkedMinutes
		days[s.Date] = struct{}{}
	}

	summary := Summary{
		TotalMinutes: total,
		DistinctDays: len(days),
	}
	if summary.DistinctDays > 0 {
		summary.AveragePerDay = total / int64(summary.DistinctDays)
	}
	return summary
}

// TrendPercent compares the current total against the previous period's.
// A previous of zero reports 100 when anything was worked now, 0 otherwise.
func TrendPercent(current, previous int64) float64 {
	if previous > 0 {
		return float64(current-previous) / float64(previous) * 100
	}
	if current > 0 {
		return 100
	}
	return 0
}

// WeekdayTotal is the minutes worked on one day of the week.
type WeekdayTotal struct {
	Weekday time.Weekday `json:"weekday"`
	Minutes int64        `json:"minutes"`
}

// ByWeekday sums worked minutes per day of the week, Monday first.
func ByWeekday(sessions []*model.Session) []WeekdayTotal {
	totals := make(map[time.Weekday]int64)
	for _, s := range sessions {
		date, err := time.ParseInLocation(model.DateLayout, s.Date, time.Local)
		if err != nil {
			continue
		}
		totals[date.Weekday()] += s.WorkedMinutes
	}

	order := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	result := make([]WeekdayTotal, 0, len(order))
	for _, wd := range order {
		result = append(result, WeekdayTotal{Weekday: wd, Minutes: totals[wd]})
	}
	return result
}

// DateTotal is the minutes worked on one calendar date.
type DateTotal struct {
	Date    string `json:"date"`
	Minutes int64  `json:"minutes"`
}

// ByDate sums worked minutes per calendar date, ascending.
func ByDate(sessions []*model.Session) []DateTotal {
	totals := make(map[string]int64)
	for _, s := range sessions {
		totals[s.Date] += s.WorkedMinutes
	}

	result := make([]DateTotal, 0, len(totals))
	for date, minutes := range totals {
		result = append(result, DateTotal{Date: date, Minutes: minutes})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})
	return result
}
