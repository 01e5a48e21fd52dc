package output

import (
	"time"

	"github.com/mapointeuse/pointeuse/internal/model"
	"github.com/mapointeuse/pointeuse/internal/stats"
)

// SessionOutput represents a session in JSON output.
type SessionOutput struct {
	Key           string `json:"key"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time,omitempty"`
	WorkedMinutes int64  `json:"worked_minutes"`
	Status        string `json:"status"`
	Open          bool   `json:"open"`
}

// NewSessionOutput creates a SessionOutput from a Session.
func NewSessionOutput(s *model.Session) *SessionOutput {
	out := &SessionOutput{
		Key:           s.Key,
		Date:          s.Date,
		StartTime:     s.StartTime.Format(time.RFC3339),
		WorkedMinutes: s.WorkedMinutes,
		Status:        string(s.Status),
		Open:          s.IsOpen(),
	}
	if !s.EndTime.IsZero() {
		out.EndTime = s.EndTime.Format(time.RFC3339)
	}
	return out
}

// StatusResponse represents the status output in JSON.
type StatusResponse struct {
	Status         string         `json:"status"`
	Session        *SessionOutput `json:"session,omitempty"`
	ElapsedSeconds int64          `json:"elapsed_seconds,omitempty"`
}

// SessionResponse represents a single-session mutation result in JSON.
type SessionResponse struct {
	Status  string         `json:"status"`
	Session *SessionOutput `json:"session"`
}

// SessionsResponse represents a session list in JSON.
type SessionsResponse struct {
	Sessions     []*SessionOutput `json:"sessions"`
	TotalMinutes int64            `json:"total_minutes"`
	Count        int              `json:"count"`
}

// NewSessionsResponse creates a SessionsResponse from sessions.
func NewSessionsResponse(sessions []*model.Session) *SessionsResponse {
	outputs := make([]*SessionOutput, len(sessions))
	for i, s := range sessions {
		outputs[i] = NewSessionOutput(s)
	}
	return &SessionsResponse{
		Sessions:     outputs,
		TotalMinutes: model.DailyTotal(sessions),
		Count:        len(sessions),
	}
}

// StatsResponse represents the stats command output in JSON.
type StatsResponse struct {
	Period       string              `json:"period"`
	RangeStart   string              `json:"range_start"`
	RangeEnd     string              `json:"range_end"`
	Summary      stats.Summary       `json:"summary"`
	TrendPercent float64             `json:"trend_percent"`
	ByWeekday    []stats.WeekdayTotal `json:"by_weekday,omitempty"`
	ByDate       []stats.DateTotal    `json:"by_date,omitempty"`
}

// WorkplaceResponse represents the workplace configuration in JSON.
type WorkplaceResponse struct {
	Status    string           `json:"status"`
	Workplace *model.Workplace `json:"workplace,omitempty"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}
