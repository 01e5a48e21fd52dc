package model

import (
	"fmt"
	"time"
)

// Status represents the lifecycle state of a session.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusPaused     Status = "paused"
	StatusCompleted  Status = "completed"
)

// String returns a human-readable label for the status.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in progress"
	case StatusPaused:
		return "paused"
	case StatusCompleted:
		return "completed"
	default:
		return string(s)
	}
}

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusInProgress, StatusPaused, StatusCompleted:
		return true
	}
	return false
}

// Session represents one clock-in-to-clock-out interval for a given date.
// A session is "open" while its status is in_progress or paused; at most one
// open session may exist per calendar date.
type Session struct {
	Key           string    `json:"key"`
	Date          string    `json:"date"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time,omitempty"`
	WorkedMinutes int64     `json:"worked_minutes"`
	Status        Status    `json:"status"`
}

// SetKey sets the database key for this session.
func (s *Session) SetKey(key string) {
	s.Key = key
}

// GetKey returns the database key for this session.
func (s *Session) GetKey() string {
	return s.Key
}

// IsOpen returns true if the session has not been completed yet.
func (s *Session) IsOpen() bool {
	return s.Status != StatusCompleted
}

// Elapsed returns the display duration of the session at the given instant.
// Completed sessions report their credited worked minutes; open sessions
// report wall time since start, which keeps advancing while paused.
func (s *Session) Elapsed(now time.Time) time.Duration {
	if s.Status == StatusCompleted {
		return time.Duration(s.WorkedMinutes) * time.Minute
	}
	d := now.Sub(s.StartTime)
	if d < 0 {
		d = 0
	}
	return d
}

// ComputeWorkedMinutes returns the whole minutes between start and end,
// floored and never negative.
func ComputeWorkedMinutes(start, end time.Time) int64 {
	m := int64(end.Sub(start) / time.Minute)
	if m < 0 {
		m = 0
	}
	return m
}

// DailyTotal sums the credited minutes of the given sessions. Only closed
// sessions contribute; the open session's live elapsed time is shown
// separately and is not part of the total until it closes.
func DailyTotal(sessions []*Session) int64 {
	var total int64
	for _, s := range sessions {
		if s.WorkedMinutes > 0 {
			total += s.WorkedMinutes
		}
	}
	return total
}

// GenerateSessionKey generates a database key for a session using a UUID.
func GenerateSessionKey(uuid string) string {
	return fmt.Sprintf("%s:%s", PrefixSession, uuid)
}

// NewSession creates a new in-progress session starting at the given time.
// The session's date is the calendar date of its start time.
func NewSession(start time.Time) *Session {
	return &Session{
		Date:      start.Format(DateLayout),
		StartTime: start,
		Status:    StatusInProgress,
	}
}
