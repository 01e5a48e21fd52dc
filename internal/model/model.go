// Package model defines the domain models for Pointeuse.
package model

// Model is the interface that all database models must implement.
type Model interface {
	// SetKey sets the database key for this model.
	SetKey(key string)
	// GetKey returns the database key for this model.
	GetKey() string
}

// KeyPrefix constants for database key generation.
const (
	PrefixSession   = "session"
	PrefixWorkplace = "workplace"
)

// DateLayout is the calendar-date layout used for session dates.
const DateLayout = "2006-01-02"
