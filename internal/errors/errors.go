// Package errors provides consistent error types for the Pointeuse CLI.
// It defines three main categories for session operations: ConflictError
// (an open session already exists), NotFoundError (a required session does
// not exist), and InvalidStateError (the session is in the wrong status).
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common conditions.
var (
	ErrSessionActive     = errors.New("session already active")
	ErrNoOpenSession     = errors.New("no open session for today")
	ErrSessionNotFound   = errors.New("session not found")
	ErrWorkplaceNotFound = errors.New("no active workplace configured")
	ErrEndBeforeStart    = errors.New("end time must be after start time")
	ErrInvalidTimestamp  = errors.New("invalid timestamp")
	ErrInvalidStatus     = errors.New("invalid session status")
)

// ConflictError means an operation's "no existing open session" precondition
// is violated, e.g. a double start.
type ConflictError struct {
	Message    string // What happened
	Suggestion string // How to fix it
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewConflictError creates a new ConflictError.
func NewConflictError(message, suggestion string) *ConflictError {
	return &ConflictError{
		Message:    message,
		Suggestion: suggestion,
	}
}

// NotFoundError means an operation requires an open or referenced session
// that does not exist.
type NotFoundError struct {
	Message    string
	Suggestion string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(message, suggestion string) *NotFoundError {
	return &NotFoundError{
		Message:    message,
		Suggestion: suggestion,
	}
}

// InvalidStateError means an operation requires a specific session status
// that is not met, e.g. pausing a session that is not in progress.
type InvalidStateError struct {
	Message    string
	Current    string // The status the session is actually in (optional)
	Suggestion string
}

func (e *InvalidStateError) Error() string {
	if e.Current != "" {
		return fmt.Sprintf("%s (current status: %s)", e.Message, e.Current)
	}
	return e.Message
}

// NewInvalidStateError creates a new InvalidStateError.
func NewInvalidStateError(message, current, suggestion string) *InvalidStateError {
	return &InvalidStateError{
		Message:    message,
		Current:    current,
		Suggestion: suggestion,
	}
}

// ValidationError means user-provided input failed validation before
// reaching any store or engine operation.
type ValidationError struct {
	Field      string // Which input was invalid (optional)
	Message    string
	Suggestion string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message, suggestion string) *ValidationError {
	return &ValidationError{
		Field:      field,
		Message:    message,
		Suggestion: suggestion,
	}
}

// IsValidation checks if an error is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConflict checks if an error is a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsNotFound checks if an error is a NotFoundError.
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}

// IsInvalidState checks if an error is an InvalidStateError.
func IsInvalidState(err error) bool {
	var ie *InvalidStateError
	return errors.As(err, &ie)
}

// IsPrecondition reports whether the error is one of the three precondition
// kinds. Automation paths discard these silently instead of surfacing them.
func IsPrecondition(err error) bool {
	return IsConflict(err) || IsNotFound(err) || IsInvalidState(err)
}

// Suggestion extracts the fix-it hint from a typed error, if any.
func Suggestion(err error) string {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce.Suggestion
	}
	var ne *NotFoundError
	if errors.As(err, &ne) {
		return ne.Suggestion
	}
	var ie *InvalidStateError
	if errors.As(err, &ie) {
		return ie.Suggestion
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Suggestion
	}
	return ""
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted additional context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
