// Package engine owns the work-session state machine: starting, pausing,
// resuming and ending the single open session per calendar date.
package engine

import (
	"sync"

	"github.com/coder/quartz"

	perrors "github.com/mapointeuse/pointeuse/internal/errors"
	"github.com/mapointeuse/pointeuse/internal/logging"
	"github.com/mapointeuse/pointeuse/internal/model"
	"github.com/mapointeuse/pointeuse/internal/storage"
)

// Engine executes session transitions against the store. Every operation is
// a read-modify-write critical section: a manual tap and a geofence-delayed
// automation can race on the same day's session, so the whole check-then-act
// runs under one mutex.
type Engine struct {
	mu       sync.Mutex
	sessions *storage.SessionRepo
	clock    quartz.Clock
}

// New creates a session engine. The clock is injected so tests can control
// time; pass quartz.NewReal() in production.
func New(sessions *storage.SessionRepo, clock quartz.Clock) *Engine {
	return &Engine{
		sessions: sessions,
		clock:    clock,
	}
}

// today returns the current calendar date in the store's date format.
func (e *Engine) today() string {
	return e.clock.Now().Format(model.DateLayout)
}

// Open returns today's open session, or nil if none exists.
func (e *Engine) Open() (*model.Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sessions.OpenForDate(e.today())
}

// Today returns all of today's sessions, most recent first.
func (e *Engine) Today() ([]*model.Session, error) {
	return e.sessions.ListForDate(e.today())
}

// StartWork creates a new in-progress session for today. It fails with a
// ConflictError if an open session already exists.
func (e *Engine) StartWork() (*model.Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	open, err := e.sessions.OpenForDate(now.Format(model.DateLayout))
	if err != nil {
		return nil, perrors.Wrap(err, "checking open session")
	}
	if open != nil {
		return nil, perrors.NewConflictError(
			"session already active",
			"stop it with 'pointeuse stop' or pause it with 'pointeuse pause'")
	}

	session := model.NewSession(now)
	if err := e.sessions.Create(session); err != nil {
		return nil, perrors.Wrap(err, "creating session")
	}

	logging.Info("work started",
		logging.KeySessionID, session.Key,
		logging.KeyStatus, session.Status)
	return session, nil
}

// EndWork closes today's open session, crediting floor(now - start) whole
// minutes, clamped to zero.
func (e *Engine) EndWork() (*model.Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	session, err := e.openOrNotFound(now.Format(model.DateLayout))
	if err != nil {
		return nil, err
	}

	session.EndTime = now
	session.WorkedMinutes = model.ComputeWorkedMinutes(session.StartTime, now)
	session.Status = model.StatusCompleted
	if err := e.sessions.Update(session); err != nil {
		return nil, perrors.Wrap(err, "closing session")
	}

	logging.Info("work ended",
		logging.KeySessionID, session.Key,
		"worked_minutes", session.WorkedMinutes)
	return session, nil
}

// StartPause marks today's open session as paused. The session must be in
// progress.
func (e *Engine) StartPause() (*model.Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	session, err := e.openOrNotFound(e.today())
	if err != nil {
		return nil, err
	}
	if session.Status != model.StatusInProgress {
		return nil, perrors.NewInvalidStateError(
			"session must be in progress to pause",
			session.Status.String(),
			"resume it first with 'pointeuse resume'")
	}

	session.Status = model.StatusPaused
	if err := e.sessions.Update(session); err != nil {
		return nil, perrors.Wrap(err, "pausing session")
	}

	logging.Info("pause started", logging.KeySessionID, session.Key)
	return session, nil
}

// EndPause resumes today's paused session.
func (e *Engine) EndPause() (*model.Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	session, err := e.openOrNotFound(e.today())
	if err != nil {
		return nil, err
	}
	if session.Status != model.StatusPaused {
		return nil, perrors.NewInvalidStateError(
			"no pause in progress",
			session.Status.String(),
			"")
	}

	session.Status = model.StatusInProgress
	if err := e.sessions.Update(session); err != nil {
		return nil, perrors.Wrap(err, "resuming session")
	}

	logging.Info("pause ended", logging.KeySessionID, session.Key)
	return session, nil
}

// UpdateSession applies a manual correction to any session. Worked minutes
// are recomputed from the timestamps: floor(end - start) when an end time is
// present, zero otherwise. Status is kept consistent with the end time, so
// clearing the end time reopens the session. Manual edits are trusted; no
// cross-session conflict check runs here.
func (e *Engine) UpdateSession(session *model.Session) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !session.EndTime.IsZero() && session.EndTime.Before(session.StartTime) {
		return perrors.ErrEndBeforeStart
	}

	session.Date = session.StartTime.Format(model.DateLayout)
	if !session.EndTime.IsZero() {
		session.WorkedMinutes = model.ComputeWorkedMinutes(session.StartTime, session.EndTime)
		session.Status = model.StatusCompleted
	} else {
		session.WorkedMinutes = 0
		if session.Status == model.StatusCompleted {
			session.Status = model.StatusInProgress
		}
	}
	if !session.Status.Valid() {
		return perrors.ErrInvalidStatus
	}

	if err := e.sessions.Update(session); err != nil {
		return perrors.Wrap(err, "updating session")
	}

	logging.Info("session edited", logging.KeySessionID, session.Key)
	return nil
}

// DeleteSession removes a session unconditionally.
func (e *Engine) DeleteSession(key string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.sessions.Delete(key); err != nil {
		return perrors.Wrap(err, "deleting session")
	}
	logging.Info("session deleted", logging.KeySessionID, key)
	return nil
}

// openOrNotFound loads the open session for the date or returns a
// NotFoundError. Callers must hold the mutex.
func (e *Engine) openOrNotFound(date string) (*model.Session, error) {
	session, err := e.sessions.OpenForDate(date)
	if err != nil {
		return nil, perrors.Wrap(err, "loading open session")
	}
	if session == nil {
		return nil, perrors.NewNotFoundError(
			"no open session for today",
			"start one with 'pointeuse start'")
	}
	return session, nil
}
