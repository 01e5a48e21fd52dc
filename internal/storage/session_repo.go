package storage

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mapointeuse/pointeuse/internal/model"
)

// SessionRepo provides operations for Session entities.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a new session repository.
func NewSessionRepo(db *DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session with a generated key.
func (r *SessionRepo) Create(session *model.Session) error {
	// Generate UUID v7 for time-sortable keys
	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	session.Key = model.GenerateSessionKey(id.String())
	return r.db.Set(session)
}

// Get retrieves a session by key.
func (r *SessionRepo) Get(key string) (*model.Session, error) {
	session := &model.Session{}
	if err := r.db.Get(key, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Update updates an existing session.
func (r *SessionRepo) Update(session *model.Session) error {
	return r.db.Set(session)
}

// Delete removes a session by key.
func (r *SessionRepo) Delete(key string) error {
	return r.db.Delete(key)
}

// List retrieves all sessions ordered by date descending, then start time
// descending.
func (r *SessionRepo) List() ([]*model.Session, error) {
	sessions, err := GetAllByPrefix(r.db, model.PrefixSession+":", func() *model.Session {
		return &model.Session{}
	})
	if err != nil {
		return nil, err
	}
	sortSessions(sessions)
	return sessions, nil
}

// OpenForDate retrieves the single open (not completed) session for a
// calendar date, or nil if none exists.
func (r *SessionRepo) OpenForDate(date string) (*model.Session, error) {
	matches, err := GetFilteredByPrefix(r.db, model.PrefixSession+":", func() *model.Session {
		return &model.Session{}
	}, func(s *model.Session) bool {
		return s.Date == date && s.IsOpen()
	}, 1)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

// ListForDate retrieves all sessions for a calendar date, most recent first.
func (r *SessionRepo) ListForDate(date string) ([]*model.Session, error) {
	sessions, err := GetFilteredByPrefix(r.db, model.PrefixSession+":", func() *model.Session {
		return &model.Session{}
	}, func(s *model.Session) bool {
		return s.Date == date
	}, 0)
	if err != nil {
		return nil, err
	}
	sortSessions(sessions)
	return sessions, nil
}

// ListBetween retrieves all sessions with dates in [start, end] inclusive,
// most recent first.
func (r *SessionRepo) ListBetween(start, end time.Time) ([]*model.Session, error) {
	startDate := start.Format(model.DateLayout)
	endDate := end.Format(model.DateLayout)
	sessions, err := GetFilteredByPrefix(r.db, model.PrefixSession+":", func() *model.Session {
		return &model.Session{}
	}, func(s *model.Session) bool {
		return s.Date >= startDate && s.Date <= endDate
	}, 0)
	if err != nil {
		return nil, err
	}
	sortSessions(sessions)
	return sessions, nil
}

// sortSessions orders by date descending, then start time descending.
func sortSessions(sessions []*model.Session) {
	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].Date != sessions[j].Date {
			return sessions[i].Date > sessions[j].Date
		}
		return sessions[i].StartTime.After(sessions[j].StartTime)
	})
}
