package storage

import (
	"github.com/google/uuid"

	"github.com/mapointeuse/pointeuse/internal/model"
)

// WorkplaceRepo provides operations for Workplace entities.
type WorkplaceRepo struct {
	db *DB
}

// NewWorkplaceRepo creates a new workplace repository.
func NewWorkplaceRepo(db *DB) *WorkplaceRepo {
	return &WorkplaceRepo{db: db}
}

// GetActive retrieves the active workplace, or nil if none is configured.
func (r *WorkplaceRepo) GetActive() (*model.Workplace, error) {
	matches, err := GetFilteredByPrefix(r.db, model.PrefixWorkplace+":", func() *model.Workplace {
		return &model.Workplace{}
	}, func(w *model.Workplace) bool {
		return w.IsActive
	}, 1)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

// Get retrieves a workplace by key.
func (r *WorkplaceRepo) Get(key string) (*model.Workplace, error) {
	w := &model.Workplace{}
	if err := r.db.Get(key, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Upsert stores the workplace, generating a key for new records, then
// deactivates every other workplace so at most one stays active.
func (r *WorkplaceRepo) Upsert(w *model.Workplace) error {
	if w.Key == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		w.Key = model.GenerateWorkplaceKey(id.String())
	}
	if err := r.db.Set(w); err != nil {
		return err
	}
	if w.IsActive {
		return r.DeactivateOthers(w.Key)
	}
	return nil
}

// DeactivateOthers clears the active flag on every workplace except the one
// with the given key.
func (r *WorkplaceRepo) DeactivateOthers(key string) error {
	others, err := GetFilteredByPrefix(r.db, model.PrefixWorkplace+":", func() *model.Workplace {
		return &model.Workplace{}
	}, func(w *model.Workplace) bool {
		return w.Key != key && w.IsActive
	}, 0)
	if err != nil {
		return err
	}
	for _, other := range others {
		other.IsActive = false
		if err := r.db.Set(other); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a workplace.
func (r *WorkplaceRepo) Delete(w *model.Workplace) error {
	return r.db.Delete(w.Key)
}

// List retrieves all workplaces.
func (r *WorkplaceRepo) List() ([]*model.Workplace, error) {
	return GetAllByPrefix(r.db, model.PrefixWorkplace+":", func() *model.Workplace {
		return &model.Workplace{}
	})
}
