package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapointeuse/pointeuse/internal/model"
)

// Helper to create an in-memory database for testing
func setupTestDB(t *testing.T) *DB {
	db, err := Open(Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// =============================================================================
// DB Tests
// =============================================================================

func TestOpenClose(t *testing.T) {
	t.Run("in_memory", func(t *testing.T) {
		db, err := Open(Options{InMemory: true})
		require.NoError(t, err)
		assert.NotNil(t, db)
		assert.NoError(t, db.Close())
	})

	t.Run("empty_path_uses_in_memory", func(t *testing.T) {
		db, err := Open(Options{Path: ""})
		require.NoError(t, err)
		assert.Equal(t, "", db.Path())
		db.Close()
	})

	t.Run("on_disk", func(t *testing.T) {
		dir := t.TempDir()
		db, err := Open(Options{Path: dir})
		require.NoError(t, err)
		assert.Equal(t, dir, db.Path())
		db.Close()
	})
}

func TestDefaultPath(t *testing.T) {
	path := DefaultPath()
	assert.Contains(t, path, "pointeuse")
	assert.Contains(t, path, "db")
}

func TestGetSetDelete(t *testing.T) {
	db := setupTestDB(t)

	s := model.NewSession(time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC))
	s.SetKey("session:test1")
	require.NoError(t, db.Set(s))

	got := &model.Session{}
	require.NoError(t, db.Get("session:test1", got))
	assert.Equal(t, "2025-03-14", got.Date)
	assert.Equal(t, model.StatusInProgress, got.Status)

	exists, err := db.Exists("session:test1")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, db.Delete("session:test1"))
	err = db.Get("session:test1", &model.Session{})
	assert.True(t, IsErrKeyNotFound(err))
}

// =============================================================================
// SessionRepo Tests
// =============================================================================

func mustCreate(t *testing.T, repo *SessionRepo, date string, start time.Time, status model.Status, minutes int64) *model.Session {
	t.Helper()
	s := &model.Session{
		Date:          date,
		StartTime:     start,
		Status:        status,
		WorkedMinutes: minutes,
	}
	if status == model.StatusCompleted {
		s.EndTime = start.Add(time.Duration(minutes) * time.Minute)
	}
	require.NoError(t, repo.Create(s))
	return s
}

func TestSessionRepoCreateGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepo(db)

	s := mustCreate(t, repo, "2025-03-14", time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC), model.StatusInProgress, 0)
	assert.Contains(t, s.Key, "session:")

	got, err := repo.Get(s.Key)
	require.NoError(t, err)
	assert.Equal(t, s.Date, got.Date)
}

func TestSessionRepoOpenForDate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepo(db)

	day := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	mustCreate(t, repo, "2025-03-14", day, model.StatusCompleted, 60)

	open, err := repo.OpenForDate("2025-03-14")
	require.NoError(t, err)
	assert.Nil(t, open, "completed sessions are not open")

	created := mustCreate(t, repo, "2025-03-14", day.Add(2*time.Hour), model.StatusPaused, 0)

	open, err = repo.OpenForDate("2025-03-14")
	require.NoError(t, err)
	require.NotNil(t, open)
	assert.Equal(t, created.Key, open.Key)

	// Other dates are unaffected
	open, err = repo.OpenForDate("2025-03-15")
	require.NoError(t, err)
	assert.Nil(t, open)
}

func TestSessionRepoListOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepo(db)

	d1 := time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	d3 := time.Date(2025, 3, 14, 14, 0, 0, 0, time.UTC)
	mustCreate(t, repo, "2025-03-13", d1, model.StatusCompleted, 60)
	mustCreate(t, repo, "2025-03-14", d2, model.StatusCompleted, 120)
	mustCreate(t, repo, "2025-03-14", d3, model.StatusCompleted, 30)

	all, err := repo.List()
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Date descending, then start time descending.
	assert.Equal(t, "2025-03-14", all[0].Date)
	assert.Equal(t, d3, all[0].StartTime)
	assert.Equal(t, "2025-03-14", all[1].Date)
	assert.Equal(t, d2, all[1].StartTime)
	assert.Equal(t, "2025-03-13", all[2].Date)
}

func TestSessionRepoListBetween(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepo(db)

	for day := 10; day <= 16; day++ {
		start := time.Date(2025, 3, day, 9, 0, 0, 0, time.UTC)
		mustCreate(t, repo, start.Format(model.DateLayout), start, model.StatusCompleted, 60)
	}

	start := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	between, err := repo.ListBetween(start, end)
	require.NoError(t, err)
	assert.Len(t, between, 3)
	for _, s := range between {
		assert.GreaterOrEqual(t, s.Date, "2025-03-12")
		assert.LessOrEqual(t, s.Date, "2025-03-14")
	}
}

func TestSessionRepoUpdateDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepo(db)

	s := mustCreate(t, repo, "2025-03-14", time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC), model.StatusInProgress, 0)

	s.Status = model.StatusPaused
	require.NoError(t, repo.Update(s))

	got, err := repo.Get(s.Key)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPaused, got.Status)

	require.NoError(t, repo.Delete(s.Key))
	_, err = repo.Get(s.Key)
	assert.True(t, IsErrKeyNotFound(err))
}

// =============================================================================
// WorkplaceRepo Tests
// =============================================================================

func TestWorkplaceRepoUpsertDeactivatesOthers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkplaceRepo(db)

	first := model.NewWorkplace("Office", 48.8566, 2.3522, 100)
	require.NoError(t, repo.Upsert(first))

	second := model.NewWorkplace("Client site", 45.7640, 4.8357, 200)
	require.NoError(t, repo.Upsert(second))

	active, err := repo.GetActive()
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, second.Key, active.Key)

	all, err := repo.List()
	require.NoError(t, err)
	activeCount := 0
	for _, w := range all {
		if w.IsActive {
			activeCount++
		}
	}
	assert.Equal(t, 1, activeCount)
}

func TestWorkplaceRepoGetActiveEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkplaceRepo(db)

	active, err := repo.GetActive()
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestWorkplaceRepoDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkplaceRepo(db)

	w := model.NewWorkplace("Office", 48.8566, 2.3522, 100)
	require.NoError(t, repo.Upsert(w))
	require.NoError(t, repo.Delete(w))

	active, err := repo.GetActive()
	require.NoError(t, err)
	assert.Nil(t, active)
}

// =============================================================================
// Watch Tests
// =============================================================================

func TestWatchDeliversInitialAndChanges(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepo(db)

	calls := make(chan struct{}, 16)
	sub := db.Watch(context.Background(), model.PrefixSession+":", func() {
		calls <- struct{}{}
	})
	defer sub.Cancel()

	// Initial delivery happens without any write.
	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("no initial delivery")
	}

	mustCreate(t, repo, "2025-03-14", time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC), model.StatusInProgress, 0)

	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("no delivery after change")
	}
}

func TestWatchCancelStopsDelivery(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepo(db)

	calls := make(chan struct{}, 16)
	sub := db.Watch(context.Background(), model.PrefixSession+":", func() {
		calls <- struct{}{}
	})

	<-calls // initial
	sub.Cancel()
	sub.Cancel() // idempotent

	mustCreate(t, repo, "2025-03-14", time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC), model.StatusInProgress, 0)

	select {
	case <-calls:
		t.Fatal("delivery after cancel")
	case <-time.After(200 * time.Millisecond):
	}
}
