package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/mapointeuse/pointeuse/internal/errors"
	"github.com/mapointeuse/pointeuse/internal/model"
	"github.com/mapointeuse/pointeuse/internal/storage"
)

func setupEngine(t *testing.T) (*Engine, *quartz.Mock, *storage.SessionRepo) {
	t.Helper()
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	clock := quartz.NewMock(t)
	clock.Set(time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local))
	repo := storage.NewSessionRepo(db)
	return New(repo, clock), clock, repo
}

func TestStartWork(t *testing.T) {
	eng, clock, _ := setupEngine(t)

	session, err := eng.StartWork()
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, session.Status)
	assert.Equal(t, clock.Now().Format(model.DateLayout), session.Date)
	assert.True(t, session.EndTime.IsZero())
	assert.NotEmpty(t, session.Key)
}

func TestStartWorkConflict(t *testing.T) {
	eng, _, _ := setupEngine(t)

	_, err := eng.StartWork()
	require.NoError(t, err)

	_, err = eng.StartWork()
	require.Error(t, err)
	assert.True(t, perrors.IsConflict(err))
}

func TestStartWorkConflictWhilePaused(t *testing.T) {
	eng, _, _ := setupEngine(t)

	_, err := eng.StartWork()
	require.NoError(t, err)
	_, err = eng.StartPause()
	require.NoError(t, err)

	// A paused session is still open; starting again must fail.
	_, err = eng.StartWork()
	assert.True(t, perrors.IsConflict(err))
}

func TestEndWork(t *testing.T) {
	eng, clock, _ := setupEngine(t)

	started, err := eng.StartWork()
	require.NoError(t, err)

	clock.Advance(125 * time.Second)

	ended, err := eng.EndWork()
	require.NoError(t, err)
	assert.Equal(t, started.Key, ended.Key)
	assert.Equal(t, model.StatusCompleted, ended.Status)
	assert.Equal(t, int64(2), ended.WorkedMinutes, "125s floors to 2 minutes")
	assert.False(t, ended.EndTime.IsZero())
}

func TestEndWorkNoSession(t *testing.T) {
	eng, _, _ := setupEngine(t)

	_, err := eng.EndWork()
	require.Error(t, err)
	assert.True(t, perrors.IsNotFound(err))
}

func TestEndWorkClockSkewClampsToZero(t *testing.T) {
	eng, clock, repo := setupEngine(t)

	// A session whose recorded start lies ahead of the wall clock must not
	// produce negative credit when closed.
	skewed := model.NewSession(clock.Now().Add(30 * time.Minute))
	skewed.Date = clock.Now().Format(model.DateLayout)
	require.NoError(t, repo.Create(skewed))

	ended, err := eng.EndWork()
	require.NoError(t, err)
	assert.Equal(t, int64(0), ended.WorkedMinutes)
}

func TestStartEndCycleAllowsMultipleCompletedPerDay(t *testing.T) {
	eng, clock, _ := setupEngine(t)

	for i := 0; i < 3; i++ {
		_, err := eng.StartWork()
		require.NoError(t, err)
		clock.Advance(time.Hour)
		_, err = eng.EndWork()
		require.NoError(t, err)
	}

	sessions, err := eng.Today()
	require.NoError(t, err)
	assert.Len(t, sessions, 3)
	assert.Equal(t, int64(180), model.DailyTotal(sessions))
}

func TestPauseResume(t *testing.T) {
	eng, _, _ := setupEngine(t)

	// Pause without a session
	_, err := eng.StartPause()
	assert.True(t, perrors.IsNotFound(err))

	_, err = eng.StartWork()
	require.NoError(t, err)

	// Resume while in progress is invalid
	_, err = eng.EndPause()
	assert.True(t, perrors.IsInvalidState(err))

	paused, err := eng.StartPause()
	require.NoError(t, err)
	assert.Equal(t, model.StatusPaused, paused.Status)

	// Double pause is invalid
	_, err = eng.StartPause()
	assert.True(t, perrors.IsInvalidState(err))

	resumed, err := eng.EndPause()
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, resumed.Status)
}

func TestEndWorkWhilePaused(t *testing.T) {
	eng, clock, _ := setupEngine(t)

	_, err := eng.StartWork()
	require.NoError(t, err)
	_, err = eng.StartPause()
	require.NoError(t, err)

	clock.Advance(10 * time.Minute)

	// Ending while paused closes the session directly.
	ended, err := eng.EndWork()
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, ended.Status)
	assert.Equal(t, int64(10), ended.WorkedMinutes)
}

func TestUpdateSessionRecomputesMinutes(t *testing.T) {
	eng, clock, _ := setupEngine(t)

	_, err := eng.StartWork()
	require.NoError(t, err)
	clock.Advance(time.Hour)
	session, err := eng.EndWork()
	require.NoError(t, err)
	require.Equal(t, int64(60), session.WorkedMinutes)

	// Stretch the end time: minutes follow.
	session.EndTime = session.StartTime.Add(150 * time.Minute)
	require.NoError(t, eng.UpdateSession(session))

	got, err := eng.Today()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(150), got[0].WorkedMinutes)
	assert.Equal(t, model.StatusCompleted, got[0].Status)
}

func TestUpdateSessionClearEndTimeReopens(t *testing.T) {
	eng, clock, _ := setupEngine(t)

	_, err := eng.StartWork()
	require.NoError(t, err)
	clock.Advance(time.Hour)
	session, err := eng.EndWork()
	require.NoError(t, err)

	session.EndTime = time.Time{}
	require.NoError(t, eng.UpdateSession(session))

	open, err := eng.Open()
	require.NoError(t, err)
	require.NotNil(t, open)
	assert.Equal(t, int64(0), open.WorkedMinutes)
	assert.Equal(t, model.StatusInProgress, open.Status)
}

func TestUpdateSessionEndBeforeStart(t *testing.T) {
	eng, _, _ := setupEngine(t)

	session, err := eng.StartWork()
	require.NoError(t, err)

	session.EndTime = session.StartTime.Add(-time.Hour)
	err = eng.UpdateSession(session)
	assert.ErrorIs(t, err, perrors.ErrEndBeforeStart)
}

func TestDeleteSession(t *testing.T) {
	eng, _, _ := setupEngine(t)

	session, err := eng.StartWork()
	require.NoError(t, err)
	require.NoError(t, eng.DeleteSession(session.Key))

	open, err := eng.Open()
	require.NoError(t, err)
	assert.Nil(t, open)
}

func TestConcurrentStartWorkOnlyOneSucceeds(t *testing.T) {
	eng, _, _ := setupEngine(t)

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = eng.StartWork()
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.True(t, perrors.IsConflict(err))
		}
	}
	assert.Equal(t, 1, succeeded)
}
