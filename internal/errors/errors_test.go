package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConflictError(t *testing.T) {
	err := NewConflictError("session already active", "stop it first with 'pointeuse stop'")

	assert.Equal(t, "session already active", err.Error())
	assert.True(t, IsConflict(err))
	assert.False(t, IsNotFound(err))
	assert.False(t, IsInvalidState(err))
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("no open session for today", "start one with 'pointeuse start'")

	assert.True(t, IsNotFound(err))
	assert.False(t, IsConflict(err))
}

func TestInvalidStateError(t *testing.T) {
	err := NewInvalidStateError("cannot pause", "paused", "resume first")

	assert.Contains(t, err.Error(), "cannot pause")
	assert.Contains(t, err.Error(), "paused")
	assert.True(t, IsInvalidState(err))
}

func TestInvalidStateErrorWithoutCurrent(t *testing.T) {
	err := NewInvalidStateError("cannot pause", "", "")
	assert.Equal(t, "cannot pause", err.Error())
}

func TestIsPrecondition(t *testing.T) {
	assert.True(t, IsPrecondition(NewConflictError("c", "")))
	assert.True(t, IsPrecondition(NewNotFoundError("n", "")))
	assert.True(t, IsPrecondition(NewInvalidStateError("i", "", "")))
	assert.False(t, IsPrecondition(stderrors.New("io failure")))
	assert.False(t, IsPrecondition(nil))
}

func TestIsPreconditionWrapped(t *testing.T) {
	err := fmt.Errorf("auto start: %w", NewConflictError("session already active", ""))
	assert.True(t, IsPrecondition(err))
	assert.True(t, IsConflict(err))
}

func TestSuggestion(t *testing.T) {
	assert.Equal(t, "stop it", Suggestion(NewConflictError("c", "stop it")))
	assert.Equal(t, "start one", Suggestion(NewNotFoundError("n", "start one")))
	assert.Equal(t, "resume", Suggestion(NewInvalidStateError("i", "", "resume")))
	assert.Equal(t, "", Suggestion(stderrors.New("plain")))
}

func TestWrap(t *testing.T) {
	base := stderrors.New("disk error")
	wrapped := Wrap(base, "saving session")

	assert.ErrorIs(t, wrapped, base)
	assert.Contains(t, wrapped.Error(), "saving session")
	assert.Nil(t, Wrap(nil, "noop"))
}

func TestWrapf(t *testing.T) {
	base := stderrors.New("disk error")
	wrapped := Wrapf(base, "saving session %s", "abc")

	assert.ErrorIs(t, wrapped, base)
	assert.Contains(t, wrapped.Error(), "abc")
	assert.Nil(t, Wrapf(nil, "noop %d", 1))
}
