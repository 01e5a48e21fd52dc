package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestampNow(t *testing.T) {
	ref := time.Date(2025, 3, 14, 9, 30, 0, 0, time.Local)

	t.Run("empty_string_returns_now", func(t *testing.T) {
		got, err := ParseTimestampAt("", ref)
		require.NoError(t, err)
		assert.Equal(t, ref, got)
	})

	t.Run("now_case_insensitive", func(t *testing.T) {
		got, err := ParseTimestampAt("NOW", ref)
		require.NoError(t, err)
		assert.Equal(t, ref, got)
	})

	t.Run("whitespace_trimmed", func(t *testing.T) {
		got, err := ParseTimestampAt("  now  ", ref)
		require.NoError(t, err)
		assert.Equal(t, ref, got)
	})
}

func TestParseTimestampNatural(t *testing.T) {
	ref := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	t.Run("clock_time", func(t *testing.T) {
		got, err := ParseTimestampAt("8:15", ref)
		require.NoError(t, err)
		assert.Equal(t, 8, got.Hour())
		assert.Equal(t, 15, got.Minute())
	})

	t.Run("yesterday", func(t *testing.T) {
		got, err := ParseTimestampAt("yesterday", ref)
		require.NoError(t, err)
		assert.Equal(t, 13, got.Day())
	})

	t.Run("relative_hours", func(t *testing.T) {
		got, err := ParseTimestampAt("2 hours ago", ref)
		require.NoError(t, err)
		assert.Equal(t, 7, got.Hour())
	})

	t.Run("iso_date", func(t *testing.T) {
		got, err := ParseTimestampAt("2025-03-01", ref)
		require.NoError(t, err)
		assert.Equal(t, 2025, got.Year())
		assert.Equal(t, time.March, got.Month())
		assert.Equal(t, 1, got.Day())
	})

	t.Run("garbage_errors", func(t *testing.T) {
		_, err := ParseTimestampAt("not a time at all zzz", ref)
		assert.Error(t, err)
	})
}
