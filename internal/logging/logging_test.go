package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTextHandler(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: slog.LevelInfo, Output: &buf})

	Info("work started", KeySessionID, "session:abc")

	out := buf.String()
	assert.Contains(t, out, "work started")
	assert.Contains(t, out, "session:abc")
}

func TestInitJSONHandler(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: slog.LevelDebug, JSON: true, Output: &buf})

	DebugLog("containment check", KeyDistance, 42.5)

	line := strings.TrimSpace(buf.String())
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "containment check", entry["msg"])
	assert.Equal(t, 42.5, entry[KeyDistance])
	assert.True(t, Debug)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: slog.LevelWarn, Output: &buf})

	Info("should be dropped")
	Warn("should appear")

	out := buf.String()
	assert.NotContains(t, out, "should be dropped")
	assert.Contains(t, out, "should appear")
	assert.False(t, Debug)
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: slog.LevelInfo, Output: &buf})

	With(KeyWorkplace, "Office").Info("entered")

	assert.Contains(t, buf.String(), "Office")
}
