package runtime

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapointeuse/pointeuse/internal/errors"
	"github.com/mapointeuse/pointeuse/internal/output"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.NotEmpty(t, opts.DBPath)
	assert.False(t, opts.InMemory)
	assert.Equal(t, output.FormatCLI, opts.Format)
	assert.Equal(t, output.ColorAuto, opts.ColorMode)
}

func TestNew(t *testing.T) {
	ctx, err := New(Options{InMemory: true})
	require.NoError(t, err)
	defer ctx.Close()

	assert.NotNil(t, ctx.DB)
	assert.NotNil(t, ctx.Formatter)
	assert.NotNil(t, ctx.SessionRepo)
	assert.NotNil(t, ctx.WorkplaceRepo)
	assert.NotNil(t, ctx.Engine)
	assert.NotNil(t, ctx.Clock)
}

func TestNewWithOptions(t *testing.T) {
	ctx, err := New(Options{
		InMemory:  true,
		Format:    output.FormatJSON,
		ColorMode: output.ColorNever,
		Debug:     true,
	})
	require.NoError(t, err)
	defer ctx.Close()

	assert.Equal(t, output.FormatJSON, ctx.Formatter.Format)
	assert.Equal(t, output.ColorNever, ctx.Formatter.ColorMode)
	assert.True(t, ctx.IsJSON())
	assert.True(t, ctx.Debug)
}

func TestNewWithEnvVariable(t *testing.T) {
	t.Setenv("POINTEUSE_DATABASE", ":memory:")

	ctx, err := New(Options{})
	require.NoError(t, err)
	defer ctx.Close()

	assert.NotNil(t, ctx.DB)
}

func TestReportErrorCLI(t *testing.T) {
	ctx, err := New(Options{InMemory: true, ColorMode: output.ColorNever})
	require.NoError(t, err)
	defer ctx.Close()

	var buf bytes.Buffer
	ctx.Formatter.Writer = &buf

	ctx.ReportError(errors.NewConflictError(
		"session already active",
		"Use 'pointeuse stop' to end it first"))

	out := buf.String()
	assert.Contains(t, out, "session already active")
	assert.Contains(t, out, "pointeuse stop")
}

func TestReportErrorJSON(t *testing.T) {
	ctx, err := New(Options{InMemory: true, Format: output.FormatJSON})
	require.NoError(t, err)
	defer ctx.Close()

	var buf bytes.Buffer
	ctx.Formatter.Writer = &buf

	ctx.ReportError(errors.NewNotFoundError("no open session", "Start one first"))

	out := buf.String()
	assert.Contains(t, out, `"status": "error"`)
	assert.Contains(t, out, "no open session")
}
