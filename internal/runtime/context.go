// Package runtime provides application runtime context for Pointeuse.
package runtime

import (
	"os"

	"github.com/coder/quartz"

	"github.com/mapointeuse/pointeuse/internal/engine"
	"github.com/mapointeuse/pointeuse/internal/output"
	"github.com/mapointeuse/pointeuse/internal/storage"
)

// Context holds the application runtime context.
type Context struct {
	DB        *storage.DB
	Clock     quartz.Clock
	Formatter *output.Formatter

	SessionRepo   *storage.SessionRepo
	WorkplaceRepo *storage.WorkplaceRepo
	Engine        *engine.Engine

	Debug bool
}

// Options configures the runtime context.
type Options struct {
	DBPath    string
	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DBPath:    storage.DefaultPath(),
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
	}
}

// New creates a new runtime context.
func New(opts Options) (*Context, error) {
	if envPath := os.Getenv("POINTEUSE_DATABASE"); envPath != "" {
		if envPath == ":memory:" {
			opts.InMemory = true
		} else {
			opts.DBPath = envPath
		}
	}

	db, err := storage.Open(storage.Options{
		Path:     opts.DBPath,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, err
	}

	clock := quartz.NewReal()
	sessionRepo := storage.NewSessionRepo(db)
	workplaceRepo := storage.NewWorkplaceRepo(db)

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		DB:            db,
		Clock:         clock,
		Formatter:     formatter,
		SessionRepo:   sessionRepo,
		WorkplaceRepo: workplaceRepo,
		Engine:        engine.New(sessionRepo, clock),
		Debug:         opts.Debug,
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}
