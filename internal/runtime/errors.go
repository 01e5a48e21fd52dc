package runtime

import (
	"github.com/mapointeuse/pointeuse/internal/errors"
	"github.com/mapointeuse/pointeuse/internal/output"
)

// ReportError prints an error in the active output format. CLI output gets
// the message plus the fix-it suggestion when one exists; JSON output gets
// an error envelope.
func (c *Context) ReportError(err error) {
	if err == nil {
		return
	}

	if c.IsJSON() {
		_ = c.Formatter.JSON(&output.ErrorResponse{
			Status:     "error",
			Error:      err.Error(),
			Suggestion: errors.Suggestion(err),
		})
		return
	}

	cli := c.CLIFormatter()
	cli.Error(err.Error())
	if suggestion := errors.Suggestion(err); suggestion != "" {
		cli.Muted(suggestion)
	}
}
