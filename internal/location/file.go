package location

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

// FileSource reads the current position from a text file. An external
// agent keeps the file updated; the last non-empty line wins, so the
// agent can either truncate-and-write or append.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (f *FileSource) Fix(ctx context.Context) (Fix, error) {
	if err := ctx.Err(); err != nil {
		return Fix{}, err
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return Fix{}, fmt.Errorf("failed to read location file: %w", err)
	}
	lines := strings.Split(string(data), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fix, err := ParseFix(line)
		if err != nil {
			return Fix{}, err
		}
		fix.Time = time.Now()
		return fix, nil
	}
	return Fix{}, fmt.Errorf("location file %s has no fix", f.path)
}
