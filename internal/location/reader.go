package location

import (
	"bufio"
	"context"
	"io"
	"strings"
	"time"
)

// ReaderSource streams fixes from a line-oriented reader, typically
// standard input. Each call returns the next parseable line; blank lines
// and comments are skipped, malformed lines are not.
type ReaderSource struct {
	scanner *bufio.Scanner
}

func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{scanner: bufio.NewScanner(r)}
}

func (r *ReaderSource) Fix(ctx context.Context) (Fix, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Fix{}, err
		}
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return Fix{}, err
			}
			return Fix{}, io.EOF
		}
		line := strings.TrimSpace(r.scanner.Text())
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
}
