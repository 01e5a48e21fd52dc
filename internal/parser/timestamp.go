package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// ParseTimestamp parses a natural language timestamp expression such as
// "9:15", "yesterday 17:30" or "2 hours ago", relative to the current time.
func ParseTimestamp(input string) (time.Time, error) {
	return ParseTimestampAt(input, time.Now())
}

// ParseTimestampAt parses a timestamp expression relative to the given
// reference time.
func ParseTimestampAt(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "now") {
		return now, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return time.Time{}, err
	}
	return result.Time, nil
}
