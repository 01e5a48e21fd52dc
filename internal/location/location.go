package location

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Fix is a single position report.
type Fix struct {
	Latitude  float64
	Longitude float64
	Time      time.Time
}

// Source yields the current position. Implementations may block until a
// fix is available; they must honor context cancellation.
type Source interface {
	Fix(ctx context.Context) (Fix, error)
}

// ParseFix parses a "lat,lon" pair. Whitespace around either value is
// ignored.
func ParseFix(s string) (Fix, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return Fix{}, fmt.Errorf("invalid fix %q: expected lat,lon", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Fix{}, fmt.Errorf("invalid latitude %q: %w", parts[0], err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Fix{}, fmt.Errorf("invalid longitude %q: %w", parts[1], err)
	}
	if lat < -90 || lat > 90 {
		return Fix{}, fmt.Errorf("latitude %v out of range", lat)
	}
	if lon < -180 || lon > 180 {
		return Fix{}, fmt.Errorf("longitude %v out of range", lon)
	}
	return Fix{Latitude: lat, Longitude: lon}, nil
}
