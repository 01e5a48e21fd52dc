package geofence

import (
	"context"
	"time"

	"github.com/coder/quartz"

	"github.com/mapointeuse/pointeuse/internal/location"
	"github.com/mapointeuse/pointeuse/internal/logging"
)

// DefaultPollInterval is how often the polling path samples the location
// source.
const DefaultPollInterval = 30 * time.Second

// Poller is the continuous-polling variant of geofence monitoring. It
// samples a location source on an interval and feeds each fix through the
// controller's containment test, so both delivery paths share the same
// edge and throttle logic.
type Poller struct {
	ctrl     *Controller
	source   location.Source
	clock    quartz.Clock
	interval time.Duration
}

func NewPoller(ctrl *Controller, source location.Source, clock quartz.Clock, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		ctrl:     ctrl,
		source:   source,
		clock:    clock,
		interval: interval,
	}
}

// Run samples the source until the context is cancelled. Source errors are
// logged and skipped; monitoring continues with the next tick.
func (p *Poller) Run(ctx context.Context) error {
	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	p.sample(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.sample(ctx)
		}
	}
}

func (p *Poller) sample(ctx context.Context) {
	fix, err := p.source.Fix(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		logging.Warn("location fix unavailable", logging.KeyError, err)
		return
	}
	p.ctrl.Observe(fix.Latitude, fix.Longitude)
}
