package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/coder/quartz"
	"github.com/robfig/cron/v3"

	"github.com/mapointeuse/pointeuse/internal/engine"
	"github.com/mapointeuse/pointeuse/internal/errors"
	"github.com/mapointeuse/pointeuse/internal/geofence"
	"github.com/mapointeuse/pointeuse/internal/location"
	"github.com/mapointeuse/pointeuse/internal/logging"
	"github.com/mapointeuse/pointeuse/internal/model"
	"github.com/mapointeuse/pointeuse/internal/notify"
	"github.com/mapointeuse/pointeuse/internal/output"
	"github.com/mapointeuse/pointeuse/internal/storage"
)

// Options configures the automation runner.
type Options struct {
	Source       location.Source
	Notifier     notify.Notifier
	PollInterval time.Duration
}

// Runner owns one automation run: it loads the active workplace, feeds
// location fixes through the geofence controller and keeps the ongoing
// tracking notification current while a session is open.
type Runner struct {
	db        *storage.DB
	sessions  *storage.SessionRepo
	engine    *engine.Engine
	clock     quartz.Clock
	notifier  notify.Notifier
	source    location.Source
	interval  time.Duration
	workplace *model.Workplace

	ctrl *geofence.Controller
	cron *cron.Cron
}

// NewRunner creates a runner for the active workplace. It fails if no
// active workplace is configured.
func NewRunner(db *storage.DB, eng *engine.Engine, clock quartz.Clock, opts Options) (*Runner, error) {
	workplace, err := storage.NewWorkplaceRepo(db).GetActive()
	if err != nil {
		return nil, err
	}
	if workplace == nil {
		return nil, errors.ErrWorkplaceNotFound
	}

	return &Runner{
		db:        db,
		sessions:  storage.NewSessionRepo(db),
		engine:    eng,
		clock:     clock,
		notifier:  opts.Notifier,
		source:    opts.Source,
		interval:  opts.PollInterval,
		workplace: workplace,
	}, nil
}

// Workplace returns the workplace being monitored.
func (r *Runner) Workplace() *model.Workplace {
	return r.workplace
}

// Run monitors location until the context is cancelled. It blocks.
func (r *Runner) Run(ctx context.Context) error {
	r.ctrl = geofence.NewController(r.engine, r.notifier, r.clock, r.workplace)
	defer r.ctrl.Stop()

	logging.Info("watch started",
		logging.KeyWorkplace, r.workplace.Name,
		"auto_start", r.workplace.AutoStart,
		"auto_stop", r.workplace.AutoStop)

	// Refresh the tracking notification whenever a session record changes.
	sub := r.db.Watch(ctx, model.PrefixSession, r.refreshTracking)
	defer sub.Cancel()

	// And once a minute, so the elapsed time in the notification advances
	// even without store changes.
	r.cron = cron.New()
	if _, err := r.cron.AddFunc("* * * * *", r.refreshTracking); err != nil {
		return fmt.Errorf("failed to schedule tracking refresh: %w", err)
	}
	r.cron.Start()
	defer func() {
		stopCtx := r.cron.Stop()
		<-stopCtx.Done()
	}()

	poller := geofence.NewPoller(r.ctrl, r.source, r.clock, r.interval)
	err := poller.Run(ctx)

	r.notifier.Cancel(notify.IDTracking)
	logging.Info("watch stopped", logging.KeyWorkplace, r.workplace.Name)

	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

// refreshTracking updates the ongoing tracking notification to match the
// current open session, or clears it when none exists.
func (r *Runner) refreshTracking() {
	now := r.clock.Now()
	open, err := r.sessions.OpenForDate(now.Format(model.DateLayout))
	if err != nil {
		logging.Warn("failed to read open session", logging.KeyError, err)
		return
	}
	if open == nil {
		r.notifier.Cancel(notify.IDTracking)
		return
	}

	state := "Working"
	if open.Status == model.StatusPaused {
		state = "Paused"
	}
	r.notifier.ShowOngoing(notify.IDTracking,
		fmt.Sprintf("%s for %s", state, output.FormatDuration(open.Elapsed(now))),
		fmt.Sprintf("Started at %s", output.FormatTimeOnly(open.StartTime)),
		nil)
}
