package geofence

import (
	"fmt"
	"sync"
	"time"

	"github.com/coder/quartz"

	"github.com/mapointeuse/pointeuse/internal/engine"
	apperrors "github.com/mapointeuse/pointeuse/internal/errors"
	"github.com/mapointeuse/pointeuse/internal/logging"
	"github.com/mapointeuse/pointeuse/internal/model"
	"github.com/mapointeuse/pointeuse/internal/notify"
)

const (
	// CountdownDuration is how long an automated transition waits before
	// executing, giving the user a window to cancel.
	CountdownDuration = 10 * time.Second

	// NotificationInterval is the minimum gap between enter/exit
	// notifications.
	NotificationInterval = 5 * time.Minute
)

// ActionKind identifies the automated transition a countdown will execute.
type ActionKind int

const (
	ActionStart ActionKind = iota
	ActionStop
)

func (k ActionKind) String() string {
	if k == ActionStart {
		return "start"
	}
	return "stop"
}

type pendingAction struct {
	kind        ActionKind
	scheduledAt time.Time
	timer       *quartz.Timer
}

// Event is an enter or exit signal for a registered workplace region.
type Event struct {
	WorkplaceKey string
	Entered      bool
}

// Controller reacts to containment changes for one workplace. It owns the
// enter/exit edge state, the notification throttle and at most one pending
// countdown at a time. One instance lives for the duration of an automation
// run and is discarded on stop.
type Controller struct {
	mu               sync.Mutex
	engine           *engine.Engine
	notifier         notify.Notifier
	clock            quartz.Clock
	workplace        *model.Workplace
	inside           bool
	lastNotification time.Time
	pending          *pendingAction
}

// NewController creates a controller for the given workplace. The initial
// containment state is outside.
func NewController(eng *engine.Engine, n notify.Notifier, clock quartz.Clock, w *model.Workplace) *Controller {
	return &Controller{
		engine:    eng,
		notifier:  n,
		clock:     clock,
		workplace: w,
	}
}

// Workplace returns the workplace this controller monitors.
func (c *Controller) Workplace() *model.Workplace {
	return c.workplace
}

// HandleEvent routes a registrar-delivered event to the matching edge
// handler. Events for other workplaces are ignored.
func (c *Controller) HandleEvent(ev Event) {
	if ev.WorkplaceKey != c.workplace.Key {
		return
	}
	if ev.Entered {
		c.OnEnter()
	} else {
		c.OnExit()
	}
}

// Observe feeds a raw location fix through the containment test and fires
// the same edge handlers as registrar events. This is the polling path.
func (c *Controller) Observe(lat, lon float64) {
	inside := Contains(c.workplace, lat, lon)
	logging.DebugLog("location fix",
		logging.KeyWorkplace, c.workplace.Name,
		logging.KeyDistance, Distance(c.workplace.Latitude, c.workplace.Longitude, lat, lon),
		"inside", inside)
	if inside {
		c.OnEnter()
	} else {
		c.OnExit()
	}
}

// OnEnter handles an outside-to-inside edge. Duplicate enter signals while
// already inside are ignored.
func (c *Controller) OnEnter() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inside {
		return
	}
	c.inside = true

	logging.Info("entered workplace", logging.KeyWorkplace, c.workplace.Name)
	c.maybeNotify(c.workplace.NotifyOnEnter, notify.IDEnter,
		"Arrived at "+c.workplace.Name,
		"You entered your workplace area.")

	if c.workplace.AutoStart {
		c.schedule(ActionStart)
	}
}

// OnExit handles an inside-to-outside edge. Duplicate exit signals while
// already outside are ignored.
func (c *Controller) OnExit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.inside {
		return
	}
	c.inside = false

	logging.Info("left workplace", logging.KeyWorkplace, c.workplace.Name)
	c.maybeNotify(c.workplace.NotifyOnExit, notify.IDExit,
		"Left "+c.workplace.Name,
		"You left your workplace area.")

	if c.workplace.AutoStop {
		c.schedule(ActionStop)
	}
}

// Inside reports the last known containment state.
func (c *Controller) Inside() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inside
}

// Pending reports whether a countdown is in flight and which action it
// would execute.
func (c *Controller) Pending() (ActionKind, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		return 0, false
	}
	return c.pending.kind, true
}

// CancelPending discards any in-flight countdown. Once this returns, the
// cancelled action can no longer fire.
func (c *Controller) CancelPending() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearPendingLocked()
}

// Stop tears the controller down, cancelling any pending countdown.
func (c *Controller) Stop() {
	c.CancelPending()
}

// maybeNotify shows a one-shot notification unless throttled. The throttle
// suppresses the notification only; automation proceeds regardless.
func (c *Controller) maybeNotify(enabled bool, id int, title, body string) {
	if !enabled {
		return
	}
	now := c.clock.Now()
	if now.Sub(c.lastNotification) < NotificationInterval {
		logging.DebugLog("notification throttled", logging.KeyWorkplace, c.workplace.Name)
		return
	}
	c.lastNotification = now
	c.notifier.ShowOnce(id, title, body)
}

// schedule replaces any pending countdown with a new one. Caller holds mu.
func (c *Controller) schedule(kind ActionKind) {
	c.clearPendingLocked()

	action := &pendingAction{
		kind:        kind,
		scheduledAt: c.clock.Now(),
	}
	action.timer = c.clock.AfterFunc(CountdownDuration, func() {
		c.fire(action)
	})
	c.pending = action

	verb := "start"
	if kind == ActionStop {
		verb = "pause"
	}
	logging.Info("countdown scheduled",
		logging.KeyOperation, verb,
		logging.KeyWorkplace, c.workplace.Name)
	c.notifier.ShowOngoing(notify.IDCountdown,
		fmt.Sprintf("Auto-%s in %d seconds", verb, int(CountdownDuration.Seconds())),
		"Cancel to keep your session unchanged.",
		c.CancelPending)
}

// clearPendingLocked stops and clears the current countdown. Caller holds mu.
func (c *Controller) clearPendingLocked() {
	if c.pending == nil {
		return
	}
	c.pending.timer.Stop()
	c.pending = nil
	c.notifier.Cancel(notify.IDCountdown)
	logging.DebugLog("countdown cancelled", logging.KeyWorkplace, c.workplace.Name)
}

// fire runs when a countdown elapses. The slot check under the mutex makes
// cancellation synchronous: once CancelPending has returned, a late timer
// callback finds a different (or no) pending action and does nothing.
func (c *Controller) fire(a *pendingAction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending != a {
		return
	}
	c.pending = nil
	c.notifier.Cancel(notify.IDCountdown)

	var err error
	switch a.kind {
	case ActionStart:
		_, err = c.engine.StartWork()
	case ActionStop:
		_, err = c.engine.StartPause()
	}

	if err != nil {
		// Automated transitions never surface errors. A session started
		// or paused manually during the countdown is the normal case.
		if apperrors.IsPrecondition(err) {
			logging.Info("automated action skipped",
				logging.KeyOperation, a.kind.String(),
				logging.KeyError, err)
		} else {
			logging.Error("automated action failed",
				logging.KeyOperation, a.kind.String(),
				logging.KeyError, err)
		}
		return
	}

	title := "Work session started"
	body := "Automatic clock-in at " + c.workplace.Name
	if a.kind == ActionStop {
		title = "Work session paused"
		body = "Automatic pause after leaving " + c.workplace.Name
	}
	c.notifier.ShowOnce(notify.IDConfirm, title, body)
	logging.Info("automated action executed",
		logging.KeyOperation, a.kind.String(),
		logging.KeyWorkplace, c.workplace.Name)
}
