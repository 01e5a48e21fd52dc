// Package notify presents notifications to the user. Implementations carry
// no business logic; the geofence controller and watch runner decide what to
// show and when.
package notify

// Well-known notification slots. Reusing an ID replaces the previous
// notification in that slot.
const (
	IDTracking  = 1001 // ongoing tracking status
	IDEnter     = 2001 // arrived at workplace
	IDExit      = 2002 // left workplace
	IDCountdown = 4000 // cancellable automation countdown
	IDConfirm   = 4001 // automation confirmation
)

// Notifier shows notifications. ShowOngoing presents a persistent
// notification with a cancel control; invoking cancelAction is how the user
// aborts a pending automated transition.
type Notifier interface {
	ShowOngoing(id int, title, body string, cancelAction func())
	ShowOnce(id int, title, body string)
	Cancel(id int)
}

// Multi fans a notification out to several notifiers.
type Multi []Notifier

// ShowOngoing shows on every notifier. Only the first notifier receives the
// cancel action so the abort runs once.
func (m Multi) ShowOngoing(id int, title, body string, cancelAction func()) {
	for i, n := range m {
		if i == 0 {
			n.ShowOngoing(id, title, body, cancelAction)
		} else {
			n.ShowOngoing(id, title, body, nil)
		}
	}
}

// ShowOnce shows on every notifier.
func (m Multi) ShowOnce(id int, title, body string) {
	for _, n := range m {
		n.ShowOnce(id, title, body)
	}
}

// Cancel cancels on every notifier.
func (m Multi) Cancel(id int) {
	for _, n := range m {
		n.Cancel(id)
	}
}
