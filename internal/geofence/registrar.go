package geofence

import (
	"sync"

	"github.com/mapointeuse/pointeuse/internal/logging"
	"github.com/mapointeuse/pointeuse/internal/model"
)

// Registrar is the platform-level region-monitoring registration. It
// delivers enter/exit events asynchronously through the handler passed to
// Register. Saving a workplace tears the old registration down and
// registers the new one; deleting a workplace unregisters it.
type Registrar interface {
	Register(w *model.Workplace, handler func(Event)) error
	Unregister(key string) error
	UnregisterAll() error
}

// MemoryRegistrar is an in-process registrar. It holds handlers by
// workplace key and lets callers inject events, which is what the polling
// runtime and the tests use in place of OS region monitoring.
type MemoryRegistrar struct {
	mu       sync.Mutex
	handlers map[string]func(Event)
}

func NewMemoryRegistrar() *MemoryRegistrar {
	return &MemoryRegistrar{handlers: make(map[string]func(Event))}
}

func (r *MemoryRegistrar) Register(w *model.Workplace, handler func(Event)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[w.Key] = handler
	logging.Info("geofence registered", logging.KeyWorkplace, w.Name)
	return nil
}

func (r *MemoryRegistrar) Unregister(key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handlers, key)
	logging.Info("geofence unregistered", logging.KeyWorkplace, key)
	return nil
}

func (r *MemoryRegistrar) UnregisterAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers = make(map[string]func(Event))
	logging.Info("all geofences unregistered")
	return nil
}

// Deliver dispatches an event to the registered handler for its workplace,
// if any.
func (r *MemoryRegistrar) Deliver(ev Event) {
	r.mu.Lock()
	handler := r.handlers[ev.WorkplaceKey]
	r.mu.Unlock()
	if handler != nil {
		handler(ev)
	}
}
