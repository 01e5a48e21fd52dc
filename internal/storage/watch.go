package storage

import (
	"context"
	"sync"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/pb"

	"github.com/mapointeuse/pointeuse/internal/logging"
)

// Subscription is a cancellable watch on a key prefix. The callback runs
// once immediately with the current state and again after every change.
type Subscription struct {
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

// Cancel stops the subscription and waits for the delivery goroutine to
// exit. No callback runs after Cancel returns.
func (s *Subscription) Cancel() {
	s.stopOnce.Do(func() {
		s.cancel()
		<-s.done
	})
}

// Watch subscribes to changes under the given key prefix. The callback is
// invoked on the subscription goroutine, first immediately and then once per
// change batch, until the subscription or the parent context is cancelled.
func (d *DB) Watch(ctx context.Context, prefix string, fn func()) *Subscription {
	subCtx, cancel := context.WithCancel(ctx)
	sub := &Subscription{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(sub.done)

		// Deliver the current value before any change events.
		fn()

		err := d.db.Subscribe(subCtx, func(kv *badger.KVList) error {
			fn()
			return nil
		}, []pb.Match{{Prefix: []byte(prefix)}})
		if err != nil && subCtx.Err() == nil {
			logging.Error("store subscription failed", logging.KeyError, err)
		}
	}()

	return sub
}
