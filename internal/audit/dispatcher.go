package audit

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Sink persists audit entries. *Logger is the production implementation.
type Sink interface {
	Log(ctx context.Context, e Entry) error
}

// Dispatcher writes audit entries off the request path. A full queue drops
// the entry: auditing never fails a request.
type Dispatcher struct {
	sink   Sink
	log    *zap.Logger
	queue  chan Entry
	done   chan struct{}
	closed bool
	mu     sync.RWMutex
}

func NewDispatcher(sink Sink, log *zap.Logger, size int) *Dispatcher {
	if size <= 0 {
		size = 100
	}

	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Entry, size),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.sink.Log(ctx, ev); err != nil {
			d.log.Error("audit write failed",
				zap.String("action", ev.Action),
				zap.Uint("user_id", ev.UserID),
				zap.Error(err),
			)
		}
		cancel()
	}
}

func (d *Dispatcher) Dispatch(ev Entry) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn("audit dispatcher closed, dropping event", zap.String("action", ev.Action))
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close stops accepting entries and waits for the queue to drain or ctx to
// expire.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
