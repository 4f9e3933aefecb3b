package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

var (
	ErrQueueFull   = errors.New("event queue is full")
	ErrQueueClosed = errors.New("event queue is closed")
)

// Queue runs a handler on its own goroutine so publishers never wait on it.
// Events published while the queue is full are dropped.
type Queue struct {
	handler Handler
	events  chan Event
	timeout time.Duration
	logger  *slog.Logger

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewQueue(h Handler, size int, timeout time.Duration, logger *slog.Logger) *Queue {
	if size <= 0 {
		size = 256
	}

	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	if logger == nil {
		logger = slog.Default()
	}

	q := &Queue{
		handler: h,
		events:  make(chan Event, size),
		timeout: timeout,
		logger:  logger,
		done:    make(chan struct{}),
	}

	go q.run()

	return q
}

// Handle enqueues the event and returns immediately. It is a Handler.
func (q *Queue) Handle(_ context.Context, event Event) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.events <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting events and waits for the queued ones to drain.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		<-q.done
		return
	}
	q.closed = true
	close(q.events)
	q.mu.Unlock()

	<-q.done
}

func (q *Queue) run() {
	defer close(q.done)

	for event := range q.events {
		q.deliver(event)
	}
}

func (q *Queue) deliver(event Event) {
	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			q.logger.Error("Queued event handler panicked", slog.String("topic", string(event.Topic())), slog.Any("panic", r))
		}
	}()

	if err := q.handler(ctx, event); err != nil {
		q.logger.Warn("Queued event handler failed", slog.String("topic", string(event.Topic())), slog.String("error", err.Error()))
	}
}
