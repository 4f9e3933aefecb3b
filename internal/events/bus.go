package events

import (
	"context"
	"log/slog"
	"sync"
)

type Handler func(ctx context.Context, event Event) error

type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// Bus delivers events synchronously to the handlers registered for their topic.
// A failing handler is logged and never affects the publisher.
type Bus struct {
	mu     sync.RWMutex
	topics map[Topic][]Handler
	all    []Handler
	logger *slog.Logger
}

func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}

	return &Bus{
		topics: make(map[Topic][]Handler),
		logger: logger,
	}
}

func (b *Bus) Subscribe(topic Topic, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.topics[topic] = append(b.topics[topic], h)
}

// SubscribeAll registers h for every topic.
func (b *Bus) SubscribeAll(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.all = append(b.all, h)
}

func (b *Bus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.topics[event.Topic()])+len(b.all))
	handlers = append(handlers, b.topics[event.Topic()]...)
	handlers = append(handlers, b.all...)
	b.mu.RUnlock()

	for _, h := range handlers {
		b.dispatch(ctx, h, event)
	}
}

func (b *Bus) dispatch(ctx context.Context, h Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Event handler panicked", slog.String("topic", string(event.Topic())), slog.Any("panic", r))
		}
	}()

	if err := h(ctx, event); err != nil {
		b.logger.Warn("Event handler failed", slog.String("topic", string(event.Topic())), slog.String("error", err.Error()))
	}
}

// Nop discards every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) {}
