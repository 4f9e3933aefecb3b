package testutils

import (
	"context"
	"sync"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/events"
)

// EventRecorder is an events.Publisher that keeps what it receives.
type EventRecorder struct {
	mu     sync.Mutex
	Events []events.Event
}

func (r *EventRecorder) Publish(_ context.Context, event events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Events = append(r.Events, event)
}

func (r *EventRecorder) Topics() []events.Topic {
	r.mu.Lock()
	defer r.mu.Unlock()

	topics := make([]events.Topic, 0, len(r.Events))
	for _, e := range r.Events {
		topics = append(topics, e.Topic())
	}

	return topics
}
