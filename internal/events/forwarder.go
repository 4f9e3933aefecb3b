package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aaravmahajanofficial/supplements-storefront/pkg/kafka"
)

// Forwarder returns a handler that mirrors events to a Kafka topic, keyed by
// the event topic so consumers can route without decoding the payload.
// It produces on the calling goroutine; subscribe it through a Queue.
func Forwarder(producer kafka.Producer) Handler {
	return func(ctx context.Context, event Event) error {
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to marshal %s event: %w", event.Topic(), err)
		}

		return producer.Produce(ctx, kafka.Message{
			Key:   string(event.Topic()),
			Value: payload,
			Headers: map[string]string{
				"topic": string(event.Topic()),
			},
		})
	}
}
