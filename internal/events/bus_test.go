package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/events"
	"github.com/aaravmahajanofficial/supplements-storefront/pkg/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusDelivers(t *testing.T) {
	t.Run("Success - Topic And Wildcard Handlers", func(t *testing.T) {
		// Arrange
		bus := events.NewBus(nil)

		var topicSeen, allSeen []events.Topic

		bus.Subscribe(events.TopicOrderPaid, func(_ context.Context, e events.Event) error {
			topicSeen = append(topicSeen, e.Topic())
			return nil
		})
		bus.SubscribeAll(func(_ context.Context, e events.Event) error {
			allSeen = append(allSeen, e.Topic())
			return nil
		})

		// Act
		bus.Publish(t.Context(), events.OrderPaid{OrderID: "1"})
		bus.Publish(t.Context(), events.CartItemAdded{SessionID: "s", LineID: "7", Quantity: 1})

		// Assert
		assert.Equal(t, []events.Topic{events.TopicOrderPaid}, topicSeen)
		assert.Equal(t, []events.Topic{events.TopicOrderPaid, events.TopicCartItemAdded}, allSeen)
	})

	t.Run("Success - Failing Handlers Do Not Stop Delivery", func(t *testing.T) {
		bus := events.NewBus(nil)
		delivered := false

		bus.Subscribe(events.TopicReceiptSent, func(context.Context, events.Event) error {
			return errors.New("boom")
		})
		bus.Subscribe(events.TopicReceiptSent, func(context.Context, events.Event) error {
			panic("handler bug")
		})
		bus.Subscribe(events.TopicReceiptSent, func(context.Context, events.Event) error {
			delivered = true
			return nil
		})

		assert.NotPanics(t, func() {
			bus.Publish(t.Context(), events.ReceiptSent{OrderID: "1"})
		})
		assert.True(t, delivered)
	})
}

type captureProducer struct {
	msgs []kafka.Message
	err  error
}

func (c *captureProducer) Produce(_ context.Context, msgs ...kafka.Message) error {
	c.msgs = append(c.msgs, msgs...)
	return c.err
}

func (c *captureProducer) Close() error { return nil }

func TestForwarder(t *testing.T) {
	t.Run("Success - Event Encoded As JSON", func(t *testing.T) {
		producer := &captureProducer{}
		forward := events.Forwarder(producer)

		err := forward(t.Context(), events.CommercialOrderSaved{OrderID: 9, Agent: "ana", Total: "121.00"})

		require.NoError(t, err)
		require.Len(t, producer.msgs, 1)
		assert.Equal(t, "commercial_order.saved", producer.msgs[0].Key)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(producer.msgs[0].Value, &decoded))
		assert.Equal(t, "ana", decoded["agent"])
	})

	t.Run("Failure - Producer Error Propagates", func(t *testing.T) {
		producer := &captureProducer{err: errors.New("broker down")}

		err := events.Forwarder(producer)(t.Context(), events.OrderPaid{OrderID: "1"})

		assert.Error(t, err)
	})
}
