package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/events"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware(t *testing.T) {
	t.Run("Success - Labelled by route pattern", func(t *testing.T) {
		// Arrange
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/v1/products/{sportId}/{ref}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})

		handler := Middleware(mux)
		before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("418", http.MethodGet, "GET /api/v1/products/{sportId}/{ref}"))

		// Act
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/products/running/maca-andina", nil))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/products/gym/creatina", nil))

		// Assert
		after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("418", http.MethodGet, "GET /api/v1/products/{sportId}/{ref}"))
		assert.Equal(t, before+2, after)
		assert.Equal(t, float64(0), testutil.ToFloat64(httpRequestsInFlight))
	})

	t.Run("Success - Unmatched paths share a label", func(t *testing.T) {
		// Arrange
		handler := Middleware(http.NewServeMux())
		before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("404", http.MethodGet, "unmatched"))

		// Act
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/wp-login.php", nil))

		// Assert
		assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("404", http.MethodGet, "unmatched")))
	})
}

func TestSubscribe(t *testing.T) {
	t.Run("Success - Domain counters follow the bus", func(t *testing.T) {
		// Arrange
		bus := events.NewBus(nil)
		Subscribe(bus)

		ctx := context.Background()
		paidBefore := testutil.ToFloat64(paidAmountCents)
		openedBefore := testutil.ToFloat64(checkoutsOpenedTotal.WithLabelValues("redsys"))
		resendBefore := testutil.ToFloat64(receiptsSentTotal.WithLabelValues("true"))
		topicBefore := testutil.ToFloat64(domainEventsTotal.WithLabelValues(string(events.TopicOrderPaid)))

		// Act
		bus.Publish(ctx, events.CheckoutOpened{OrderID: "1", Amount: 4100, Gateway: "redsys"})
		bus.Publish(ctx, events.OrderPaid{OrderID: "1", Amount: 4100})
		bus.Publish(ctx, events.ReceiptSent{OrderID: "1", Resend: true})

		// Assert
		assert.Equal(t, paidBefore+4100, testutil.ToFloat64(paidAmountCents))
		assert.Equal(t, openedBefore+1, testutil.ToFloat64(checkoutsOpenedTotal.WithLabelValues("redsys")))
		assert.Equal(t, resendBefore+1, testutil.ToFloat64(receiptsSentTotal.WithLabelValues("true")))
		assert.Equal(t, topicBefore+1, testutil.ToFloat64(domainEventsTotal.WithLabelValues(string(events.TopicOrderPaid))))
	})
}
