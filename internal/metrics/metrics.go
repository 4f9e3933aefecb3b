package metrics

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/events"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)
	httpRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current Number of HTTP requests being processed.",
		},
	)

	domainEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_events_total",
			Help: "Domain events published, by topic.",
		},
		[]string{"topic"},
	)

	checkoutsOpenedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_checkouts_opened_total",
			Help: "Checkouts handed off to a payment gateway.",
		},
		[]string{"gateway"},
	)

	paidAmountCents = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_paid_amount_cents_total",
			Help: "Sum of confirmed storefront payments in minor units.",
		},
	)

	receiptsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_receipts_sent_total",
			Help: "Receipt emails sent, split by manual resend.",
		},
		[]string{"resend"},
	)
)

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

// wrapper around http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// pathLabel keeps the label set bounded: the mux fills r.Pattern once it has
// routed the request, unmatched paths share one label.
func pathLabel(r *http.Request) string {
	if r.Pattern == "" {
		return "unmatched"
	}

	return r.Pattern
}

// Middleware must wrap the ServeMux directly so the routed pattern is visible.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		start := time.Now()
		httpRequestsInFlight.Inc()

		rw := newResponseWriter(w)

		defer func() {

			duration := time.Since(start)
			statusCodeStr := strconv.Itoa(rw.statusCode)
			path := pathLabel(r)

			httpRequestsTotal.WithLabelValues(statusCodeStr, r.Method, path).Inc()
			httpRequestsDuration.WithLabelValues(r.Method, path).Observe(duration.Seconds())
			httpRequestsInFlight.Dec()

		}()

		next.ServeHTTP(rw, r)

	})
}

// Subscribe feeds the domain counters from the event bus.
func Subscribe(bus *events.Bus) {
	bus.SubscribeAll(func(_ context.Context, e events.Event) error {
		domainEventsTotal.WithLabelValues(string(e.Topic())).Inc()
		return nil
	})

	bus.Subscribe(events.TopicCheckoutOpened, func(_ context.Context, e events.Event) error {
		if ev, ok := e.(events.CheckoutOpened); ok {
			checkoutsOpenedTotal.WithLabelValues(ev.Gateway).Inc()
		}
		return nil
	})

	bus.Subscribe(events.TopicOrderPaid, func(_ context.Context, e events.Event) error {
		if ev, ok := e.(events.OrderPaid); ok && ev.Amount > 0 {
			paidAmountCents.Add(float64(ev.Amount))
		}
		return nil
	})

	bus.Subscribe(events.TopicReceiptSent, func(_ context.Context, e events.Event) error {
		if ev, ok := e.(events.ReceiptSent); ok {
			receiptsSentTotal.WithLabelValues(strconv.FormatBool(ev.Resend)).Inc()
		}
		return nil
	})
}

// http.Handler for the Prometheus /metrics endpoint
func Handler() http.Handler {

	return promhttp.Handler()
}
