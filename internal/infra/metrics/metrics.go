// Package metrics exposes Prometheus collectors for the ledger and the HTTP surface.
package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mall-space-booking/internal/domain/reservation"
)

const Namespace = "mall"

// NewRegistry returns a registry preloaded with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// LedgerMetrics counts booking and pricing outcomes.
type LedgerMetrics struct {
	Reservations *prometheus.CounterVec
	Transitions  *prometheus.CounterVec
	Quotes       *prometheus.CounterVec
}

func NewLedgerMetrics(reg prometheus.Registerer) *LedgerMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &LedgerMetrics{
		Reservations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "reservation_attempts_total",
			Help:      "Reservation attempts by outcome.",
		}, []string{"outcome"}),
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "reservation_transitions_total",
			Help:      "Reservation status transitions.",
		}, []string{"from", "to"}),
		Quotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "price_quotes_total",
			Help:      "Price quotes by outcome.",
		}, []string{"outcome"}),
	}
	mustRegisterCounter(reg, &m.Reservations)
	mustRegisterCounter(reg, &m.Transitions)
	mustRegisterCounter(reg, &m.Quotes)
	return m
}

func (m *LedgerMetrics) ReservationAttempt(outcome string) {
	m.Reservations.WithLabelValues(outcome).Inc()
}

func (m *LedgerMetrics) StatusChanged(from, to reservation.Status) {
	m.Transitions.WithLabelValues(from.String(), to.String()).Inc()
}

func (m *LedgerMetrics) Quote(outcome string) {
	m.Quotes.WithLabelValues(outcome).Inc()
}

// HTTPMetrics groups request collectors for the gin middleware.
type HTTPMetrics struct {
	ReqTotal *prometheus.CounterVec
	ReqDur   *prometheus.HistogramVec
}

func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &HTTPMetrics{
		ReqTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests handled by the server.",
		}, []string{"method", "route", "status"}),
		ReqDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "http_request_duration_ms",
			Help:      "HTTP request latency distribution in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		}, []string{"method", "route"}),
	}
	mustRegisterCounter(reg, &m.ReqTotal)
	if err := reg.Register(m.ReqDur); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			panic(fmt.Errorf("register histogram: %w", err))
		}
		if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
			m.ReqDur = existing
		}
	}
	return m
}

func (m *HTTPMetrics) Observe(method, route string, status int, elapsed time.Duration) {
	m.ReqTotal.WithLabelValues(method, route, fmt.Sprint(status)).Inc()
	m.ReqDur.WithLabelValues(method, route).Observe(float64(elapsed) / float64(time.Millisecond))
}

func mustRegisterCounter(reg prometheus.Registerer, counter **prometheus.CounterVec) {
	if err := reg.Register(*counter); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			panic(fmt.Errorf("register counter: %w", err))
		}
		if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
			*counter = existing
		}
	}
}
