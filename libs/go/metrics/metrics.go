// Package metrics wraps Prometheus collectors for the conversion engine:
// API traffic, conversion outcomes and outbound provider calls.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	httpclient "github.com/starkport/starkport-api/libs/go/client/http"
)

// Metrics holds every collector the engine records into.
type Metrics struct {
	// API traffic
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Conversion lifecycle
	PlansCreatedTotal  *prometheus.CounterVec
	ConversionsTotal   *prometheus.CounterVec
	ConversionDuration *prometheus.HistogramVec

	// Rate lookups
	RateLookupsTotal *prometheus.CounterVec

	// Outbound provider calls
	ProviderRequestsTotal   *prometheus.CounterVec
	ProviderRequestDuration *prometheus.HistogramVec
	ProviderErrorsTotal     *prometheus.CounterVec
}

// New registers the engine collectors on the default Prometheus registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the engine collectors on the given registerer.
// Tests pass a fresh registry to avoid duplicate registration panics.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of API requests served",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "API request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		PlansCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "conversion_plans_created_total",
				Help: "Total number of conversion plans created",
			},
			[]string{"route_kind"},
		),
		ConversionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "conversions_total",
				Help: "Total number of executed conversions by outcome",
			},
			[]string{"route_kind", "status"},
		),
		ConversionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "conversion_duration_seconds",
				Help:    "End to end conversion execution time in seconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
			[]string{"route_kind"},
		),

		RateLookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_lookups_total",
				Help: "Total number of best-rate lookups by outcome",
			},
			[]string{"outcome"},
		),

		ProviderRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "provider_requests_total",
				Help: "Total number of outbound provider API requests",
			},
			[]string{"method", "path", "status"},
		),
		ProviderRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "provider_request_duration_seconds",
				Help:    "Outbound provider API request latency in seconds",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"method", "path"},
		),
		ProviderErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "provider_request_errors_total",
				Help: "Total number of failed outbound provider API requests",
			},
			[]string{"method", "path"},
		),
	}
}

// RecordHTTPRequest records one served API request.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordPlanCreated records a successfully created conversion plan.
func (m *Metrics) RecordPlanCreated(routeKind string) {
	m.PlansCreatedTotal.WithLabelValues(routeKind).Inc()
}

// RecordConversion records one executed conversion and its duration.
func (m *Metrics) RecordConversion(routeKind, status string, duration time.Duration) {
	m.ConversionsTotal.WithLabelValues(routeKind, status).Inc()
	m.ConversionDuration.WithLabelValues(routeKind).Observe(duration.Seconds())
}

// RecordRateLookup records a best-rate lookup outcome (hit, miss, error).
func (m *Metrics) RecordRateLookup(outcome string) {
	m.RateLookupsTotal.WithLabelValues(outcome).Inc()
}

// The following methods satisfy the HTTP client's MetricsCollector so the
// same Metrics instance can be plugged into provider clients.

var _ httpclient.MetricsCollector = (*Metrics)(nil)

func (m *Metrics) RecordRequestDuration(method, path string, statusCode int, duration time.Duration) {
	m.ProviderRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) RecordRequestCount(method, path string, statusCode int) {
	m.ProviderRequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
}

func (m *Metrics) RecordRequestError(method, path string) {
	m.ProviderErrorsTotal.WithLabelValues(method, path).Inc()
}
