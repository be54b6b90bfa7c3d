package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for fleetboard
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Database Metrics
	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec

	// Business Metrics
	GuardRejectionsTotal *prometheus.CounterVec
	RoutesCreatedTotal   prometheus.Counter
	ReportsGenerated     prometheus.Counter
	ReportRoutesMatched  prometheus.Histogram
	RateLimitedTotal     prometheus.Counter
}

// NewMetricsRegistry registers every metric on reg. Pass
// prometheus.DefaultRegisterer in the server and a fresh registry in tests.
func NewMetricsRegistry(reg prometheus.Registerer) *MetricsRegistry {
	factory := promauto.With(reg)

	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fleetboard_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fleetboard_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fleetboard_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Database Metrics
		DBQueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fleetboard_db_queries_total",
				Help: "Total database queries by operation type and outcome",
			},
			[]string{"query_type", "outcome"},
		),
		DBQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fleetboard_db_query_duration_seconds",
				Help:    "Database query execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"query_type"},
		),

		// Business Metrics
		GuardRejectionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fleetboard_guard_rejections_total",
				Help: "Operations rejected by lifecycle rules, by entity and failure kind",
			},
			[]string{"entity", "kind"},
		),
		RoutesCreatedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "fleetboard_routes_created_total",
				Help: "Total routes created",
			},
		),
		ReportsGenerated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "fleetboard_route_reports_generated_total",
				Help: "Total route reports generated",
			},
		),
		ReportRoutesMatched: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fleetboard_route_report_matched_routes",
				Help:    "Number of routes matched per report",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		RateLimitedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "fleetboard_rate_limited_requests_total",
				Help: "Requests rejected by the rate limiter",
			},
		),
	}
}
