package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "socialpayments"

type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Business Metrics
	TransactionsCreated *prometheus.CounterVec
	RequestTransitions  *prometheus.CounterVec
	RailCharges         *prometheus.CounterVec
	RailChargeDuration  *prometheus.HistogramVec
	EngineErrors        *prometheus.CounterVec
	RemindersSent       *prometheus.CounterVec
	SocialActions       *prometheus.CounterVec

	// Settings store
	SettingsQueryDuration *prometheus.HistogramVec
	SettingsConnsInUse    prometheus.Gauge

	// System Metrics
	ServiceUptime    prometheus.Gauge
	Goroutines       prometheus.Gauge
	MemoryUsageBytes *prometheus.GaugeVec

	ValidationErrors *prometheus.CounterVec
}

// NewMetrics registers every collector on reg. Tests pass a fresh prometheus.NewRegistry().
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Number of HTTP requests currently being served",
			},
		),

		TransactionsCreated: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transactions_created_total",
				Help:      "Total number of transactions created",
			},
			[]string{"type", "status"},
		),
		RequestTransitions: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "request_transitions_total",
				Help:      "Payment request state transitions applied by the engine",
			},
			[]string{"to"},
		),
		RailCharges: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rail_charges_total",
				Help:      "Charges sent to payment rails",
			},
			[]string{"channel", "status"},
		),
		RailChargeDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "rail_charge_duration_seconds",
				Help:      "Duration of payment rail charges in seconds",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"channel"},
		),
		EngineErrors: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "engine_errors_total",
				Help:      "Errors returned by the payment request engine",
			},
			[]string{"operation", "code"},
		),
		RemindersSent: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reminders_total",
				Help:      "Payment reminders handed to the reminder channel",
			},
			[]string{"status"},
		),
		SocialActions: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "social_actions_total",
				Help:      "Likes, unlikes and comments on transactions",
			},
			[]string{"action"},
		),

		SettingsQueryDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "settings_query_duration_seconds",
				Help:      "Duration of settings store queries in seconds",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
			},
			[]string{"operation", "status"},
		),
		SettingsConnsInUse: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "settings_db_connections_in_use",
				Help:      "Settings database connections currently in use",
			},
		),

		ServiceUptime: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "service_uptime_seconds",
				Help:      "Service uptime in seconds",
			},
		),
		Goroutines: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "goroutines",
				Help:      "Number of goroutines currently running",
			},
		),
		MemoryUsageBytes: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "memory_usage_bytes",
				Help:      "Memory usage in bytes",
			},
			[]string{"type"},
		),

		ValidationErrors: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_errors_total",
				Help:      "Total number of request validation errors",
			},
			[]string{"field", "tag"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
}

func (m *Metrics) RecordTransactionCreated(txType, status string) {
	m.TransactionsCreated.WithLabelValues(txType, status).Inc()
}

func (m *Metrics) RecordTransition(to string) {
	m.RequestTransitions.WithLabelValues(to).Inc()
}

func (m *Metrics) RecordRailCharge(channel, status string, duration time.Duration) {
	m.RailCharges.WithLabelValues(channel, status).Inc()
	m.RailChargeDuration.WithLabelValues(channel).Observe(duration.Seconds())
}

func (m *Metrics) RecordEngineError(operation, code string) {
	m.EngineErrors.WithLabelValues(operation, code).Inc()
}

func (m *Metrics) RecordReminder(status string) {
	m.RemindersSent.WithLabelValues(status).Inc()
}

func (m *Metrics) RecordSocialAction(action string) {
	m.SocialActions.WithLabelValues(action).Inc()
}

func (m *Metrics) RecordSettingsQuery(operation, status string, duration time.Duration) {
	m.SettingsQueryDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

func (m *Metrics) RecordValidationError(field, tag string) {
	m.ValidationErrors.WithLabelValues(field, tag).Inc()
}

func (m *Metrics) UpdateSystemMetrics(uptime time.Duration, memStats *runtime.MemStats) {
	m.ServiceUptime.Set(uptime.Seconds())
	m.Goroutines.Set(float64(runtime.NumGoroutine()))

	m.MemoryUsageBytes.WithLabelValues("alloc").Set(float64(memStats.Alloc))
	m.MemoryUsageBytes.WithLabelValues("sys").Set(float64(memStats.Sys))
	m.MemoryUsageBytes.WithLabelValues("heap_inuse").Set(float64(memStats.HeapInuse))
}
