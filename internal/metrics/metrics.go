// Package metrics holds the Prometheus collectors of the service. They register
// on the default registry, which /metrics exposes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Load results.
const (
	LoadAccepted      = "accepted"
	LoadOverCapacity  = "over_capacity"
	LoadBatteryTooLow = "battery_too_low"
	LoadRejected      = "rejected"
	LoadFailed        = "failed"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "drones_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "drones_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	LoadAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "drones_load_attempts_total",
		Help: "Medication load and update attempts by result",
	}, []string{"result"})

	AuditRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "drones_battery_audit_runs_total",
		Help: "Total number of battery audit runs",
	})

	AuditRecordsRaised = promauto.NewCounter(prometheus.CounterOpts{
		Name: "drones_battery_audit_records_total",
		Help: "Low battery audit records written",
	})

	AuditFlagsCleared = promauto.NewCounter(prometheus.CounterOpts{
		Name: "drones_battery_audit_cleared_total",
		Help: "Low battery alerts reset after the drone was recharged",
	})

	AuditDroneFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "drones_battery_audit_failures_total",
		Help: "Drones the battery audit could not process",
	})

	AuditRunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "drones_battery_audit_duration_seconds",
		Help:    "Battery audit run duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
	})
)
