package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsTotal counts every dispatched request by command and outcome
	// (ok/failed/parse_error/denied).
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "staffd_requests_total",
			Help: "Total number of dispatched requests by command and outcome",
		},
		[]string{"command", "outcome"},
	)

	// CommandDuration times the parser+query-engine path for one request.
	CommandDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "staffd_command_duration_seconds",
			Help:    "Time taken to parse and execute a request, by command",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"command"},
	)

	// ActiveConnections is the current size of the dispatcher's connection
	// table (remote peers only; the local channel is not counted).
	ActiveConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "staffd_active_connections",
			Help: "Current number of connected remote clients",
		},
	)

	// RecordsTotal is the current number of employee records stored.
	RecordsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "staffd_records_total",
			Help: "Current number of employee records in the database",
		},
	)
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(CommandDuration)
	prometheus.MustRegister(ActiveConnections)
	prometheus.MustRegister(RecordsTotal)
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Timer is a helper for timing operations.
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration records the duration to a histogram.
func (t *Timer) ObserveDuration(histogram prometheus.Histogram) {
	duration := time.Since(t.start).Seconds()
	histogram.Observe(duration)
}

// ObserveDurationVec records the duration to a histogram vec with labels.
func (t *Timer) ObserveDurationVec(histogram prometheus.ObserverVec, labels ...string) {
	duration := time.Since(t.start).Seconds()
	histogram.WithLabelValues(labels...).Observe(duration)
}

// Duration returns the elapsed time since the timer started.
func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}
