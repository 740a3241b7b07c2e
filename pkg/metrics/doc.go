/*
Package metrics defines and registers staffd's Prometheus metrics and
exposes them over HTTP for scraping.

# Metrics Catalog

staffd_requests_total{command, outcome}:
  - Type: Counter
  - Description: dispatched requests by command (ADD/DEL/MOD/GET/LOG/HELP/EXIT,
    or UNKNOWN for a line that did not parse) and outcome
    (ok/failed/parse_error/denied)

staffd_command_duration_seconds{command}:
  - Type: Histogram
  - Description: time to parse and execute a request, by command

staffd_active_connections:
  - Type: Gauge
  - Description: current number of connected remote clients (excludes the
    local standard-input channel)

staffd_records_total:
  - Type: Gauge
  - Description: current number of employee records stored

# Usage

	timer := metrics.NewTimer()
	result := engine.Execute(query, local)
	timer.ObserveDurationVec(metrics.CommandDuration, query.Command.String())
	metrics.RequestsTotal.WithLabelValues(query.Command.String(), outcome).Inc()

	http.Handle("/metrics", metrics.Handler())

# Integration Points

  - pkg/dispatcher: increments staffd_requests_total and
    staffd_command_duration_seconds per request, sets
    staffd_active_connections on register/unregister, and sets
    staffd_records_total from Database.Count() (via Engine.RecordCount)
    after each successful ADD/DEL/MOD
  - cmd/staffd: mounts Handler() on an optional --metrics-addr listener

# Design Patterns

Package Init Registration:
  - All metrics registered in init(); MustRegister panics on duplicate
    registration, so misconfiguration fails at process start, not at scrape
    time.

Timer Pattern:
  - Create a Timer at operation start, call ObserveDuration(Vec) once the
    operation completes.
*/
package metrics
