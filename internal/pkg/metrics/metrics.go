// Package metrics exposes the Prometheus collectors served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TripTransitions counts successful trip writes.
	// Labels:
	//   - status: the status the trip moved to
	TripTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triptrack_trip_transitions_total",
			Help: "Total number of trip lifecycle transitions",
		},
		[]string{"status"},
	)

	// TripTransitionsRejected counts transitions refused by the status table
	TripTransitionsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triptrack_trip_transitions_rejected_total",
			Help: "Total number of trip transitions rejected from the current status",
		},
		[]string{"from", "to"},
	)

	// LocationUpdates counts stored location snapshots
	LocationUpdates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "triptrack_location_updates_total",
			Help: "Total number of location snapshots written",
		},
	)

	// LocationLookups counts location reads.
	// Labels:
	//   - result: "hit", "miss"
	LocationLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triptrack_location_lookups_total",
			Help: "Total number of location snapshot reads",
		},
		[]string{"result"},
	)

	// EventPublishFailures counts events that could not be handed to NATS
	EventPublishFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triptrack_event_publish_failures_total",
			Help: "Total number of trip and location events that failed to publish",
		},
		[]string{"event"},
	)

	// HTTPRequestsTotal counts handled HTTP requests
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triptrack_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration measures HTTP request latency
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "triptrack_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "route"},
	)
)

// Location lookup results
const (
	ResultHit  = "hit"
	ResultMiss = "miss"
)
