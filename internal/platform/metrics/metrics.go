// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

// Package metrics declares the Prometheus collectors exported on /metrics.
//
// Collectors are registered on the default registry through promauto, so
// importing the package is enough to expose them.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// # HTTP

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movieapp_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route pattern",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// # Catalog

var (
	CatalogQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movieapp_catalog_query_duration_seconds",
			Help:    "Duration of catalog resolution and listing operations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	ListingRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movieapp_listing_requests_total",
			Help: "Catalog listing requests by normalized type filter and sort key",
		},
		[]string{"type", "sort"},
	)
)

// # Personalization

var (
	// OverlayLookups outcome is one of: found, absent, absorbed, rejected.
	OverlayLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movieapp_overlay_lookups_total",
			Help: "Personal overlay merges by target kind and outcome",
		},
		[]string{"target", "outcome"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "movieapp_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movieapp_circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)
)

// # Search

var (
	SearchRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movieapp_search_requests_total",
			Help: "Title searches by mode (best_match, structured)",
		},
		[]string{"mode"},
	)

	// HistoryWrites outcome is one of: stored, failed.
	HistoryWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movieapp_history_writes_total",
			Help: "Visit history writes by outcome",
		},
		[]string{"outcome"},
	)
)

// ObserveSince records the elapsed time for a catalog operation.
//
//	defer metrics.ObserveSince("resolve_detail", time.Now())
func ObserveSince(operation string, start time.Time) {
	CatalogQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
