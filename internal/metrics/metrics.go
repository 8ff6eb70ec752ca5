// SentinelLite - Security Event Dashboard Backend
// Copyright 2026 SentinelLite Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentinel-lite/sentinel-lite

// Package metrics provides Prometheus instrumentation for SentinelLite.
//
// Metrics are exposed at the /metrics endpoint in Prometheus text format:
//
//	curl http://localhost:5000/metrics
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Authentication metrics
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"outcome"}, // "success", "failure"
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_sessions",
			Help: "Current number of active sessions",
		},
	)

	// Store metrics
	LogStoreSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "log_store_entries",
			Help: "Current number of log entries in the store",
		},
	)

	AlertStoreSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "alert_store_entries",
			Help: "Current number of alerts in the store",
		},
	)

	AlertsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "alerts_created_total",
			Help: "Total number of alerts created via the API",
		},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordLoginAttempt records a login attempt by outcome.
func RecordLoginAttempt(success bool) {
	if success {
		LoginAttempts.WithLabelValues("success").Inc()
	} else {
		LoginAttempts.WithLabelValues("failure").Inc()
	}
}
