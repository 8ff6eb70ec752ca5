// SentinelLite - Security Event Dashboard Backend
// Copyright 2026 SentinelLite Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentinel-lite/sentinel-lite

package api

import (
	"net/http"
	"time"

	"github.com/sentinel-lite/sentinel-lite/internal/models"
	"github.com/sentinel-lite/sentinel-lite/internal/store"
)

// Stats returns the dashboard summary: aggregate log counts plus a fresh
// synthetic 24h trend series.
//
// GET /api/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	total, suspicious, failedLogins, uniqueIPs := h.logs.Counts()

	respondJSON(w, http.StatusOK, models.Stats{
		TotalLogs:        total,
		SuspiciousEvents: suspicious,
		FailedLogins:     failedLogins,
		UniqueIPs:        uniqueIPs,
		TrendData:        store.GenerateTrend(),
	})
}

// Health reports static service status for uptime checks.
//
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   Version,
		Services: map[string]string{
			"database":       "operational",
			"log_forwarder":  "running",
			"ids_ruleset":    "v2.4.1",
			"network_sentry": "listening",
		},
	})
}
