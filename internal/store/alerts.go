// SentinelLite - Security Event Dashboard Backend
// Copyright 2026 SentinelLite Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentinel-lite/sentinel-lite

package store

import (
	"encoding/hex"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sentinel-lite/sentinel-lite/internal/metrics"
	"github.com/sentinel-lite/sentinel-lite/internal/models"
)

// Alert creation defaults applied when the caller omits a field.
const (
	DefaultAlertReason    = "Unspecified threat"
	DefaultAlertIPAddress = "0.0.0.0"
	DefaultAlertSeverity  = models.SeverityMedium
	DefaultAlertRiskScore = 50
	DefaultAlertRule      = "MANUAL_ENTRY"
)

// AlertStore holds security alerts in memory, most recent first.
type AlertStore struct {
	mu     sync.RWMutex
	alerts []models.Alert
	index  map[string]int
}

// NewAlertStore creates a store seeded with the given alerts.
func NewAlertStore(alerts []models.Alert) *AlertStore {
	s := &AlertStore{
		alerts: make([]models.Alert, len(alerts)),
		index:  make(map[string]int, len(alerts)),
	}
	copy(s.alerts, alerts)
	for i, a := range s.alerts {
		s.index[a.ID] = i
	}
	metrics.AlertStoreSize.Set(float64(len(s.alerts)))
	return s
}

// Len returns the number of stored alerts.
func (s *AlertStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.alerts)
}

// Query returns alerts matching the optional severity and status filters.
// Matching is case-insensitive; empty or "all" disables a filter. Order is
// preserved and no pagination is applied.
func (s *AlertStore) Query(severity, status string) []models.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filterSeverity := severity != "" && !strings.EqualFold(severity, "all")
	filterStatus := status != "" && !strings.EqualFold(status, "all")

	out := make([]models.Alert, 0, len(s.alerts))
	for _, a := range s.alerts {
		if filterSeverity && !strings.EqualFold(a.Severity, severity) {
			continue
		}
		if filterStatus && !strings.EqualFold(a.Status, status) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// UpdateStatus sets the alert's status when newStatus is non-nil and returns
// the (possibly unchanged) alert. The store is left unmodified when the id is
// unknown.
func (s *AlertStore) UpdateStatus(id string, newStatus *string) (models.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return models.Alert{}, ErrAlertNotFound
	}

	if newStatus != nil {
		s.alerts[i].Status = *newStatus
	}
	return s.alerts[i], nil
}

// Create builds an alert from the request, applying defaults for missing
// fields, and prepends it so the newest alert is always first. The status is
// forced to "Open" regardless of input.
func (s *AlertStore) Create(req models.CreateAlertRequest, now time.Time) models.Alert {
	alert := models.Alert{
		ID:            newAlertID(),
		Reason:        req.Reason,
		Timestamp:     now,
		IPAddress:     req.IPAddress,
		Severity:      req.Severity,
		RiskScore:     DefaultAlertRiskScore,
		RuleTriggered: req.RuleTriggered,
		RawLog:        req.RawLog,
		Status:        models.AlertStatusOpen,
	}
	if alert.Reason == "" {
		alert.Reason = DefaultAlertReason
	}
	if alert.IPAddress == "" {
		alert.IPAddress = DefaultAlertIPAddress
	}
	if alert.Severity == "" {
		alert.Severity = DefaultAlertSeverity
	}
	if req.RiskScore != nil {
		alert.RiskScore = *req.RiskScore
	}
	if alert.RuleTriggered == "" {
		alert.RuleTriggered = DefaultAlertRule
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.alerts = append([]models.Alert{alert}, s.alerts...)
	for id, i := range s.index {
		s.index[id] = i + 1
	}
	s.index[alert.ID] = 0

	metrics.AlertStoreSize.Set(float64(len(s.alerts)))
	metrics.AlertsCreated.Inc()

	return alert
}

// newAlertID returns an id of the form "alt-" plus 6 hex characters.
func newAlertID() string {
	u := uuid.New()
	return "alt-" + hex.EncodeToString(u[:])[:6]
}
