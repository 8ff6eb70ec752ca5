// SentinelLite - Security Event Dashboard Backend
// Copyright 2026 SentinelLite Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentinel-lite/sentinel-lite

package models

import "time"

// Log source categories. Every LogEntry.Source is one of these.
const (
	SourceSSH    = "SSH"
	SourceWeb    = "Web"
	SourceAuth   = "Auth"
	SourceSystem = "System"
)

// Log statuses.
const (
	StatusNormal     = "Normal"
	StatusSuspicious = "Suspicious"
)

// Alert severities. Case is preserved on the wire but comparisons are
// case-insensitive.
const (
	SeverityLow      = "Low"
	SeverityMedium   = "Medium"
	SeverityHigh     = "High"
	SeverityCritical = "Critical"
)

// AlertStatusOpen is the status every newly created alert starts in.
const AlertStatusOpen = "Open"

// User roles.
const (
	RoleAdmin   = "admin"
	RoleAnalyst = "analyst"
)

// User is the public profile of an account. The credential digest lives in
// the auth package's credential store and is never serialized.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

// LogEntry is a single security event record in the log store.
type LogEntry struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Source     string    `json:"source"`
	IPAddress  string    `json:"ipAddress"`
	EventType  string    `json:"eventType"`
	Status     string    `json:"status"`
	IsReviewed bool      `json:"isReviewed"`
	Raw        string    `json:"raw"`
}

// LogPatch is a partial update for a LogEntry. Nil fields are left untouched;
// a shallow merge of the non-nil fields is applied to the stored record.
type LogPatch struct {
	Source     *string `json:"source"`
	IPAddress  *string `json:"ipAddress"`
	EventType  *string `json:"eventType"`
	Status     *string `json:"status"`
	IsReviewed *bool   `json:"isReviewed"`
	Raw        *string `json:"raw"`
}

// LogPage is the paginated response envelope for GET /api/logs.
//
// Total counts all records matching the active filters before pagination,
// and TotalPages is ceil(Total/Limit).
type LogPage struct {
	Data       []LogEntry `json:"data"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"totalPages"`
}

// Alert is a triggered detection rule awaiting triage.
type Alert struct {
	ID            string    `json:"id"`
	Reason        string    `json:"reason"`
	Timestamp     time.Time `json:"timestamp"`
	IPAddress     string    `json:"ipAddress"`
	Severity      string    `json:"severity"`
	RiskScore     int       `json:"riskScore"`
	RuleTriggered string    `json:"ruleTriggered"`
	RawLog        string    `json:"rawLog"`
	Status        string    `json:"status"`
}

// CreateAlertRequest carries the caller-supplied fields for POST /api/alerts.
// Missing fields receive documented defaults; status is always forced to
// "Open" regardless of input.
type CreateAlertRequest struct {
	Reason        string `json:"reason"`
	IPAddress     string `json:"ipAddress"`
	Severity      string `json:"severity"`
	RiskScore     *int   `json:"riskScore" validate:"omitempty,min=0,max=100"`
	RuleTriggered string `json:"ruleTriggered"`
	RawLog        string `json:"rawLog"`
	Status        string `json:"status"`
}

// UpdateAlertRequest carries the new status for PATCH /api/alerts/{id}.
// A nil Status leaves the alert unchanged but still returns it.
type UpdateAlertRequest struct {
	Status *string `json:"status"`
}

// TrendPoint is one bucket of the synthetic 24h event-volume series.
type TrendPoint struct {
	Time  string `json:"time"`
	Count int    `json:"count"`
}

// Stats is the dashboard summary returned by GET /api/stats.
type Stats struct {
	TotalLogs        int          `json:"totalLogs"`
	SuspiciousEvents int          `json:"suspiciousEvents"`
	FailedLogins     int          `json:"failedLogins"`
	UniqueIPs        int          `json:"uniqueIps"`
	TrendData        []TrendPoint `json:"trendData"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// HealthStatus is the static service payload of GET /api/health.
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}
