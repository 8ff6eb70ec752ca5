// SentinelLite - Security Event Dashboard Backend
// Copyright 2026 SentinelLite Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentinel-lite/sentinel-lite

package store

import (
	"encoding/hex"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/sentinel-lite/sentinel-lite/internal/models"
)

// EventTypes is the fixed vocabulary for generated log entries.
var EventTypes = []string{
	"Standard Web Request",
	"Failed Login Attempt",
	"User Privilege Escalation",
	"File Access",
	"Network Connection",
	"Process Started",
	"Configuration Change",
	"Authentication Success",
}

// logSources cycles across generated entries.
var logSources = []string{
	models.SourceSSH,
	models.SourceWeb,
	models.SourceAuth,
	models.SourceSystem,
}

// NewFixtureRand returns the PRNG used for fixture generation. A non-zero
// seed makes generation deterministic; zero seeds from the current time.
func NewFixtureRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1))
}

// GenerateLogs produces count synthetic log entries, newest first, stepping
// back 15 minutes per record from now.
//
// The distribution matches the dashboard's demo dataset: sources cycle
// SSH/Web/Auth/System, every 7th entry is Suspicious, every 5th is a failed
// login with an sshd raw line, and every 8th (that is not a failed login) is
// a privilege escalation.
func GenerateLogs(count int, now time.Time, rng *rand.Rand) []models.LogEntry {
	logs := make([]models.LogEntry, 0, count)
	for i := 0; i < count; i++ {
		isFailedLogin := i%5 == 0

		eventType := ""
		switch {
		case isFailedLogin:
			eventType = "Failed Login Attempt"
		case i%8 == 0:
			eventType = "User Privilege Escalation"
		default:
			eventType = EventTypes[rng.IntN(len(EventTypes))]
		}

		status := models.StatusNormal
		if i%7 == 0 {
			status = models.StatusSuspicious
		}

		raw := fmt.Sprintf(`185.12.3.%d - - [15/Mar/2024:09:12:03 +0000] "GET /api/v1/health HTTP/1.1" 200 512`, i)
		if isFailedLogin {
			raw = fmt.Sprintf("Mar 15 14:32:01 server sshd[123]: Failed password for invalid user admin from 192.168.1.%d port 54321 ssh2", i)
		}

		logs = append(logs, models.LogEntry{
			ID:        newLogID(),
			Timestamp: now.Add(-time.Duration(i) * 15 * time.Minute),
			Source:    logSources[i%len(logSources)],
			IPAddress: fmt.Sprintf("%d.%d.%d.%d", 100+(i%50), rng.IntN(256), rng.IntN(256), rng.IntN(256)),
			EventType: eventType,
			Status:    status,
			Raw:       raw,
		})
	}
	return logs
}

// newLogID returns an id of the form "log-" plus 8 hex characters.
func newLogID() string {
	u := uuid.New()
	return "log-" + hex.EncodeToString(u[:])[:8]
}

// SeedAlerts returns the five demo alerts, newest first, with timestamps
// anchored to now.
func SeedAlerts(now time.Time) []models.Alert {
	return []models.Alert{
		{
			ID:            "alt-1",
			Reason:        "Multiple failed SSH login attempts detected",
			Timestamp:     now,
			IPAddress:     "45.122.34.11",
			Severity:      models.SeverityCritical,
			RiskScore:     92,
			RuleTriggered: "AUTH_BRUTE_FORCE",
			RawLog:        "Mar 15 10:22:15 host sshd[1522]: pam_unix(sshd:auth): authentication failure; logname= uid=0 euid=0 tty=ssh ruser= rhost=45.122.34.11",
			Status:        models.AlertStatusOpen,
		},
		{
			ID:            "alt-2",
			Reason:        "Repeated web requests (404 burst) from single IP",
			Timestamp:     now.Add(-1 * time.Hour),
			IPAddress:     "185.12.3.99",
			Severity:      models.SeverityMedium,
			RiskScore:     65,
			RuleTriggered: "WEB_RECONNAISSANCE",
			RawLog:        `185.12.3.99 - - [15/Mar/2024:09:12:03 +0000] "GET /wp-admin/config.php HTTP/1.1" 404 124`,
			Status:        models.AlertStatusOpen,
		},
		{
			ID:            "alt-3",
			Reason:        "Unexpected admin access during off-hours",
			Timestamp:     now.Add(-2 * time.Hour),
			IPAddress:     "10.0.0.5",
			Severity:      models.SeverityLow,
			RiskScore:     35,
			RuleTriggered: "ANOMALY_TIME_ACCESS",
			RawLog:        "Mar 15 03:00:11 srv-01 auth: User root logged in from 10.0.0.5",
			Status:        models.AlertStatusOpen,
		},
		{
			ID:            "alt-4",
			Reason:        "SQL injection attempt detected in web request",
			Timestamp:     now.Add(-3 * time.Hour),
			IPAddress:     "203.45.67.89",
			Severity:      models.SeverityHigh,
			RiskScore:     85,
			RuleTriggered: "WEB_SQL_INJECTION",
			RawLog:        `203.45.67.89 - - [15/Mar/2024:11:45:22 +0000] "GET /search?q=1' OR '1'='1 HTTP/1.1" 403 0`,
			Status:        models.AlertStatusOpen,
		},
		{
			ID:            "alt-5",
			Reason:        "Port scan detected from external IP",
			Timestamp:     now.Add(-5 * time.Hour),
			IPAddress:     "178.62.100.45",
			Severity:      models.SeverityMedium,
			RiskScore:     58,
			RuleTriggered: "NET_PORT_SCAN",
			RawLog:        "Jan 21 08:15:33 firewall kernel: [UFW BLOCK] IN=eth0 OUT= MAC=... SRC=178.62.100.45 DST=10.0.0.1 PROTO=TCP DPT=22",
			Status:        models.AlertStatusOpen,
		},
	}
}

// trendBucket defines the count range for one slot of the 24h trend series.
type trendBucket struct {
	time string
	min  int
	max  int
}

var trendBuckets = []trendBucket{
	{"00:00", 300, 500},
	{"04:00", 200, 400},
	{"08:00", 800, 1000},
	{"12:00", 1100, 1300},
	{"16:00", 1400, 1600},
	{"20:00", 700, 900},
	{"23:59", 400, 600},
}

// GenerateTrend returns the synthetic 24h event-volume series with a fresh
// randomized count per bucket. Safe for concurrent use.
func GenerateTrend() []models.TrendPoint {
	points := make([]models.TrendPoint, len(trendBuckets))
	for i, b := range trendBuckets {
		points[i] = models.TrendPoint{
			Time:  b.time,
			Count: b.min + rand.IntN(b.max-b.min+1),
		}
	}
	return points
}
