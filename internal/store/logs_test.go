// SentinelLite - Security Event Dashboard Backend
// Copyright 2026 SentinelLite Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentinel-lite/sentinel-lite

package store

import (
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sentinel-lite/sentinel-lite/internal/models"
)

func newTestLogStore(t *testing.T, count int) *LogStore {
	t.Helper()
	logs := GenerateLogs(count, time.Now(), NewFixtureRand(42))
	return NewLogStore(logs)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestGenerateLogsDistribution(t *testing.T) {
	t.Parallel()

	logs := GenerateLogs(500, time.Now(), NewFixtureRand(1))
	if len(logs) != 500 {
		t.Fatalf("expected 500 logs, got %d", len(logs))
	}

	var ssh, suspicious, failedLogins int
	for i, l := range logs {
		if l.Source == models.SourceSSH {
			ssh++
		}
		if l.Status == models.StatusSuspicious {
			suspicious++
		}
		if l.EventType == "Failed Login Attempt" {
			failedLogins++
		}
		if i%5 == 0 && l.EventType != "Failed Login Attempt" {
			t.Errorf("entry %d: expected failed login event type, got %q", i, l.EventType)
		}
		if !strings.HasPrefix(l.ID, "log-") || len(l.ID) != len("log-")+8 {
			t.Errorf("entry %d: malformed id %q", i, l.ID)
		}
		if l.IsReviewed {
			t.Errorf("entry %d: generated logs start unreviewed", i)
		}
	}

	// Sources cycle every 4 entries, suspicion every 7.
	if ssh != 125 {
		t.Errorf("expected 125 SSH entries, got %d", ssh)
	}
	if suspicious != 72 {
		t.Errorf("expected 72 suspicious entries, got %d", suspicious)
	}
	if failedLogins < 100 {
		t.Errorf("expected at least 100 failed login entries (every 5th), got %d", failedLogins)
	}

	// Timestamps step back 15 minutes per entry.
	gap := logs[0].Timestamp.Sub(logs[1].Timestamp)
	if gap != 15*time.Minute {
		t.Errorf("expected 15m between entries, got %s", gap)
	}
}

func TestGenerateLogsDeterministicWithSeed(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	a := GenerateLogs(50, now, NewFixtureRand(7))
	b := GenerateLogs(50, now, NewFixtureRand(7))

	for i := range a {
		if a[i].IPAddress != b[i].IPAddress || a[i].EventType != b[i].EventType {
			t.Fatalf("entry %d differs across seeded runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestLogQueryFilters(t *testing.T) {
	t.Parallel()

	s := newTestLogStore(t, 500)

	tests := []struct {
		name      string
		query     LogQuery
		wantTotal int
	}{
		{"no filters", LogQuery{Page: 1, Limit: 20}, 500},
		{"source ALL sentinel", LogQuery{Source: "ALL", Page: 1, Limit: 20}, 500},
		{"source SSH", LogQuery{Source: models.SourceSSH, Page: 1, Limit: 20}, 125},
		{"status suspicious", LogQuery{Status: models.StatusSuspicious, Page: 1, Limit: 20}, 72},
		// SSH entries are i%4==0, suspicious are i%7==0; both every 28th.
		{"source and status", LogQuery{Source: models.SourceSSH, Status: models.StatusSuspicious, Page: 1, Limit: 20}, 18},
		{"source unknown", LogQuery{Source: "Firewall", Page: 1, Limit: 20}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page := s.Query(tt.query)
			if page.Total != tt.wantTotal {
				t.Errorf("expected total %d, got %d", tt.wantTotal, page.Total)
			}
			for _, e := range page.Data {
				if tt.query.Source != "" && tt.query.Source != FilterAll && e.Source != tt.query.Source {
					t.Errorf("entry %s leaked through source filter: %q", e.ID, e.Source)
				}
				if tt.query.Status != "" && tt.query.Status != FilterAll && e.Status != tt.query.Status {
					t.Errorf("entry %s leaked through status filter: %q", e.ID, e.Status)
				}
			}
		})
	}
}

func TestLogQuerySearch(t *testing.T) {
	t.Parallel()

	s := NewLogStore([]models.LogEntry{
		{ID: "log-1", IPAddress: "192.168.1.10", EventType: "File Access", Raw: "opened /etc/passwd"},
		{ID: "log-2", IPAddress: "10.0.0.5", EventType: "Failed Login Attempt", Raw: "sshd failure"},
		{ID: "log-3", IPAddress: "10.0.0.6", EventType: "Network Connection", Raw: "outbound to 192.168.1.10"},
	})

	tests := []struct {
		name    string
		search  string
		wantIDs []string
	}{
		{"matches ip", "192.168.1.10", []string{"log-1", "log-3"}},
		{"matches event type case-insensitive", "FAILED LOGIN", []string{"log-2"}},
		{"matches raw", "passwd", []string{"log-1"}},
		{"no match", "nonexistent", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page := s.Query(LogQuery{Search: tt.search, Page: 1, Limit: 20})
			if page.Total != len(tt.wantIDs) {
				t.Fatalf("expected %d matches, got %d", len(tt.wantIDs), page.Total)
			}
			for i, id := range tt.wantIDs {
				if page.Data[i].ID != id {
					t.Errorf("match %d: expected %s, got %s", i, id, page.Data[i].ID)
				}
			}
		})
	}
}

func TestLogQueryPagination(t *testing.T) {
	t.Parallel()

	s := newTestLogStore(t, 45)

	tests := []struct {
		name           string
		page, limit    int
		wantLen        int
		wantTotalPages int
	}{
		{"first page", 1, 20, 20, 3},
		{"middle page", 2, 20, 20, 3},
		{"last partial page", 3, 20, 5, 3},
		{"out of range", 4, 20, 0, 3},
		{"far out of range", 100, 20, 0, 3},
		{"exact division", 1, 45, 45, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page := s.Query(LogQuery{Page: tt.page, Limit: tt.limit})
			if len(page.Data) != tt.wantLen {
				t.Errorf("expected %d entries, got %d", tt.wantLen, len(page.Data))
			}
			if page.Total != 45 {
				t.Errorf("expected total 45, got %d", page.Total)
			}
			if page.TotalPages != tt.wantTotalPages {
				t.Errorf("expected %d total pages, got %d", tt.wantTotalPages, page.TotalPages)
			}
			if page.Page != tt.page || page.Limit != tt.limit {
				t.Errorf("expected page/limit echoed back, got %d/%d", page.Page, page.Limit)
			}
		})
	}
}

func TestLogQueryDegenerateInputs(t *testing.T) {
	t.Parallel()

	s := newTestLogStore(t, 45)

	tests := []struct {
		name        string
		page, limit int
		wantLen     int
		wantPage    int
		wantLimit   int
	}{
		{"huge page", math.MaxInt, 20, 0, math.MaxInt, 20},
		{"huge page and limit", math.MaxInt, math.MaxInt, 0, math.MaxInt, math.MaxInt},
		{"huge limit", 1, math.MaxInt, 45, 1, math.MaxInt},
		{"zero limit falls back to default", 1, 0, 20, 1, DefaultQueryLimit},
		{"negative limit falls back to default", 1, -3, 20, 1, DefaultQueryLimit},
		{"zero page treated as first", 0, 20, 20, 1, 20},
		{"negative page treated as first", -7, 20, 20, 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page := s.Query(LogQuery{Page: tt.page, Limit: tt.limit})
			if len(page.Data) != tt.wantLen {
				t.Errorf("expected %d entries, got %d", tt.wantLen, len(page.Data))
			}
			if page.Total != 45 {
				t.Errorf("expected total 45, got %d", page.Total)
			}
			if page.Page != tt.wantPage || page.Limit != tt.wantLimit {
				t.Errorf("expected page/limit %d/%d, got %d/%d",
					tt.wantPage, tt.wantLimit, page.Page, page.Limit)
			}
		})
	}
}

func TestLogPagesDoNotOverlap(t *testing.T) {
	t.Parallel()

	s := newTestLogStore(t, 45)

	seen := make(map[string]int)
	for p := 1; p <= 3; p++ {
		page := s.Query(LogQuery{Page: p, Limit: 20})
		for _, e := range page.Data {
			seen[e.ID]++
		}
	}

	if len(seen) != 45 {
		t.Errorf("expected 45 distinct entries across pages, got %d", len(seen))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("entry %s appeared %d times", id, n)
		}
	}
}

func TestLogUpdate(t *testing.T) {
	t.Parallel()

	s := newTestLogStore(t, 10)
	target := s.Query(LogQuery{Page: 1, Limit: 1}).Data[0]

	updated, err := s.Update(target.ID, models.LogPatch{
		IsReviewed: boolPtr(true),
		Status:     strPtr(models.StatusSuspicious),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if !updated.IsReviewed {
		t.Error("expected isReviewed true after patch")
	}
	if updated.Status != models.StatusSuspicious {
		t.Errorf("expected status Suspicious, got %q", updated.Status)
	}
	// Untouched fields survive the merge.
	if updated.Source != target.Source || updated.IPAddress != target.IPAddress {
		t.Error("patch modified fields it should not have")
	}

	// The change is persisted.
	got, err := s.Get(target.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !got.IsReviewed {
		t.Error("expected patch to persist in store")
	}
}

func TestLogUpdateNotFound(t *testing.T) {
	t.Parallel()

	s := newTestLogStore(t, 10)
	before := s.Query(LogQuery{Page: 1, Limit: 10})

	_, err := s.Update("log-missing", models.LogPatch{IsReviewed: boolPtr(true)})
	if err != ErrLogNotFound {
		t.Fatalf("expected ErrLogNotFound, got %v", err)
	}

	after := s.Query(LogQuery{Page: 1, Limit: 10})
	for i := range before.Data {
		if before.Data[i] != after.Data[i] {
			t.Errorf("entry %d changed after failed update", i)
		}
	}
}

func TestLogQueryReturnsCopies(t *testing.T) {
	t.Parallel()

	s := newTestLogStore(t, 5)

	page := s.Query(LogQuery{Page: 1, Limit: 5})
	page.Data[0].Status = "Tampered"

	got, err := s.Get(page.Data[0].ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Status == "Tampered" {
		t.Error("mutating a returned page must not affect the store")
	}
}

func TestLogCounts(t *testing.T) {
	t.Parallel()

	s := NewLogStore([]models.LogEntry{
		{ID: "log-1", IPAddress: "1.1.1.1", EventType: "Failed Login Attempt", Status: models.StatusSuspicious},
		{ID: "log-2", IPAddress: "1.1.1.1", EventType: "File Access", Status: models.StatusNormal},
		{ID: "log-3", IPAddress: "2.2.2.2", EventType: "Failed Login Attempt", Status: models.StatusNormal},
	})

	total, suspicious, failedLogins, uniqueIPs := s.Counts()
	if total != 3 {
		t.Errorf("expected total 3, got %d", total)
	}
	if suspicious != 1 {
		t.Errorf("expected 1 suspicious, got %d", suspicious)
	}
	if failedLogins != 2 {
		t.Errorf("expected 2 failed logins, got %d", failedLogins)
	}
	if uniqueIPs != 2 {
		t.Errorf("expected 2 unique IPs, got %d", uniqueIPs)
	}
}

func TestLogStoreConcurrentAccess(t *testing.T) {
	t.Parallel()

	s := newTestLogStore(t, 100)
	ids := make([]string, 0, 100)
	for _, e := range s.Query(LogQuery{Page: 1, Limit: 100}).Data {
		ids = append(ids, e.ID)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s.Query(LogQuery{Page: 1, Limit: 20, Status: models.StatusSuspicious})
			}
		}(i)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _ = s.Update(ids[(n*50+j)%len(ids)], models.LogPatch{IsReviewed: boolPtr(true)})
			}
		}(i)
	}
	wg.Wait()

	if s.Len() != 100 {
		t.Errorf("expected 100 entries after concurrent access, got %d", s.Len())
	}
}
