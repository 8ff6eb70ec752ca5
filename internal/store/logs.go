// SentinelLite - Security Event Dashboard Backend
// Copyright 2026 SentinelLite Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentinel-lite/sentinel-lite

package store

import (
	"strings"
	"sync"

	"github.com/sentinel-lite/sentinel-lite/internal/metrics"
	"github.com/sentinel-lite/sentinel-lite/internal/models"
)

// FilterAll is the sentinel value that disables a source or status filter.
// The dashboard sends it for the "show everything" dropdown option.
const FilterAll = "ALL"

// DefaultQueryLimit is the page size used when a LogQuery carries no
// positive limit.
const DefaultQueryLimit = 20

// LogQuery describes a filtered, paginated request against the log store.
type LogQuery struct {
	// Source filters by exact source match. Empty or "ALL" disables the filter.
	Source string

	// Status filters by exact status match. Empty or "ALL" disables the filter.
	Status string

	// Search is a case-insensitive substring matched against ipAddress,
	// eventType, and raw. Empty disables the filter.
	Search string

	// Page is 1-based.
	Page int

	// Limit is the page size.
	Limit int
}

// LogStore holds security event logs in memory.
// Entries keep their insertion order; an id index serves point lookups.
type LogStore struct {
	mu      sync.RWMutex
	entries []models.LogEntry
	index   map[string]int
}

// NewLogStore creates a store seeded with the given entries.
func NewLogStore(entries []models.LogEntry) *LogStore {
	s := &LogStore{
		entries: make([]models.LogEntry, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	copy(s.entries, entries)
	for i, e := range s.entries {
		s.index[e.ID] = i
	}
	metrics.LogStoreSize.Set(float64(len(s.entries)))
	return s
}

// Len returns the number of stored entries.
func (s *LogStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Query returns a page of entries matching the query filters.
//
// Total counts all matches before pagination. An out-of-range page yields an
// empty data slice with the correct total. Query is total on all inputs:
// a page below 1 is treated as 1, a limit below 1 as DefaultQueryLimit, and
// pages beyond the last never index past the data, however large.
func (s *LogStore) Query(q LogQuery) models.LogPage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = DefaultQueryLimit
	}

	filtered := s.filterLocked(q)
	total := len(filtered)

	pages := total / limit
	if total%limit != 0 {
		pages++
	}

	// Comparing against the page count avoids the multiplication for pages
	// past the end, which would overflow for huge page values.
	start, end := total, total
	if page-1 < pages {
		start = (page - 1) * limit
		end = start + limit
		if end > total {
			end = total
		}
	}

	data := make([]models.LogEntry, end-start)
	copy(data, filtered[start:end])

	return models.LogPage{
		Data:       data,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: pages,
	}
}

// filterLocked applies the query filters. Caller must hold at least a read lock.
func (s *LogStore) filterLocked(q LogQuery) []models.LogEntry {
	filterSource := q.Source != "" && q.Source != FilterAll
	filterStatus := q.Status != "" && q.Status != FilterAll
	search := strings.ToLower(q.Search)

	if !filterSource && !filterStatus && search == "" {
		return s.entries
	}

	filtered := make([]models.LogEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if filterSource && e.Source != q.Source {
			continue
		}
		if filterStatus && e.Status != q.Status {
			continue
		}
		if search != "" && !matchesSearch(e, search) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

// matchesSearch reports whether the lowercased search term appears in the
// entry's IP address, event type, or raw line.
func matchesSearch(e models.LogEntry, search string) bool {
	return strings.Contains(strings.ToLower(e.IPAddress), search) ||
		strings.Contains(strings.ToLower(e.EventType), search) ||
		strings.Contains(strings.ToLower(e.Raw), search)
}

// Get returns the entry with the given id.
func (s *LogStore) Get(id string) (models.LogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return models.LogEntry{}, ErrLogNotFound
	}
	return s.entries[i], nil
}

// Update applies a shallow merge of the patch's non-nil fields to the entry
// with the given id and returns the updated entry. The store is left
// unmodified when the id is unknown.
func (s *LogStore) Update(id string, patch models.LogPatch) (models.LogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return models.LogEntry{}, ErrLogNotFound
	}

	e := &s.entries[i]
	if patch.Source != nil {
		e.Source = *patch.Source
	}
	if patch.IPAddress != nil {
		e.IPAddress = *patch.IPAddress
	}
	if patch.EventType != nil {
		e.EventType = *patch.EventType
	}
	if patch.Status != nil {
		e.Status = *patch.Status
	}
	if patch.IsReviewed != nil {
		e.IsReviewed = *patch.IsReviewed
	}
	if patch.Raw != nil {
		e.Raw = *patch.Raw
	}

	return *e, nil
}

// Counts aggregates the store for the dashboard stats endpoint: total entries,
// suspicious entries, failed-login events, and distinct IP addresses.
func (s *LogStore) Counts() (total, suspicious, failedLogins, uniqueIPs int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ips := make(map[string]struct{}, len(s.entries))
	for _, e := range s.entries {
		if e.Status == models.StatusSuspicious {
			suspicious++
		}
		if strings.Contains(e.EventType, "Failed Login") {
			failedLogins++
		}
		ips[e.IPAddress] = struct{}{}
	}

	return len(s.entries), suspicious, failedLogins, len(ips)
}
