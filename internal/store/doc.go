// SentinelLite - Security Event Dashboard Backend
// Copyright 2026 SentinelLite Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentinel-lite/sentinel-lite

// Package store provides the in-memory log and alert stores backing the API,
// plus the fixture generators that seed them at startup.
//
// Both stores guard their state with sync.RWMutex: reads run concurrently,
// writes are exclusive. Query paths return copies so callers can never mutate
// stored records through a returned slice.
package store
