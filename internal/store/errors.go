// SentinelLite - Security Event Dashboard Backend
// Copyright 2026 SentinelLite Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentinel-lite/sentinel-lite

package store

import "errors"

var (
	// ErrLogNotFound is returned when a log ID has no matching entry.
	ErrLogNotFound = errors.New("log not found")

	// ErrAlertNotFound is returned when an alert ID has no matching record.
	ErrAlertNotFound = errors.New("alert not found")
)
