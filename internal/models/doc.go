// SentinelLite - Security Event Dashboard Backend
// Copyright 2026 SentinelLite Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentinel-lite/sentinel-lite

// Package models defines the wire and data types shared across SentinelLite:
// user accounts, security event logs, alerts, dashboard statistics, and the
// request/response envelopes of the HTTP API.
//
// JSON field names are camelCase and form the external contract consumed by
// the dashboard frontend. Changing a tag here is a breaking API change.
package models
