// SentinelLite - Security Event Dashboard Backend
// Copyright 2026 SentinelLite Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentinel-lite/sentinel-lite

// Package api provides the HTTP layer: chi routing, middleware wiring, and
// the request handlers for authentication, logs, alerts, stats, and health.
package api

import (
	"github.com/sentinel-lite/sentinel-lite/internal/auth"
	"github.com/sentinel-lite/sentinel-lite/internal/config"
	"github.com/sentinel-lite/sentinel-lite/internal/store"
)

// Version is the API version reported by the health endpoint.
const Version = "1.0.0"

// Handler holds the stores and registries the endpoints operate on.
type Handler struct {
	cfg      *config.Config
	logs     *store.LogStore
	alerts   *store.AlertStore
	creds    *auth.CredentialStore
	sessions *auth.SessionRegistry
}

// NewHandler creates a handler with its dependencies injected.
func NewHandler(
	cfg *config.Config,
	logs *store.LogStore,
	alerts *store.AlertStore,
	creds *auth.CredentialStore,
	sessions *auth.SessionRegistry,
) *Handler {
	return &Handler{
		cfg:      cfg,
		logs:     logs,
		alerts:   alerts,
		creds:    creds,
		sessions: sessions,
	}
}
