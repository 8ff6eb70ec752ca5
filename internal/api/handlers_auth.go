// SentinelLite - Security Event Dashboard Backend
// Copyright 2026 SentinelLite Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentinel-lite/sentinel-lite

package api

import (
	"errors"
	"net/http"

	"github.com/sentinel-lite/sentinel-lite/internal/auth"
	"github.com/sentinel-lite/sentinel-lite/internal/logging"
	"github.com/sentinel-lite/sentinel-lite/internal/metrics"
	"github.com/sentinel-lite/sentinel-lite/internal/models"
)

// invalidCredentialsMessage is identical for unknown emails and wrong
// passwords so login cannot be used for account enumeration.
const invalidCredentialsMessage = "Invalid security credentials provided."

// Login authenticates an email/password pair and returns the user profile
// plus a fresh session token.
//
// POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		// Malformed or missing bodies fail the same way as bad credentials.
		metrics.RecordLoginAttempt(false)
		respondError(w, http.StatusUnauthorized, invalidCredentialsMessage)
		return
	}

	user, err := h.creds.Authenticate(req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			logging.Ctx(r.Context()).Error().Err(err).Msg("Unexpected authentication failure")
		}
		metrics.RecordLoginAttempt(false)
		respondError(w, http.StatusUnauthorized, invalidCredentialsMessage)
		return
	}

	session, err := h.sessions.Create(user.ID, user.Email)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to create session")
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	metrics.RecordLoginAttempt(true)
	logging.Ctx(r.Context()).Info().
		Str("user_id", user.ID).
		Msg("User logged in")

	respondJSON(w, http.StatusOK, models.LoginResponse{
		User:  user,
		Token: session.Token,
	})
}

// Logout destroys the caller's session. Always succeeds, even for unknown or
// missing tokens, so repeated logouts are harmless.
//
// POST /api/auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token := auth.TokenFromHeader(r.Header.Get("Authorization"))
	if token != "" {
		h.sessions.Destroy(token)
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Me returns the profile of the authenticated user.
//
// GET /api/auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, found := h.creds.Lookup(session.Email)
	if !found {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	respondJSON(w, http.StatusOK, user)
}
