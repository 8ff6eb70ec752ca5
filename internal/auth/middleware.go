// SentinelLite - Security Event Dashboard Backend
// Copyright 2026 SentinelLite Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentinel-lite/sentinel-lite

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/sentinel-lite/sentinel-lite/internal/logging"
)

type contextKey string

// sessionKey is the context key under which the resolved session is stored.
const sessionKey contextKey = "session"

// TokenFromHeader extracts the bearer token from an Authorization header
// value. Returns empty string when no token is present.
func TokenFromHeader(header string) string {
	if header == "" {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// RequireSession returns middleware that rejects requests without a valid
// session token. The resolved session is stored in the request context for
// handlers downstream.
func RequireSession(registry *SessionRegistry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromHeader(r.Header.Get("Authorization"))

			session, err := registry.Resolve(token)
			if err != nil {
				logging.Ctx(r.Context()).Debug().
					Str("path", r.URL.Path).
					Msg("Rejected request without valid session")
				writeUnauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the session stored by RequireSession.
func SessionFromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(sessionKey).(Session)
	return session, ok
}

// writeUnauthorized writes the 401 response body used across the API.
func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}
