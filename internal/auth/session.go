// SentinelLite - Security Event Dashboard Backend
// Copyright 2026 SentinelLite Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentinel-lite/sentinel-lite

package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sentinel-lite/sentinel-lite/internal/metrics"
)

// ErrSessionNotFound is returned when a token has no active session.
var ErrSessionNotFound = errors.New("session not found")

// tokenBytes is the entropy of a session token. 32 bytes hex-encodes to a
// 64-character token, matching the original wire format.
const tokenBytes = 32

// Session tracks an authenticated user. Sessions have no expiry; they live
// until logout or process restart.
type Session struct {
	Token     string
	UserID    string
	Email     string
	CreatedAt time.Time
}

// SessionRegistry holds active sessions keyed by opaque token.
// Safe for concurrent use.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewSessionRegistry creates an empty registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]Session),
	}
}

// Create mints a fresh token for the user and registers the session.
// A colliding token is regenerated rather than overwriting an existing
// session.
func (r *SessionRegistry) Create(userID, email string) (Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for {
		token, err := generateToken()
		if err != nil {
			return Session{}, err
		}
		if _, exists := r.sessions[token]; exists {
			continue
		}

		session := Session{
			Token:     token,
			UserID:    userID,
			Email:     email,
			CreatedAt: time.Now(),
		}
		r.sessions[token] = session
		metrics.ActiveSessions.Set(float64(len(r.sessions)))
		return session, nil
	}
}

// Resolve returns the session for a token.
func (r *SessionRegistry) Resolve(token string) (Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[token]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return session, nil
}

// Destroy removes the session for a token. Destroying an unknown token is a
// no-op, so logout stays idempotent.
func (r *SessionRegistry) Destroy(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)
	metrics.ActiveSessions.Set(float64(len(r.sessions)))
}

// Len returns the number of active sessions.
func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// generateToken returns a cryptographically random hex token.
func generateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
