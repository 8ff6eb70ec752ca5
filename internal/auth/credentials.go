// SentinelLite - Security Event Dashboard Backend
// Copyright 2026 SentinelLite Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentinel-lite/sentinel-lite

// Package auth provides credential verification and opaque session tokens
// for the dashboard's mock authentication flow.
package auth

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/sentinel-lite/sentinel-lite/internal/models"
)

// ErrInvalidCredentials is returned for both unknown accounts and wrong
// passwords so callers cannot distinguish the two cases.
var ErrInvalidCredentials = errors.New("invalid credentials")

// SeedUser pairs a public profile with its plaintext demo password.
// Passwords are hashed at startup; only the digest is retained.
type SeedUser struct {
	User     models.User
	Password string
}

// SeedUsers returns the two demo accounts.
func SeedUsers() []SeedUser {
	return []SeedUser{
		{
			User: models.User{
				ID:     "u-1",
				Name:   "Jane Doe",
				Email:  "admin@sentinel.lite",
				Role:   models.RoleAdmin,
				Avatar: "JD",
			},
			Password: "sentinel2025",
		},
		{
			User: models.User{
				ID:     "u-2",
				Name:   "John Smith",
				Email:  "analyst@sentinel.lite",
				Role:   models.RoleAnalyst,
				Avatar: "JS",
			},
			Password: "analyst2025",
		},
	}
}

// credential holds a profile and its password digest.
type credential struct {
	user models.User
	hash []byte
}

// CredentialStore verifies email/password pairs against bcrypt digests.
// The store is immutable after construction and safe for concurrent use.
type CredentialStore struct {
	byEmail map[string]credential

	// dummyHash is compared against when the email is unknown, so both
	// failure paths cost one bcrypt comparison.
	dummyHash []byte
}

// NewCredentialStore hashes the seed users' passwords with the given bcrypt
// cost and builds the lookup table. Emails are keyed lowercase.
func NewCredentialStore(seeds []SeedUser, cost int) (*CredentialStore, error) {
	s := &CredentialStore{
		byEmail: make(map[string]credential, len(seeds)),
	}

	for _, seed := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("hashing credentials for %s: %w", seed.User.ID, err)
		}
		s.byEmail[strings.ToLower(seed.User.Email)] = credential{
			user: seed.User,
			hash: hash,
		}
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte("sentinel-lite-dummy"), cost)
	if err != nil {
		return nil, fmt.Errorf("hashing dummy credential: %w", err)
	}
	s.dummyHash = dummy

	return s, nil
}

// Authenticate verifies the email/password pair and returns the matching
// profile. Unknown emails and wrong passwords both return
// ErrInvalidCredentials, and both paths perform a bcrypt comparison so the
// timing is uniform.
func (s *CredentialStore) Authenticate(email, password string) (models.User, error) {
	cred, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return models.User{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword(cred.hash, []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}

	return cred.user, nil
}

// Lookup returns the profile for an email without verifying a password.
func (s *CredentialStore) Lookup(email string) (models.User, bool) {
	cred, ok := s.byEmail[strings.ToLower(email)]
	return cred.user, ok
}
