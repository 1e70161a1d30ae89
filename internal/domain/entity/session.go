package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents an authenticated session backed by a refresh token
type Session struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`

	// SHA-256 hash of the refresh token; the raw token is never stored
	TokenHash string `json:"token_hash"`

	CreatedAt      time.Time `json:"created_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// IsExpired reports whether the session has passed its expiry
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// UpdateActivity refreshes the last activity timestamp
func (s *Session) UpdateActivity() {
	s.LastActivityAt = time.Now().UTC()
}
