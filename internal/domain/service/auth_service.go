package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gourishchouhan/strive/internal/domain/entity"
)

// TokenPair is the access/refresh token set issued after sign-in
type TokenPair struct {
	AccessToken           string    `json:"access_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshToken          string    `json:"refresh_token"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
}

// Principal identifies the authenticated caller of a request
type Principal struct {
	UserID    uuid.UUID
	SessionID uuid.UUID
}

// AuthService handles delegated sign-in, session lifecycle and token
// validation. Identity itself belongs to the external provider.
type AuthService interface {
	// LoginURL returns the provider consent URL for the given state
	LoginURL(state string) string

	// HandleCallback exchanges the authorization code, upserts the
	// user and opens a session.
	HandleCallback(ctx context.Context, code string) (*entity.User, *TokenPair, error)

	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error

	// ValidateAccessToken checks the token signature and that its
	// session is still live.
	ValidateAccessToken(ctx context.Context, accessToken string) (*Principal, error)
}
