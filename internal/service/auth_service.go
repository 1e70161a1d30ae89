package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/gourishchouhan/strive/internal/domain/entity"
	"github.com/gourishchouhan/strive/internal/domain/repository"
	"github.com/gourishchouhan/strive/internal/domain/service"
	pkgjwt "github.com/gourishchouhan/strive/pkg/jwt"
)

type authService struct {
	userRepo     repository.UserRepository
	sessions     SessionStore
	provider     IdentityProvider
	tokenManager *pkgjwt.TokenManager
	mailer       Mailer
	events       EventPublisher
	sessionTTL   time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	sessions SessionStore,
	provider IdentityProvider,
	tokenManager *pkgjwt.TokenManager,
	mailer Mailer,
	events EventPublisher,
	sessionTTL time.Duration,
) service.AuthService {
	return &authService{
		userRepo:     userRepo,
		sessions:     sessions,
		provider:     provider,
		tokenManager: tokenManager,
		mailer:       mailer,
		events:       events,
		sessionTTL:   sessionTTL,
	}
}

// LoginURL returns the provider consent URL for the given state
func (s *authService) LoginURL(state string) string {
	return s.provider.AuthCodeURL(state)
}

// HandleCallback exchanges the authorization code for a provider
// profile, upserts the user and opens a session. Sign-in itself is the
// provider's business; this only consumes the verified identity.
func (s *authService) HandleCallback(ctx context.Context, code string) (*entity.User, *service.TokenPair, error) {
	profile, err := s.provider.Exchange(ctx, code)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	user, created, err := s.userRepo.UpsertByProvider(ctx, *profile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	if created {
		if s.events != nil {
			if err := s.events.PublishUserRegistered(ctx, user); err != nil {
				log.Printf("Warning: failed to publish user registered event: %v", err)
			}
		}
		if s.mailer != nil && user.NotificationsEnabled {
			if err := s.mailer.SendWelcomeEmail(ctx, user.Email, user.Name); err != nil {
				log.Printf("Warning: failed to send welcome email: %v", err)
			}
		}
	}

	pair, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

// Refresh rotates the token pair for a live session
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*service.TokenPair, error) {
	claims, err := s.tokenManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	session, err := s.sessions.GetByTokenHash(ctx, pkgjwt.HashToken(refreshToken))
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	if session.UserID != claims.UserID || session.IsExpired() {
		return nil, fmt.Errorf("session expired")
	}

	// one session per refresh; the old token hash stops resolving
	if err := s.sessions.Delete(ctx, session.ID); err != nil {
		return nil, fmt.Errorf("failed to rotate session: %w", err)
	}

	return s.openSession(ctx, session.UserID)
}

// Logout tears down the session
func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	return s.sessions.Delete(ctx, sessionID)
}

// ValidateAccessToken checks the token signature and that its session
// is still live.
func (s *authService) ValidateAccessToken(ctx context.Context, accessToken string) (*service.Principal, error) {
	claims, err := s.tokenManager.ValidateAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("invalid access token: %w", err)
	}

	exists, err := s.sessions.Exists(ctx, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check session: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("session terminated")
	}

	return &service.Principal{
		UserID:    claims.UserID,
		SessionID: claims.SessionID,
	}, nil
}

func (s *authService) openSession(ctx context.Context, userID uuid.UUID) (*service.TokenPair, error) {
	sessionID := uuid.New()

	accessToken, accessExpiry, err := s.tokenManager.GenerateAccessToken(userID, sessionID)
	if err != nil {
		return nil, err
	}

	refreshToken, refreshExpiry, err := s.tokenManager.GenerateRefreshToken(userID, sessionID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &entity.Session{
		ID:             sessionID,
		UserID:         userID,
		TokenHash:      pkgjwt.HashToken(refreshToken),
		CreatedAt:      now,
		LastActivityAt: now,
		ExpiresAt:      now.Add(s.sessionTTL),
	}

	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return &service.TokenPair{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExpiry,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExpiry,
	}, nil
}
