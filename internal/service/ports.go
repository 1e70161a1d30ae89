package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/gourishchouhan/strive/internal/domain/entity"
)

// EventPublisher emits domain events for downstream consumers.
// Publishing is best effort; failures are logged, never surfaced to
// the request.
type EventPublisher interface {
	PublishUserRegistered(ctx context.Context, user *entity.User) error
	PublishChallengeCompleted(ctx context.Context, challenge *entity.Challenge) error
	PublishAchievementUnlocked(ctx context.Context, unlock *entity.AchievementUnlock) error
}

// Mailer sends transactional email
type Mailer interface {
	SendWelcomeEmail(ctx context.Context, to, name string) error
}

// SessionStore holds live sessions keyed by id and refresh-token hash
type SessionStore interface {
	Set(ctx context.Context, session *entity.Session) error
	Get(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)
	Delete(ctx context.Context, sessionID uuid.UUID) error
	Exists(ctx context.Context, sessionID uuid.UUID) (bool, error)
}

// IdentityProvider is the external OAuth collaborator: it hands out
// the consent URL and turns an authorization code into a profile.
type IdentityProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*entity.ProviderProfile, error)
}
