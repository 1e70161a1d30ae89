package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/gourishchouhan/strive/internal/domain/entity"
)

// UserRepository provides access to stored users
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpsertByProvider creates the user on first sign-in, or refreshes
	// name/image when the provider reports a change. The returned flag
	// is true when the user was created.
	UpsertByProvider(ctx context.Context, profile entity.ProviderProfile) (*entity.User, bool, error)

	UpdatePreferences(ctx context.Context, id uuid.UUID, theme string, notificationsEnabled bool) (*entity.User, error)
}
