package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/gourishchouhan/strive/internal/domain/entity"
)

// UserService exposes profile reads and preference updates
type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdatePreferences(ctx context.Context, userID uuid.UUID, theme string, notificationsEnabled bool) (*entity.User, error)
}
