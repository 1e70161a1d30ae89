package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/gourishchouhan/strive/internal/domain/entity"
	"github.com/gourishchouhan/strive/internal/domain/repository"
	"github.com/gourishchouhan/strive/internal/domain/service"
	"github.com/gourishchouhan/strive/pkg/validation"
)

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) service.UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) UpdatePreferences(ctx context.Context, userID uuid.UUID, theme string, notificationsEnabled bool) (*entity.User, error) {
	if theme != "light" && theme != "dark" {
		return nil, validation.Invalid("theme", "must be light or dark")
	}
	return s.userRepo.UpdatePreferences(ctx, userID, theme, notificationsEnabled)
}
