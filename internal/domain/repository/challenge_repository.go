package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gourishchouhan/strive/internal/domain/entity"
)

// ChallengeRepository provides access to stored challenges
type ChallengeRepository interface {
	Create(ctx context.Context, challenge *entity.Challenge) error
	GetByIDAndUserID(ctx context.Context, challengeID, userID uuid.UUID) (*entity.Challenge, error)
	List(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.Challenge, error)

	CountActive(ctx context.Context, userID uuid.UUID) (int, error)
	CountCreatedSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)

	// Update persists the whole challenge, comparing-and-swapping its
	// revision. A stale revision yields ErrConflict.
	Update(ctx context.Context, challenge *entity.Challenge) error

	Delete(ctx context.Context, challengeID, userID uuid.UUID) error

	// DeactivateExpired flips is_active off for challenges whose end
	// date passed before now, returning how many were touched.
	DeactivateExpired(ctx context.Context, now time.Time) (int, error)
}
