package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/gourishchouhan/strive/internal/domain/entity"
)

// AchievementRepository stores per-user first-unlock records
type AchievementRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.AchievementUnlock, error)

	// RecordUnlock inserts the unlock if absent and returns the stored
	// record either way; the original timestamp is never overwritten.
	RecordUnlock(ctx context.Context, unlock *entity.AchievementUnlock) (*entity.AchievementUnlock, error)
}
