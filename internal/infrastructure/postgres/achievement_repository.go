package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gourishchouhan/strive/internal/domain/entity"
	"github.com/gourishchouhan/strive/internal/domain/repository"
)

type achievementRepository struct {
	pool *pgxpool.Pool
}

// NewAchievementRepository creates a new PostgreSQL achievement repository
func NewAchievementRepository(pool *pgxpool.Pool) repository.AchievementRepository {
	return &achievementRepository{pool: pool}
}

func (r *achievementRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.AchievementUnlock, error) {
	query := `
		SELECT user_id, achievement_id, unlocked_at
		FROM achievement_unlocks
		WHERE user_id = $1
		ORDER BY unlocked_at
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievement unlocks: %w", err)
	}
	defer rows.Close()

	var unlocks []*entity.AchievementUnlock
	for rows.Next() {
		unlock := &entity.AchievementUnlock{}
		if err := rows.Scan(&unlock.UserID, &unlock.AchievementID, &unlock.UnlockedAt); err != nil {
			return nil, fmt.Errorf("failed to scan achievement unlock: %w", err)
		}
		unlocks = append(unlocks, unlock)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate achievement unlocks: %w", err)
	}

	return unlocks, nil
}

// RecordUnlock inserts the unlock once and returns the stored row.
// Replays keep the original timestamp; it is never overwritten.
func (r *achievementRepository) RecordUnlock(ctx context.Context, unlock *entity.AchievementUnlock) (*entity.AchievementUnlock, error) {
	query := `
		INSERT INTO achievement_unlocks (user_id, achievement_id, unlocked_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, achievement_id) DO UPDATE SET user_id = achievement_unlocks.user_id
		RETURNING user_id, achievement_id, unlocked_at
	`

	stored := &entity.AchievementUnlock{}
	err := r.pool.QueryRow(ctx, query, unlock.UserID, unlock.AchievementID, unlock.UnlockedAt).Scan(
		&stored.UserID, &stored.AchievementID, &stored.UnlockedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record achievement unlock: %w", err)
	}

	return stored, nil
}
