package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gourishchouhan/strive/internal/domain/entity"
	"github.com/gourishchouhan/strive/internal/domain/repository"
)

const challengeColumns = `
	id, user_id, title, description, category, start_date, end_date,
	daily_tasks, progress, is_active, completed_dates, streak, revision,
	created_at, updated_at
`

type challengeRepository struct {
	pool *pgxpool.Pool
}

// NewChallengeRepository creates a new PostgreSQL challenge repository
func NewChallengeRepository(pool *pgxpool.Pool) repository.ChallengeRepository {
	return &challengeRepository{pool: pool}
}

func (r *challengeRepository) Create(ctx context.Context, challenge *entity.Challenge) error {
	dailyTasks, err := json.Marshal(challenge.DailyTasks)
	if err != nil {
		return fmt.Errorf("failed to encode daily tasks: %w", err)
	}

	query := `
		INSERT INTO challenges (` + challengeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err = r.pool.Exec(ctx, query,
		challenge.ID, challenge.UserID, challenge.Title, challenge.Description,
		challenge.Category, challenge.StartDate, challenge.EndDate,
		dailyTasks, challenge.Progress, challenge.IsActive,
		completedDatesParam(challenge.CompletedDates), challenge.Streak, challenge.Revision,
		challenge.CreatedAt, challenge.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create challenge: %w", err)
	}

	return nil
}

// completedDatesParam keeps a nil slice from encoding as SQL NULL;
// the completed_dates column is NOT NULL.
func completedDatesParam(dates []time.Time) []time.Time {
	if dates == nil {
		return []time.Time{}
	}
	return dates
}

func (r *challengeRepository) scanChallenge(row pgx.Row) (*entity.Challenge, error) {
	challenge := &entity.Challenge{}
	var dailyTasks []byte

	err := row.Scan(
		&challenge.ID, &challenge.UserID, &challenge.Title, &challenge.Description,
		&challenge.Category, &challenge.StartDate, &challenge.EndDate,
		&dailyTasks, &challenge.Progress, &challenge.IsActive,
		&challenge.CompletedDates, &challenge.Streak, &challenge.Revision,
		&challenge.CreatedAt, &challenge.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(dailyTasks, &challenge.DailyTasks); err != nil {
		return nil, fmt.Errorf("failed to decode daily tasks: %w", err)
	}

	return challenge, nil
}

func (r *challengeRepository) GetByIDAndUserID(ctx context.Context, challengeID, userID uuid.UUID) (*entity.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE id = $1 AND user_id = $2`

	challenge, err := r.scanChallenge(r.pool.QueryRow(ctx, query, challengeID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	return challenge, nil
}

func (r *challengeRepository) List(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE user_id = $1`
	if activeOnly {
		query += " AND is_active = TRUE"
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list challenges: %w", err)
	}
	defer rows.Close()

	var challenges []*entity.Challenge
	for rows.Next() {
		challenge, err := r.scanChallenge(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan challenge: %w", err)
		}
		challenges = append(challenges, challenge)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate challenges: %w", err)
	}

	return challenges, nil
}

func (r *challengeRepository) CountActive(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM challenges WHERE user_id = $1 AND is_active = TRUE`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active challenges: %w", err)
	}
	return count, nil
}

func (r *challengeRepository) CountCreatedSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM challenges WHERE user_id = $1 AND is_active = TRUE AND created_at >= $2`,
		userID, since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent challenges: %w", err)
	}
	return count, nil
}

func (r *challengeRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM challenges WHERE user_id = $1`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count challenges: %w", err)
	}
	return count, nil
}

func (r *challengeRepository) Update(ctx context.Context, challenge *entity.Challenge) error {
	dailyTasks, err := json.Marshal(challenge.DailyTasks)
	if err != nil {
		return fmt.Errorf("failed to encode daily tasks: %w", err)
	}

	query := `
		UPDATE challenges SET
			title = $1,
			description = $2,
			category = $3,
			start_date = $4,
			end_date = $5,
			daily_tasks = $6,
			progress = $7,
			is_active = $8,
			completed_dates = $9,
			streak = $10,
			revision = revision + 1,
			updated_at = $11
		WHERE id = $12 AND user_id = $13 AND revision = $14
	`

	result, err := r.pool.Exec(ctx, query,
		challenge.Title, challenge.Description, challenge.Category,
		challenge.StartDate, challenge.EndDate, dailyTasks,
		challenge.Progress, challenge.IsActive, completedDatesParam(challenge.CompletedDates),
		challenge.Streak, challenge.UpdatedAt,
		challenge.ID, challenge.UserID, challenge.Revision,
	)

	if err != nil {
		return fmt.Errorf("failed to update challenge: %w", err)
	}

	if result.RowsAffected() == 0 {
		return r.conflictOrNotFound(ctx, challenge.ID, challenge.UserID)
	}

	challenge.Revision++
	return nil
}

func (r *challengeRepository) Delete(ctx context.Context, challengeID, userID uuid.UUID) error {
	result, err := r.pool.Exec(ctx,
		`DELETE FROM challenges WHERE id = $1 AND user_id = $2`,
		challengeID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete challenge: %w", err)
	}

	if result.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *challengeRepository) DeactivateExpired(ctx context.Context, now time.Time) (int, error) {
	result, err := r.pool.Exec(ctx,
		`UPDATE challenges SET is_active = FALSE, updated_at = $1 WHERE is_active = TRUE AND end_date < $1`,
		now,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate expired challenges: %w", err)
	}

	return int(result.RowsAffected()), nil
}

func (r *challengeRepository) conflictOrNotFound(ctx context.Context, challengeID, userID uuid.UUID) error {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM challenges WHERE id = $1 AND user_id = $2)`,
		challengeID, userID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check challenge existence: %w", err)
	}
	if exists {
		return repository.ErrConflict
	}
	return repository.ErrNotFound
}
