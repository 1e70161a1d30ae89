package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gourishchouhan/strive/internal/domain/entity"
	"github.com/gourishchouhan/strive/internal/domain/repository"
)

const taskColumns = `
	id, user_id, title, description, time_of_day, priority, category,
	completed, completed_at, scheduled_date, challenge_id, revision,
	created_at, updated_at
`

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository creates a new PostgreSQL task repository
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

func (r *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.pool.Exec(ctx, query,
		task.ID, task.UserID, task.Title, task.Description, task.TimeOfDay,
		task.Priority, task.Category, task.Completed, task.CompletedAt,
		task.Date, task.ChallengeID, task.Revision, task.CreatedAt, task.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

func (r *taskRepository) GetByIDAndUserID(ctx context.Context, taskID, userID uuid.UUID) (*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND user_id = $2`

	task := &entity.Task{}
	err := r.pool.QueryRow(ctx, query, taskID, userID).Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description, &task.TimeOfDay,
		&task.Priority, &task.Category, &task.Completed, &task.CompletedAt,
		&task.Date, &task.ChallengeID, &task.Revision, &task.CreatedAt, &task.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

func (r *taskRepository) List(ctx context.Context, userID uuid.UUID, filter repository.TaskFilter) ([]*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1`
	args := []interface{}{userID}

	if filter.Day != nil {
		args = append(args, *filter.Day)
		query += fmt.Sprintf(" AND scheduled_date = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND scheduled_date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND scheduled_date < $%d", len(args))
	}
	if filter.CompletedOnly {
		query += " AND completed = TRUE"
	}

	query += " ORDER BY scheduled_date, time_of_day"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*entity.Task
	for rows.Next() {
		task := &entity.Task{}
		err := rows.Scan(
			&task.ID, &task.UserID, &task.Title, &task.Description, &task.TimeOfDay,
			&task.Priority, &task.Category, &task.Completed, &task.CompletedAt,
			&task.Date, &task.ChallengeID, &task.Revision, &task.CreatedAt, &task.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	query := `
		UPDATE tasks SET
			title = $1,
			description = $2,
			time_of_day = $3,
			priority = $4,
			category = $5,
			completed = $6,
			completed_at = $7,
			scheduled_date = $8,
			challenge_id = $9,
			revision = revision + 1,
			updated_at = $10
		WHERE id = $11 AND user_id = $12 AND revision = $13
	`

	result, err := r.pool.Exec(ctx, query,
		task.Title, task.Description, task.TimeOfDay, task.Priority, task.Category,
		task.Completed, task.CompletedAt, task.Date, task.ChallengeID,
		task.UpdatedAt, task.ID, task.UserID, task.Revision,
	)

	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	if result.RowsAffected() == 0 {
		return r.conflictOrNotFound(ctx, task.ID, task.UserID)
	}

	task.Revision++
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, taskID, userID uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, taskID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	if result.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// conflictOrNotFound distinguishes a stale revision from a missing row
func (r *taskRepository) conflictOrNotFound(ctx context.Context, taskID, userID uuid.UUID) error {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM tasks WHERE id = $1 AND user_id = $2)`,
		taskID, userID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check task existence: %w", err)
	}
	if exists {
		return repository.ErrConflict
	}
	return repository.ErrNotFound
}
