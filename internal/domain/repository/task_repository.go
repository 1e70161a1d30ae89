package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gourishchouhan/strive/internal/domain/entity"
)

// TaskFilter narrows List queries. A nil field means "no constraint".
type TaskFilter struct {
	// Day restricts results to one calendar day
	Day *time.Time

	// From/To restrict results to a half-open window [From, To)
	From *time.Time
	To   *time.Time

	// CompletedOnly keeps only completed tasks
	CompletedOnly bool
}

// TaskRepository provides access to stored tasks
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	GetByIDAndUserID(ctx context.Context, taskID, userID uuid.UUID) (*entity.Task, error)
	List(ctx context.Context, userID uuid.UUID, filter TaskFilter) ([]*entity.Task, error)

	// Update persists the whole task, comparing-and-swapping its
	// revision. A stale revision yields ErrConflict.
	Update(ctx context.Context, task *entity.Task) error

	Delete(ctx context.Context, taskID, userID uuid.UUID) error
}
