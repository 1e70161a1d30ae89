package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gourishchouhan/strive/internal/domain/entity"
)

// TaskCreate carries the fields accepted when scheduling a task
type TaskCreate struct {
	Title       string
	Description *string
	TimeOfDay   string
	Priority    string
	Category    string
	Date        time.Time
	ChallengeID *uuid.UUID
}

// TaskPatch carries a partial update; nil fields are left untouched
type TaskPatch struct {
	Title       *string
	Description *string
	TimeOfDay   *string
	Priority    *string
	Category    *string
	Date        *time.Time
	Completed   *bool
	ChallengeID *uuid.UUID
}

// TaskService manages standalone scheduled tasks
type TaskService interface {
	CreateTask(ctx context.Context, userID uuid.UUID, create TaskCreate) (*entity.Task, error)
	ListTasks(ctx context.Context, userID uuid.UUID, day *time.Time) ([]*entity.Task, error)
	UpdateTask(ctx context.Context, taskID, userID uuid.UUID, patch TaskPatch) (*entity.Task, error)
	DeleteTask(ctx context.Context, taskID, userID uuid.UUID) error
}
