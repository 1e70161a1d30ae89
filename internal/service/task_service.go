package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gourishchouhan/strive/internal/domain/entity"
	"github.com/gourishchouhan/strive/internal/domain/repository"
	"github.com/gourishchouhan/strive/internal/domain/service"
	"github.com/gourishchouhan/strive/pkg/validation"
)

type taskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo repository.TaskRepository) service.TaskService {
	return &taskService{taskRepo: taskRepo}
}

func (s *taskService) CreateTask(ctx context.Context, userID uuid.UUID, create service.TaskCreate) (*entity.Task, error) {
	if err := validation.Title("title", create.Title); err != nil {
		return nil, err
	}
	if err := validation.Description("description", create.Description); err != nil {
		return nil, err
	}
	if err := validation.TimeOfDay("time", create.TimeOfDay); err != nil {
		return nil, err
	}
	if create.Date.IsZero() {
		return nil, validation.Invalid("date", "is required")
	}

	now := time.Now().UTC()
	task := &entity.Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       create.Title,
		Description: create.Description,
		TimeOfDay:   create.TimeOfDay,
		Priority:    entity.ParsePriority(create.Priority),
		Category:    entity.ParseCategory(create.Category),
		Completed:   false,
		Date:        dayOf(create.Date),
		ChallengeID: create.ChallengeID,
		Revision:    1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *taskService) ListTasks(ctx context.Context, userID uuid.UUID, day *time.Time) ([]*entity.Task, error) {
	filter := repository.TaskFilter{}
	if day != nil {
		d := dayOf(*day)
		filter.Day = &d
	}
	return s.taskRepo.List(ctx, userID, filter)
}

func (s *taskService) UpdateTask(ctx context.Context, taskID, userID uuid.UUID, patch service.TaskPatch) (*entity.Task, error) {
	task, err := s.taskRepo.GetByIDAndUserID(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if err := validation.Title("title", *patch.Title); err != nil {
			return nil, err
		}
		task.Title = *patch.Title
	}

	if patch.Description != nil {
		if err := validation.Description("description", patch.Description); err != nil {
			return nil, err
		}
		task.Description = patch.Description
	}

	if patch.TimeOfDay != nil {
		if err := validation.TimeOfDay("time", *patch.TimeOfDay); err != nil {
			return nil, err
		}
		task.TimeOfDay = *patch.TimeOfDay
	}

	if patch.Priority != nil {
		task.Priority = entity.ParsePriority(*patch.Priority)
	}

	if patch.Category != nil {
		task.Category = entity.ParseCategory(*patch.Category)
	}

	if patch.Date != nil {
		task.Date = dayOf(*patch.Date)
	}

	if patch.ChallengeID != nil {
		task.ChallengeID = patch.ChallengeID
	}

	if patch.Completed != nil {
		task.SetCompleted(*patch.Completed, time.Now().UTC())
	}

	task.UpdatedAt = time.Now().UTC()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, taskID, userID uuid.UUID) error {
	return s.taskRepo.Delete(ctx, taskID, userID)
}

// dayOf truncates a timestamp to its calendar day in UTC
func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
