package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gourishchouhan/strive/internal/domain/entity"
	"github.com/gourishchouhan/strive/internal/domain/repository"
	"github.com/gourishchouhan/strive/internal/domain/service"
	"github.com/gourishchouhan/strive/pkg/validation"
)

func validTaskCreate() service.TaskCreate {
	return service.TaskCreate{
		Title:     "Morning run",
		TimeOfDay: "07:00",
		Priority:  "high",
		Category:  "fitness",
		Date:      time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC),
	}
}

func TestCreateTaskNormalizesFields(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo)
	userID := uuid.New()

	create := validTaskCreate()
	create.Priority = "urgent" // unknown label
	create.Category = "gardening"

	task, err := svc.CreateTask(context.Background(), userID, create)
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if task.Priority != entity.PriorityMedium {
		t.Errorf("Priority = %q, want medium fallback", task.Priority)
	}
	if task.Category != entity.CategoryOther {
		t.Errorf("Category = %q, want other fallback", task.Category)
	}
	if task.Completed {
		t.Error("new task must start incomplete")
	}
	if task.Revision != 1 {
		t.Errorf("Revision = %d, want 1", task.Revision)
	}

	// Date is truncated to midnight UTC
	want := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	if !task.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", task.Date, want)
	}
}

func TestCreateTaskValidation(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo())
	userID := uuid.New()

	tests := []struct {
		name   string
		mutate func(*service.TaskCreate)
	}{
		{"empty title", func(c *service.TaskCreate) { c.Title = "  " }},
		{"bad time", func(c *service.TaskCreate) { c.TimeOfDay = "25:00" }},
		{"zero date", func(c *service.TaskCreate) { c.Date = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			create := validTaskCreate()
			tt.mutate(&create)

			_, err := svc.CreateTask(context.Background(), userID, create)
			var fieldErr *validation.Error
			if !errors.As(err, &fieldErr) {
				t.Fatalf("want validation error, got %v", err)
			}
		})
	}
}

func TestUpdateTaskStampsCompletion(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo)
	userID := uuid.New()

	task, err := svc.CreateTask(context.Background(), userID, validTaskCreate())
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	done := true
	updated, err := svc.UpdateTask(context.Background(), task.ID, userID, service.TaskPatch{Completed: &done})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if !updated.Completed || updated.CompletedAt == nil {
		t.Fatal("completing a task should set Completed and stamp CompletedAt")
	}
	if updated.Revision != 2 {
		t.Errorf("Revision = %d, want 2 after one update", updated.Revision)
	}

	undone := false
	updated, err = svc.UpdateTask(context.Background(), task.ID, userID, service.TaskPatch{Completed: &undone})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated.Completed || updated.CompletedAt != nil {
		t.Error("un-completing should clear the completion stamp")
	}
}

func TestUpdateTaskScopedToOwner(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo)

	owner := uuid.New()
	task, err := svc.CreateTask(context.Background(), owner, validTaskCreate())
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	title := "hijack"
	_, err = svc.UpdateTask(context.Background(), task.ID, uuid.New(), service.TaskPatch{Title: &title})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("foreign update = %v, want ErrNotFound", err)
	}

	if err := svc.DeleteTask(context.Background(), task.ID, uuid.New()); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("foreign delete = %v, want ErrNotFound", err)
	}
}

func TestUpdateTaskStaleRevisionConflicts(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo)
	userID := uuid.New()

	task, err := svc.CreateTask(context.Background(), userID, validTaskCreate())
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	// Another writer bumps the stored revision
	repo.mu.Lock()
	repo.tasks[task.ID].Revision = 5
	repo.mu.Unlock()

	stale := copyTask(task)
	stale.Title = "stale write"
	if err := repo.Update(context.Background(), stale); !errors.Is(err, repository.ErrConflict) {
		t.Errorf("stale update = %v, want ErrConflict", err)
	}
}

func TestListTasksFiltersByDay(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo)
	userID := uuid.New()

	for _, d := range []string{"2026-03-09", "2026-03-10", "2026-03-10"} {
		create := validTaskCreate()
		create.Date, _ = time.Parse("2006-01-02", d)
		if _, err := svc.CreateTask(context.Background(), userID, create); err != nil {
			t.Fatalf("CreateTask: %v", err)
		}
	}

	day := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	tasks, err := svc.ListTasks(context.Background(), userID, &day)
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Errorf("got %d tasks for the day, want 2", len(tasks))
	}

	all, err := svc.ListTasks(context.Background(), userID, nil)
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d tasks unfiltered, want 3", len(all))
	}
}
