package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/gourishchouhan/strive/internal/domain/service"
	"github.com/gourishchouhan/strive/internal/transport/http/middleware"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// parseDay accepts "2006-01-02" or a full RFC 3339 timestamp and
// returns the calendar day at midnight UTC.
func parseDay(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD or RFC 3339", s)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// CreateTask handles task creation
// @Summary Create a new task
// @Description Schedule a task for a calendar day
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{title=string,description=string,time=string,priority=string,category=string,date=string,challenge_id=string} true "Create task request"
// @Success 201 {object} entity.Task
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/v1/tasks [post]
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Title       string  `json:"title"`
		Description *string `json:"description"`
		TimeOfDay   string  `json:"time"`
		Priority    string  `json:"priority"`
		Category    string  `json:"category"`
		Date        string  `json:"date"`
		ChallengeID *string `json:"challenge_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	date, err := parseDay(req.Date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var challengeID *uuid.UUID
	if req.ChallengeID != nil {
		id, err := uuid.Parse(*req.ChallengeID)
		if err != nil {
			http.Error(w, "Invalid challenge_id", http.StatusBadRequest)
			return
		}
		challengeID = &id
	}

	task, err := h.taskService.CreateTask(r.Context(), userID, service.TaskCreate{
		Title:       req.Title,
		Description: req.Description,
		TimeOfDay:   req.TimeOfDay,
		Priority:    req.Priority,
		Category:    req.Category,
		Date:        date,
		ChallengeID: challengeID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

// ListTasks retrieves tasks for the authenticated user
// @Summary List tasks
// @Description Get tasks for the authenticated user, optionally filtered to one day
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param date query string false "Calendar day (YYYY-MM-DD)"
// @Success 200 {array} entity.Task
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /api/v1/tasks [get]
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var day *time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		d, err := parseDay(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		day = &d
	}

	tasks, err := h.taskService.ListTasks(r.Context(), userID, day)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

// UpdateTask updates an existing task
// @Summary Update task
// @Description Partially update a task; absent fields are left untouched
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param request body object{title=string,description=string,time=string,priority=string,category=string,date=string,completed=bool,challenge_id=string} true "Update task request"
// @Success 200 {object} entity.Task
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/v1/tasks/{id} [put]
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	taskID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid task ID", http.StatusBadRequest)
		return
	}

	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		TimeOfDay   *string `json:"time"`
		Priority    *string `json:"priority"`
		Category    *string `json:"category"`
		Date        *string `json:"date"`
		Completed   *bool   `json:"completed"`
		ChallengeID *string `json:"challenge_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	patch := service.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		TimeOfDay:   req.TimeOfDay,
		Priority:    req.Priority,
		Category:    req.Category,
		Completed:   req.Completed,
	}
	if req.Date != nil {
		date, err := parseDay(*req.Date)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		patch.Date = &date
	}
	if req.ChallengeID != nil {
		id, err := uuid.Parse(*req.ChallengeID)
		if err != nil {
			http.Error(w, "Invalid challenge_id", http.StatusBadRequest)
			return
		}
		patch.ChallengeID = &id
	}

	task, err := h.taskService.UpdateTask(r.Context(), taskID, userID, patch)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

// DeleteTask deletes a task
// @Summary Delete task
// @Description Permanently delete a task
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/v1/tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	taskID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid task ID", http.StatusBadRequest)
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), taskID, userID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Task deleted successfully"})
}
