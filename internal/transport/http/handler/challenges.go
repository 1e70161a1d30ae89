package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/gourishchouhan/strive/internal/domain/service"
	"github.com/gourishchouhan/strive/internal/transport/http/middleware"
)

// ChallengeHandler handles challenge-related HTTP requests
type ChallengeHandler struct {
	challengeService service.ChallengeService
}

// NewChallengeHandler creates a new challenge handler
func NewChallengeHandler(challengeService service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeService: challengeService}
}

type dailyTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}

func dailyTaskInputs(reqs []dailyTaskRequest) []service.DailyTaskInput {
	if reqs == nil {
		return nil
	}
	inputs := make([]service.DailyTaskInput, len(reqs))
	for i, dt := range reqs {
		inputs[i] = service.DailyTaskInput{
			Title:       dt.Title,
			Description: dt.Description,
			Completed:   dt.Completed,
		}
	}
	return inputs
}

// CreateChallenge handles challenge creation
// @Summary Create a new challenge
// @Description Start a multi-day challenge with embedded daily sub-tasks
// @Tags challenges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{title=string,description=string,category=string,start_date=string,end_date=string,daily_tasks=[]object} true "Create challenge request"
// @Success 201 {object} entity.Challenge
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/v1/challenges [post]
func (h *ChallengeHandler) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Title       string             `json:"title"`
		Description *string            `json:"description"`
		Category    string             `json:"category"`
		StartDate   string             `json:"start_date"`
		EndDate     string             `json:"end_date"`
		DailyTasks  []dailyTaskRequest `json:"daily_tasks"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	startDate, err := parseDay(req.StartDate)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	endDate, err := parseDay(req.EndDate)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	challenge, err := h.challengeService.CreateChallenge(r.Context(), userID, service.ChallengeCreate{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		StartDate:   startDate,
		EndDate:     endDate,
		DailyTasks:  dailyTaskInputs(req.DailyTasks),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, challenge)
}

// GetChallenge retrieves a single challenge by ID
// @Summary Get challenge by ID
// @Tags challenges
// @Produce json
// @Security BearerAuth
// @Param id path string true "Challenge ID"
// @Success 200 {object} entity.Challenge
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/v1/challenges/{id} [get]
func (h *ChallengeHandler) GetChallenge(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	challengeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid challenge ID", http.StatusBadRequest)
		return
	}

	challenge, err := h.challengeService.GetChallenge(r.Context(), challengeID, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, challenge)
}

// ListChallenges retrieves all challenges for the authenticated user
// @Summary List challenges
// @Description Get challenges for the authenticated user, newest first
// @Tags challenges
// @Produce json
// @Security BearerAuth
// @Param active_only query boolean false "Filter only active challenges"
// @Success 200 {array} entity.Challenge
// @Failure 401 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/v1/challenges [get]
func (h *ChallengeHandler) ListChallenges(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	activeOnly := r.URL.Query().Get("active_only") == "true"

	challenges, err := h.challengeService.ListChallenges(r.Context(), userID, activeOnly)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, challenges)
}

// UpdateChallenge updates an existing challenge
// @Summary Update challenge
// @Description Partially update a challenge. daily_tasks replaces the whole embedded list; daily_task_index plus daily_task_completed toggles a single sub-task.
// @Tags challenges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Challenge ID"
// @Param request body object{title=string,description=string,category=string,start_date=string,end_date=string,is_active=bool,daily_tasks=[]object,daily_task_index=int,daily_task_completed=bool} true "Update challenge request"
// @Success 200 {object} entity.Challenge
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/v1/challenges/{id} [put]
func (h *ChallengeHandler) UpdateChallenge(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	challengeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid challenge ID", http.StatusBadRequest)
		return
	}

	var req struct {
		Title       *string            `json:"title"`
		Description *string            `json:"description"`
		Category    *string            `json:"category"`
		StartDate   *string            `json:"start_date"`
		EndDate     *string            `json:"end_date"`
		IsActive    *bool              `json:"is_active"`
		DailyTasks  []dailyTaskRequest `json:"daily_tasks"`

		DailyTaskIndex     *int  `json:"daily_task_index"`
		DailyTaskCompleted *bool `json:"daily_task_completed"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	patch := service.ChallengePatch{
		Title:              req.Title,
		Description:        req.Description,
		Category:           req.Category,
		IsActive:           req.IsActive,
		DailyTasks:         dailyTaskInputs(req.DailyTasks),
		DailyTaskIndex:     req.DailyTaskIndex,
		DailyTaskCompleted: req.DailyTaskCompleted,
	}
	if req.StartDate != nil {
		startDate, err := parseDay(*req.StartDate)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		patch.StartDate = &startDate
	}
	if req.EndDate != nil {
		endDate, err := parseDay(*req.EndDate)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		patch.EndDate = &endDate
	}

	challenge, err := h.challengeService.UpdateChallenge(r.Context(), challengeID, userID, patch)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, challenge)
}

// DeleteChallenge deletes a challenge
// @Summary Delete challenge
// @Produce json
// @Security BearerAuth
// @Param id path string true "Challenge ID"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/v1/challenges/{id} [delete]
func (h *ChallengeHandler) DeleteChallenge(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	challengeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid challenge ID", http.StatusBadRequest)
		return
	}

	if err := h.challengeService.DeleteChallenge(r.Context(), challengeID, userID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Challenge deleted successfully"})
}
