package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/gourishchouhan/strive/internal/domain/service"
	"github.com/gourishchouhan/strive/internal/transport/http/middleware"
)

// AchievementHandler serves the evaluated achievement catalog
type AchievementHandler struct {
	achievementService service.AchievementService
}

// NewAchievementHandler creates a new achievement handler
func NewAchievementHandler(achievementService service.AchievementService) *AchievementHandler {
	return &AchievementHandler{achievementService: achievementService}
}

// ListAchievements evaluates the full catalog for the authenticated user
// @Summary List achievements
// @Description Evaluate every achievement definition against the user's current statistics. Unlock timestamps are persisted on first unlock and never move afterwards.
// @Tags achievements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.AchievementReport
// @Failure 401 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/v1/achievements [get]
func (h *AchievementHandler) ListAchievements(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	report, err := h.achievementService.EvaluateForUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}
