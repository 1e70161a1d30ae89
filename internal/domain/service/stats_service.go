package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/gourishchouhan/strive/internal/achievement"
)

// DashboardStats is the aggregate snapshot served to the dashboard.
// Every field is re-derived from a fresh read on each request.
type DashboardStats struct {
	ActiveChallenges   int `json:"active_challenges"`
	ChallengesThisWeek int `json:"challenges_this_week"`
	TodayTasks         int `json:"today_tasks"`
	CompletedTasks     int `json:"completed_tasks"`
	CompletionRate     int `json:"completion_rate"`
	CurrentStreak      int `json:"current_streak"`
}

// DashboardService aggregates task and challenge data into dashboard
// statistics.
type DashboardService interface {
	Stats(ctx context.Context, userID uuid.UUID) (*DashboardStats, error)
}

// AchievementReport pairs the evaluated catalog with the statistics
// that drove it.
type AchievementReport struct {
	Achievements []achievement.Evaluation `json:"achievements"`
	Stats        achievement.UserStats    `json:"stats"`
}

// AchievementService evaluates the achievement catalog for a user and
// maintains persisted first-unlock records.
type AchievementService interface {
	EvaluateForUser(ctx context.Context, userID uuid.UUID) (*AchievementReport, error)
}
