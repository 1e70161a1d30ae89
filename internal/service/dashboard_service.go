package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gourishchouhan/strive/internal/domain/repository"
	"github.com/gourishchouhan/strive/internal/domain/service"
	"github.com/gourishchouhan/strive/internal/stats"
)

type dashboardService struct {
	taskRepo      repository.TaskRepository
	challengeRepo repository.ChallengeRepository
	lookbackDays  int
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(taskRepo repository.TaskRepository, challengeRepo repository.ChallengeRepository, lookbackDays int) service.DashboardService {
	return &dashboardService{
		taskRepo:      taskRepo,
		challengeRepo: challengeRepo,
		lookbackDays:  lookbackDays,
	}
}

// Stats derives every dashboard statistic from a fresh read. Nothing is
// cached or incrementally maintained.
func (s *dashboardService) Stats(ctx context.Context, userID uuid.UUID) (*service.DashboardStats, error) {
	now := time.Now().UTC()
	today := dayOf(now)
	tomorrow := today.AddDate(0, 0, 1)
	weekAgo := today.AddDate(0, 0, -7)

	activeChallenges, err := s.challengeRepo.CountActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	challengesThisWeek, err := s.challengeRepo.CountCreatedSince(ctx, userID, weekAgo)
	if err != nil {
		return nil, err
	}

	todayTasks, err := s.taskRepo.List(ctx, userID, repository.TaskFilter{Day: &today})
	if err != nil {
		return nil, err
	}

	completedToday := 0
	for _, t := range todayTasks {
		if t.Completed {
			completedToday++
		}
	}

	weekTasks, err := s.taskRepo.List(ctx, userID, repository.TaskFilter{From: &weekAgo, To: &tomorrow})
	if err != nil {
		return nil, err
	}

	weekCompleted := 0
	var completedDates []time.Time
	for _, t := range weekTasks {
		if t.Completed {
			weekCompleted++
			completedDates = append(completedDates, t.Date)
		}
	}

	return &service.DashboardStats{
		ActiveChallenges:   activeChallenges,
		ChallengesThisWeek: challengesThisWeek,
		TodayTasks:         len(todayTasks),
		CompletedTasks:     completedToday,
		CompletionRate:     stats.Progress(weekCompleted, len(weekTasks)),
		CurrentStreak:      stats.Streak(stats.DateSet(completedDates), now, s.lookbackDays),
	}, nil
}
