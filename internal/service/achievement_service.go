package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/gourishchouhan/strive/internal/achievement"
	"github.com/gourishchouhan/strive/internal/domain/entity"
	"github.com/gourishchouhan/strive/internal/domain/repository"
	"github.com/gourishchouhan/strive/internal/domain/service"
)

type achievementService struct {
	taskRepo        repository.TaskRepository
	challengeRepo   repository.ChallengeRepository
	achievementRepo repository.AchievementRepository
	dashboard       service.DashboardService
	catalog         []achievement.Definition
	events          EventPublisher
}

// NewAchievementService creates a new achievement service
func NewAchievementService(
	taskRepo repository.TaskRepository,
	challengeRepo repository.ChallengeRepository,
	achievementRepo repository.AchievementRepository,
	dashboard service.DashboardService,
	events EventPublisher,
) service.AchievementService {
	return &achievementService{
		taskRepo:        taskRepo,
		challengeRepo:   challengeRepo,
		achievementRepo: achievementRepo,
		dashboard:       dashboard,
		catalog:         achievement.Catalog(),
		events:          events,
	}
}

// EvaluateForUser evaluates the catalog against freshly derived user
// statistics. Newly reached unlocks are persisted once; UnlockedAt
// always reports the stored first-unlock moment.
func (s *achievementService) EvaluateForUser(ctx context.Context, userID uuid.UUID) (*service.AchievementReport, error) {
	userStats, err := s.collectStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	unlocks, err := s.achievementRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	unlockedAt := make(map[string]time.Time, len(unlocks))
	for _, u := range unlocks {
		unlockedAt[u.AchievementID] = u.UnlockedAt
	}

	evaluations := achievement.EvaluateAll(s.catalog, *userStats)
	for i := range evaluations {
		ev := &evaluations[i]
		if at, ok := unlockedAt[ev.ID]; ok {
			ev.Unlocked = true
			ev.UnlockedAt = &at
			continue
		}
		if !ev.Unlocked {
			continue
		}

		stored, err := s.achievementRepo.RecordUnlock(ctx, &entity.AchievementUnlock{
			UserID:        userID,
			AchievementID: ev.ID,
			UnlockedAt:    time.Now().UTC(),
		})
		if err != nil {
			return nil, err
		}
		ev.UnlockedAt = &stored.UnlockedAt

		if s.events != nil {
			if err := s.events.PublishAchievementUnlocked(ctx, stored); err != nil {
				log.Printf("Warning: failed to publish achievement unlocked event: %v", err)
			}
		}
	}

	return &service.AchievementReport{
		Achievements: evaluations,
		Stats:        *userStats,
	}, nil
}

func (s *achievementService) collectStats(ctx context.Context, userID uuid.UUID) (*achievement.UserStats, error) {
	tasks, err := s.taskRepo.List(ctx, userID, repository.TaskFilter{})
	if err != nil {
		return nil, err
	}

	completedTasks := 0
	categoryCompleted := make(map[string]int)
	for _, t := range tasks {
		if !t.Completed {
			continue
		}
		completedTasks++
		categoryCompleted[string(t.Category)]++
	}

	totalChallenges, err := s.challengeRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	challenges, err := s.challengeRepo.List(ctx, userID, false)
	if err != nil {
		return nil, err
	}
	completedChallenges := 0
	for _, c := range challenges {
		if c.Progress == 100 {
			completedChallenges++
		}
	}

	dashboardStats, err := s.dashboard.Stats(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &achievement.UserStats{
		CompletedTasks:      completedTasks,
		CurrentStreak:       dashboardStats.CurrentStreak,
		TotalChallenges:     totalChallenges,
		CompletedChallenges: completedChallenges,
		CategoryCompleted:   categoryCompleted,
	}, nil
}
