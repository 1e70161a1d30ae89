package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/gourishchouhan/strive/internal/domain/entity"
	"github.com/gourishchouhan/strive/internal/domain/repository"
	"github.com/gourishchouhan/strive/internal/domain/service"
	"github.com/gourishchouhan/strive/internal/stats"
	"github.com/gourishchouhan/strive/pkg/validation"
)

type challengeService struct {
	challengeRepo repository.ChallengeRepository
	events        EventPublisher
	lookbackDays  int
}

// NewChallengeService creates a new challenge service
func NewChallengeService(challengeRepo repository.ChallengeRepository, events EventPublisher, lookbackDays int) service.ChallengeService {
	return &challengeService{
		challengeRepo: challengeRepo,
		events:        events,
		lookbackDays:  lookbackDays,
	}
}

func (s *challengeService) CreateChallenge(ctx context.Context, userID uuid.UUID, create service.ChallengeCreate) (*entity.Challenge, error) {
	if err := validation.Title("title", create.Title); err != nil {
		return nil, err
	}
	if err := validation.Description("description", create.Description); err != nil {
		return nil, err
	}
	if !entity.Category(create.Category).IsValid() {
		return nil, validation.Invalid("category", "unknown category")
	}
	if create.StartDate.IsZero() || create.EndDate.IsZero() {
		return nil, validation.Invalid("start_date", "start_date and end_date are required")
	}
	if err := validation.DateRange(create.StartDate, create.EndDate); err != nil {
		return nil, err
	}
	if len(create.DailyTasks) > validation.MaxDailyTasks {
		return nil, validation.Invalid("daily_tasks", "too many daily tasks")
	}

	now := time.Now().UTC()
	dailyTasks := make([]entity.DailyTask, 0, len(create.DailyTasks))
	for _, dt := range create.DailyTasks {
		if err := validation.Title("daily_tasks.title", dt.Title); err != nil {
			return nil, err
		}
		task := entity.DailyTask{
			Title:       dt.Title,
			Description: dt.Description,
		}
		task.SetCompleted(dt.Completed, now)
		dailyTasks = append(dailyTasks, task)
	}

	challenge := &entity.Challenge{
		ID:             uuid.New(),
		UserID:         userID,
		Title:          create.Title,
		Description:    create.Description,
		Category:       entity.Category(create.Category),
		StartDate:      create.StartDate,
		EndDate:        create.EndDate,
		DailyTasks:     dailyTasks,
		IsActive:       true,
		CompletedDates: []time.Time{},
		Streak:         0,
		Revision:       1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.recalcProgress(challenge)

	if err := s.challengeRepo.Create(ctx, challenge); err != nil {
		return nil, err
	}

	return challenge, nil
}

func (s *challengeService) GetChallenge(ctx context.Context, challengeID, userID uuid.UUID) (*entity.Challenge, error) {
	return s.challengeRepo.GetByIDAndUserID(ctx, challengeID, userID)
}

func (s *challengeService) ListChallenges(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.Challenge, error) {
	return s.challengeRepo.List(ctx, userID, activeOnly)
}

func (s *challengeService) UpdateChallenge(ctx context.Context, challengeID, userID uuid.UUID, patch service.ChallengePatch) (*entity.Challenge, error) {
	challenge, err := s.challengeRepo.GetByIDAndUserID(ctx, challengeID, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	wasComplete := challenge.AllDailyTasksCompleted()

	if patch.Title != nil {
		if err := validation.Title("title", *patch.Title); err != nil {
			return nil, err
		}
		challenge.Title = *patch.Title
	}

	if patch.Description != nil {
		if err := validation.Description("description", patch.Description); err != nil {
			return nil, err
		}
		challenge.Description = patch.Description
	}

	if patch.Category != nil {
		if !entity.Category(*patch.Category).IsValid() {
			return nil, validation.Invalid("category", "unknown category")
		}
		challenge.Category = entity.Category(*patch.Category)
	}

	if patch.StartDate != nil {
		challenge.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		challenge.EndDate = *patch.EndDate
	}
	if patch.StartDate != nil || patch.EndDate != nil {
		if err := validation.DateRange(challenge.StartDate, challenge.EndDate); err != nil {
			return nil, err
		}
	}

	if patch.IsActive != nil {
		challenge.IsActive = *patch.IsActive
	}

	if patch.DailyTasks != nil {
		if len(patch.DailyTasks) > validation.MaxDailyTasks {
			return nil, validation.Invalid("daily_tasks", "too many daily tasks")
		}
		replaced := make([]entity.DailyTask, 0, len(patch.DailyTasks))
		for i, dt := range patch.DailyTasks {
			if err := validation.Title("daily_tasks.title", dt.Title); err != nil {
				return nil, err
			}
			task := entity.DailyTask{Title: dt.Title, Description: dt.Description}
			// carry the original stamp when the sub-task stays completed
			if i < len(challenge.DailyTasks) && challenge.DailyTasks[i].Completed && dt.Completed {
				task.Completed = true
				task.CompletedAt = challenge.DailyTasks[i].CompletedAt
			} else {
				task.SetCompleted(dt.Completed, now)
			}
			replaced = append(replaced, task)
		}
		challenge.DailyTasks = replaced
	}

	if patch.DailyTaskIndex != nil && patch.DailyTaskCompleted != nil {
		idx := *patch.DailyTaskIndex
		if idx < 0 || idx >= len(challenge.DailyTasks) {
			return nil, validation.Invalid("daily_task_index", "out of range")
		}
		challenge.DailyTasks[idx].SetCompleted(*patch.DailyTaskCompleted, now)
	}

	// Progress invariant: re-derive before every persist that touches
	// the embedded list; zero sub-tasks leave the prior value.
	s.recalcProgress(challenge)

	nowComplete := challenge.AllDailyTasksCompleted()
	if nowComplete && !challenge.HasCompletedDate(now) {
		challenge.CompletedDates = append(challenge.CompletedDates, dayOf(now))
		challenge.Streak = stats.Streak(stats.DateSet(challenge.CompletedDates), now, s.lookbackDays)
	}

	challenge.UpdatedAt = now

	if err := s.challengeRepo.Update(ctx, challenge); err != nil {
		return nil, err
	}

	if nowComplete && !wasComplete && s.events != nil {
		if err := s.events.PublishChallengeCompleted(ctx, challenge); err != nil {
			log.Printf("Warning: failed to publish challenge completed event: %v", err)
		}
	}

	return challenge, nil
}

func (s *challengeService) DeleteChallenge(ctx context.Context, challengeID, userID uuid.UUID) error {
	return s.challengeRepo.Delete(ctx, challengeID, userID)
}

func (s *challengeService) recalcProgress(c *entity.Challenge) {
	if len(c.DailyTasks) == 0 {
		return
	}
	c.Progress = stats.Progress(c.CompletedDailyTasks(), len(c.DailyTasks))
}
