package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gourishchouhan/strive/internal/domain/entity"
)

// DailyTaskInput describes one embedded sub-task at creation or replacement
type DailyTaskInput struct {
	Title       string
	Description *string
	Completed   bool
}

// ChallengeCreate carries the fields accepted when starting a challenge
type ChallengeCreate struct {
	Title       string
	Description *string
	Category    string
	StartDate   time.Time
	EndDate     time.Time
	DailyTasks  []DailyTaskInput
}

// ChallengePatch carries a partial update; nil fields are left
// untouched. DailyTaskCompleted toggles one embedded sub-task by index.
type ChallengePatch struct {
	Title       *string
	Description *string
	Category    *string
	StartDate   *time.Time
	EndDate     *time.Time
	IsActive    *bool

	// Replace the whole embedded list
	DailyTasks []DailyTaskInput

	// Toggle a single sub-task
	DailyTaskIndex     *int
	DailyTaskCompleted *bool
}

// ChallengeService manages multi-day challenges and their embedded
// daily sub-tasks.
type ChallengeService interface {
	CreateChallenge(ctx context.Context, userID uuid.UUID, create ChallengeCreate) (*entity.Challenge, error)
	GetChallenge(ctx context.Context, challengeID, userID uuid.UUID) (*entity.Challenge, error)
	ListChallenges(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.Challenge, error)
	UpdateChallenge(ctx context.Context, challengeID, userID uuid.UUID, patch ChallengePatch) (*entity.Challenge, error)
	DeleteChallenge(ctx context.Context, challengeID, userID uuid.UUID) error
}
