package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gourishchouhan/strive/internal/domain/entity"
	"github.com/gourishchouhan/strive/internal/domain/repository"
)

// In-memory repository fakes. They mirror the postgres behavior that
// matters to the services: ownership scoping, revision CAS and
// first-unlock timestamps.

type fakeTaskRepo struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]*entity.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uuid.UUID]*entity.Task)}
}

func copyTask(t *entity.Task) *entity.Task {
	c := *t
	return &c
}

func (r *fakeTaskRepo) Create(_ context.Context, task *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[task.ID] = copyTask(task)
	return nil
}

func (r *fakeTaskRepo) GetByIDAndUserID(_ context.Context, taskID, userID uuid.UUID) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[taskID]
	if !ok || task.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return copyTask(task), nil
}

func (r *fakeTaskRepo) List(_ context.Context, userID uuid.UUID, filter repository.TaskFilter) ([]*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Task
	for _, task := range r.tasks {
		if task.UserID != userID {
			continue
		}
		if filter.Day != nil && !task.Date.Equal(*filter.Day) {
			continue
		}
		if filter.From != nil && task.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !task.Date.Before(*filter.To) {
			continue
		}
		if filter.CompletedOnly && !task.Completed {
			continue
		}
		out = append(out, copyTask(task))
	}
	return out, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, task *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.tasks[task.ID]
	if !ok || stored.UserID != task.UserID {
		return repository.ErrNotFound
	}
	if stored.Revision != task.Revision {
		return repository.ErrConflict
	}
	task.Revision++
	r.tasks[task.ID] = copyTask(task)
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, taskID, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[taskID]
	if !ok || task.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.tasks, taskID)
	return nil
}

type fakeChallengeRepo struct {
	mu         sync.Mutex
	challenges map[uuid.UUID]*entity.Challenge
}

func newFakeChallengeRepo() *fakeChallengeRepo {
	return &fakeChallengeRepo{challenges: make(map[uuid.UUID]*entity.Challenge)}
}

func copyChallenge(c *entity.Challenge) *entity.Challenge {
	out := *c
	out.DailyTasks = append([]entity.DailyTask(nil), c.DailyTasks...)
	out.CompletedDates = append([]time.Time(nil), c.CompletedDates...)
	return &out
}

func (r *fakeChallengeRepo) Create(_ context.Context, challenge *entity.Challenge) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.challenges[challenge.ID] = copyChallenge(challenge)
	return nil
}

func (r *fakeChallengeRepo) GetByIDAndUserID(_ context.Context, challengeID, userID uuid.UUID) (*entity.Challenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.challenges[challengeID]
	if !ok || c.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return copyChallenge(c), nil
}

func (r *fakeChallengeRepo) List(_ context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.Challenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Challenge
	for _, c := range r.challenges {
		if c.UserID != userID {
			continue
		}
		if activeOnly && !c.IsActive {
			continue
		}
		out = append(out, copyChallenge(c))
	}
	return out, nil
}

func (r *fakeChallengeRepo) CountActive(ctx context.Context, userID uuid.UUID) (int, error) {
	active, err := r.List(ctx, userID, true)
	return len(active), err
}

func (r *fakeChallengeRepo) CountCreatedSince(_ context.Context, userID uuid.UUID, since time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.challenges {
		if c.UserID == userID && c.IsActive && !c.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *fakeChallengeRepo) CountByUser(_ context.Context, userID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.challenges {
		if c.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeChallengeRepo) Update(_ context.Context, challenge *entity.Challenge) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.challenges[challenge.ID]
	if !ok || stored.UserID != challenge.UserID {
		return repository.ErrNotFound
	}
	if stored.Revision != challenge.Revision {
		return repository.ErrConflict
	}
	challenge.Revision++
	r.challenges[challenge.ID] = copyChallenge(challenge)
	return nil
}

func (r *fakeChallengeRepo) Delete(_ context.Context, challengeID, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.challenges[challengeID]
	if !ok || c.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.challenges, challengeID)
	return nil
}

func (r *fakeChallengeRepo) DeactivateExpired(_ context.Context, now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.challenges {
		if c.IsActive && c.EndDate.Before(now) {
			c.IsActive = false
			n++
		}
	}
	return n, nil
}

type fakeAchievementRepo struct {
	mu      sync.Mutex
	unlocks map[uuid.UUID]map[string]*entity.AchievementUnlock
}

func newFakeAchievementRepo() *fakeAchievementRepo {
	return &fakeAchievementRepo{unlocks: make(map[uuid.UUID]map[string]*entity.AchievementUnlock)}
}

func (r *fakeAchievementRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.AchievementUnlock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.AchievementUnlock
	for _, u := range r.unlocks[userID] {
		c := *u
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeAchievementRepo) RecordUnlock(_ context.Context, unlock *entity.AchievementUnlock) (*entity.AchievementUnlock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	byID, ok := r.unlocks[unlock.UserID]
	if !ok {
		byID = make(map[string]*entity.AchievementUnlock)
		r.unlocks[unlock.UserID] = byID
	}
	if stored, ok := byID[unlock.AchievementID]; ok {
		c := *stored
		return &c, nil
	}
	c := *unlock
	byID[unlock.AchievementID] = &c
	out := c
	return &out, nil
}

type publishedEvent struct {
	kind string
	id   string
}

type fakeEvents struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (f *fakeEvents) record(kind, id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, publishedEvent{kind: kind, id: id})
}

func (f *fakeEvents) PublishUserRegistered(_ context.Context, user *entity.User) error {
	f.record("user_registered", user.ID.String())
	return nil
}

func (f *fakeEvents) PublishChallengeCompleted(_ context.Context, challenge *entity.Challenge) error {
	f.record("challenge_completed", challenge.ID.String())
	return nil
}

func (f *fakeEvents) PublishAchievementUnlocked(_ context.Context, unlock *entity.AchievementUnlock) error {
	f.record("achievement_unlocked", unlock.AchievementID)
	return nil
}

func (f *fakeEvents) byKind(kind string) []publishedEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []publishedEvent
	for _, e := range f.events {
		if e.kind == kind {
			out = append(out, e)
		}
	}
	return out
}
