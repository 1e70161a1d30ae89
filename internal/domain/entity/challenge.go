package entity

import (
	"time"

	"github.com/google/uuid"
)

// DailyTask is a sub-task embedded in a challenge. It has no identity
// or lifecycle outside its parent.
type DailyTask struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// SetCompleted flips the completed flag, stamping or clearing the
// completion timestamp on the transition.
func (d *DailyTask) SetCompleted(completed bool, now time.Time) {
	if completed && !d.Completed {
		d.CompletedAt = &now
	}
	if !completed {
		d.CompletedAt = nil
	}
	d.Completed = completed
}

// Challenge is a user-defined, time-boxed goal composed of recurring
// daily sub-tasks.
type Challenge struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`

	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	Category    Category `json:"category"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	DailyTasks []DailyTask `json:"daily_tasks"`

	// Percentage of completed sub-tasks, re-derived before every persist
	// that touches DailyTasks. Left untouched when there are none.
	Progress int `json:"progress"`

	IsActive bool `json:"is_active"`

	// Calendar days on which every sub-task was completed
	CompletedDates []time.Time `json:"completed_dates"`
	Streak         int         `json:"streak"`

	// Revision is compared-and-swapped on every update to reject stale writes
	Revision int64 `json:"revision"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompletedDailyTasks counts the completed sub-tasks
func (c *Challenge) CompletedDailyTasks() int {
	n := 0
	for _, dt := range c.DailyTasks {
		if dt.Completed {
			n++
		}
	}
	return n
}

// AllDailyTasksCompleted reports whether every sub-task is completed.
// A challenge with no sub-tasks is never considered complete.
func (c *Challenge) AllDailyTasksCompleted() bool {
	return len(c.DailyTasks) > 0 && c.CompletedDailyTasks() == len(c.DailyTasks)
}

// HasCompletedDate reports whether day (at day granularity) is already
// recorded in CompletedDates.
func (c *Challenge) HasCompletedDate(day time.Time) bool {
	y, m, d := day.Date()
	for _, cd := range c.CompletedDates {
		cy, cm, cdd := cd.Date()
		if cy == y && cm == m && cdd == d {
			return true
		}
	}
	return false
}
