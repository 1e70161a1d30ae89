package entity

import (
	"time"

	"github.com/google/uuid"
)

// Priority represents the urgency of a task
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var priorityColors = map[Priority]string{
	PriorityLow:    "green",
	PriorityMedium: "yellow",
	PriorityHigh:   "red",
}

// ParsePriority maps a label to a known priority, falling back to "medium"
func ParsePriority(s string) Priority {
	p := Priority(s)
	if _, ok := priorityColors[p]; ok {
		return p
	}
	return PriorityMedium
}

// IsValid returns true if the priority is one of the known labels
func (p Priority) IsValid() bool {
	_, ok := priorityColors[p]
	return ok
}

// Color returns the display color token for the priority
func (p Priority) Color() string {
	if color, ok := priorityColors[p]; ok {
		return color
	}
	return priorityColors[PriorityMedium]
}

// Task represents a standalone, date/time-scheduled to-do item
type Task struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`

	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	TimeOfDay   string  `json:"time"` // "HH:MM", local to the user
	Priority    Priority `json:"priority"`
	Category    Category `json:"category"`

	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// Calendar day the task is scheduled on (midnight UTC)
	Date time.Time `json:"date"`

	// Optional link to an owning challenge
	ChallengeID *uuid.UUID `json:"challenge_id,omitempty"`

	// Revision is compared-and-swapped on every update to reject stale writes
	Revision int64 `json:"revision"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SetCompleted flips the completed flag, stamping or clearing the
// completion timestamp on the transition.
func (t *Task) SetCompleted(completed bool, now time.Time) {
	if completed && !t.Completed {
		t.CompletedAt = &now
	}
	if !completed {
		t.CompletedAt = nil
	}
	t.Completed = completed
}
