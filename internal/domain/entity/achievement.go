package entity

import (
	"time"

	"github.com/google/uuid"
)

// AchievementUnlock records the first moment a user unlocked an
// achievement. The timestamp is set once and never re-stamped.
type AchievementUnlock struct {
	UserID        uuid.UUID `json:"user_id"`
	AchievementID string    `json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}
