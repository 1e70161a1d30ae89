package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account created on first successful sign-in with
// an external identity provider.
type User struct {
	ID uuid.UUID `json:"id"`

	Email string  `json:"email"`
	Name  string  `json:"name"`
	Image *string `json:"image,omitempty"`

	// Identity provider name and the id it assigned; the pair is unique
	Provider   string `json:"provider"`
	ProviderID string `json:"provider_id"`

	JoinedAt time.Time `json:"joined_at"`

	Theme                string `json:"theme"`
	NotificationsEnabled bool   `json:"notifications_enabled"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProviderProfile is the identity reported by the external provider
// after a successful sign-in.
type ProviderProfile struct {
	Provider   string
	ProviderID string
	Email      string
	Name       string
	Image      *string
}
