package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gourishchouhan/strive/internal/domain/entity"
	"github.com/gourishchouhan/strive/internal/domain/repository"
)

const userColumns = `
	id, email, name, image, provider, provider_id, joined_at,
	theme, notifications_enabled, created_at, updated_at
`

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) scanUser(row pgx.Row) (*entity.User, error) {
	user := &entity.User{}
	err := row.Scan(
		&user.ID, &user.Email, &user.Name, &user.Image,
		&user.Provider, &user.ProviderID, &user.JoinedAt,
		&user.Theme, &user.NotificationsEnabled,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := r.scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// UpsertByProvider creates the user on first sign-in or refreshes
// name/image when the provider reports a change. Account creation and
// identity verification belong to the provider; this only mirrors the
// reported profile.
func (r *userRepository) UpsertByProvider(ctx context.Context, profile entity.ProviderProfile) (*entity.User, bool, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE provider = $1 AND provider_id = $2`

	existing, err := r.scanUser(r.pool.QueryRow(ctx, query, profile.Provider, profile.ProviderID))
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to look up user: %w", err)
	}

	now := time.Now().UTC()

	if errors.Is(err, pgx.ErrNoRows) {
		user := &entity.User{
			ID:                   uuid.New(),
			Email:                profile.Email,
			Name:                 profile.Name,
			Image:                profile.Image,
			Provider:             profile.Provider,
			ProviderID:           profile.ProviderID,
			JoinedAt:             now,
			Theme:                "light",
			NotificationsEnabled: true,
			CreatedAt:            now,
			UpdatedAt:            now,
		}

		insert := `
			INSERT INTO users (` + userColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`
		_, err := r.pool.Exec(ctx, insert,
			user.ID, user.Email, user.Name, user.Image,
			user.Provider, user.ProviderID, user.JoinedAt,
			user.Theme, user.NotificationsEnabled,
			user.CreatedAt, user.UpdatedAt,
		)
		if err != nil {
			return nil, false, fmt.Errorf("failed to create user: %w", err)
		}

		return user, true, nil
	}

	changed := existing.Name != profile.Name ||
		!equalImage(existing.Image, profile.Image)

	if changed {
		existing.Name = profile.Name
		existing.Image = profile.Image
		existing.UpdatedAt = now

		_, err := r.pool.Exec(ctx,
			`UPDATE users SET name = $1, image = $2, updated_at = $3 WHERE id = $4`,
			existing.Name, existing.Image, existing.UpdatedAt, existing.ID,
		)
		if err != nil {
			return nil, false, fmt.Errorf("failed to refresh user profile: %w", err)
		}
	}

	return existing, false, nil
}

func (r *userRepository) UpdatePreferences(ctx context.Context, id uuid.UUID, theme string, notificationsEnabled bool) (*entity.User, error) {
	query := `
		UPDATE users SET theme = $1, notifications_enabled = $2, updated_at = $3
		WHERE id = $4
		RETURNING ` + userColumns

	user, err := r.scanUser(r.pool.QueryRow(ctx, query, theme, notificationsEnabled, time.Now().UTC(), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update preferences: %w", err)
	}

	return user, nil
}

func equalImage(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
