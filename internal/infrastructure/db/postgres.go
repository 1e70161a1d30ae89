package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gourishchouhan/strive/internal/config"
)

// NewPostgresPool creates a pgx connection pool from configuration
func NewPostgresPool(ctx context.Context, cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name, cfg.SSLMode,
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// InitSchema creates the tables if they do not exist
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			image TEXT,
			provider TEXT NOT NULL,
			provider_id TEXT NOT NULL,
			joined_at TIMESTAMPTZ NOT NULL,
			theme TEXT NOT NULL DEFAULT 'light',
			notifications_enabled BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL,
			UNIQUE (provider, provider_id)
		);

		CREATE TABLE IF NOT EXISTS tasks (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			title TEXT NOT NULL,
			description TEXT,
			time_of_day TEXT NOT NULL,
			priority TEXT NOT NULL,
			category TEXT NOT NULL,
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			completed_at TIMESTAMPTZ,
			scheduled_date DATE NOT NULL,
			challenge_id UUID,
			revision BIGINT NOT NULL DEFAULT 1,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_tasks_user_date ON tasks (user_id, scheduled_date);
		CREATE INDEX IF NOT EXISTS idx_tasks_completed ON tasks (user_id, completed);

		CREATE TABLE IF NOT EXISTS challenges (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			title TEXT NOT NULL,
			description TEXT,
			category TEXT NOT NULL,
			start_date TIMESTAMPTZ NOT NULL,
			end_date TIMESTAMPTZ NOT NULL,
			daily_tasks JSONB NOT NULL DEFAULT '[]',
			progress INT NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			completed_dates DATE[] NOT NULL DEFAULT '{}',
			streak INT NOT NULL DEFAULT 0,
			revision BIGINT NOT NULL DEFAULT 1,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_challenges_user_active ON challenges (user_id, is_active);

		CREATE TABLE IF NOT EXISTS achievement_unlocks (
			user_id UUID NOT NULL REFERENCES users(id),
			achievement_id TEXT NOT NULL,
			unlocked_at TIMESTAMPTZ NOT NULL,
			PRIMARY KEY (user_id, achievement_id)
		);
	`

	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	return nil
}
