package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/gourishchouhan/strive/internal/domain/entity"
)

// SessionStorage handles session storage in Redis
type SessionStorage struct {
	client *redis.Client
}

// NewSessionStorage creates a new session storage
func NewSessionStorage(client *redis.Client) *SessionStorage {
	return &SessionStorage{client: client}
}

func (s *SessionStorage) sessionKey(sessionID uuid.UUID) string {
	return fmt.Sprintf("session:%s", sessionID.String())
}

func (s *SessionStorage) tokenHashKey(tokenHash string) string {
	return fmt.Sprintf("token:%s", tokenHash)
}

// Set stores a session, keyed by id and by refresh-token hash, with a
// TTL matching the session expiry.
func (s *SessionStorage) Set(ctx context.Context, session *entity.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.client.Set(ctx, s.sessionKey(session.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	if err := s.client.Set(ctx, s.tokenHashKey(session.TokenHash), session.ID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to store token hash mapping: %w", err)
	}

	return nil
}

// Get retrieves a session by ID
func (s *SessionStorage) Get(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error) {
	data, err := s.client.Get(ctx, s.sessionKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("session not found")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session entity.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// GetByTokenHash retrieves a session by refresh-token hash
func (s *SessionStorage) GetByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	sessionIDStr, err := s.client.Get(ctx, s.tokenHashKey(tokenHash)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("session not found for token")
		}
		return nil, fmt.Errorf("failed to get session ID from token: %w", err)
	}

	sessionID, err := uuid.Parse(sessionIDStr)
	if err != nil {
		return nil, fmt.Errorf("invalid session ID: %w", err)
	}

	return s.Get(ctx, sessionID)
}

// Delete removes a session and its token hash mapping
func (s *SessionStorage) Delete(ctx context.Context, sessionID uuid.UUID) error {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	if err := s.client.Del(ctx, s.sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	if err := s.client.Del(ctx, s.tokenHashKey(session.TokenHash)).Err(); err != nil {
		return fmt.Errorf("failed to delete token hash: %w", err)
	}

	return nil
}

// Exists checks if a session exists
func (s *SessionStorage) Exists(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	result, err := s.client.Exists(ctx, s.sessionKey(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session existence: %w", err)
	}

	return result > 0, nil
}
