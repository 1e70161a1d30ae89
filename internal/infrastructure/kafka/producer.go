package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/gourishchouhan/strive/internal/config"
	"github.com/gourishchouhan/strive/internal/domain/entity"
)

const (
	EventTypeUserRegistered      = "user_registered"
	EventTypeChallengeCompleted  = "challenge_completed"
	EventTypeAchievementUnlocked = "achievement_unlocked"
)

// envelope wraps every published event
type envelope struct {
	EventID   string      `json:"event_id"`
	EventType string      `json:"event_type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Producer handles publishing events to Kafka
type Producer struct {
	writer *kafka.Writer
}

// NewProducer creates a new Kafka producer
func NewProducer(cfg *config.KafkaConfig) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		BatchSize:    10,
		BatchTimeout: 10 * time.Millisecond,
		Async:        true,
	}

	return &Producer{writer: writer}
}

func (p *Producer) publish(ctx context.Context, key, eventType string, payload interface{}) error {
	data, err := json.Marshal(envelope{
		EventID:   uuid.New().String(),
		EventType: eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: data,
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}

	return nil
}

// PublishUserRegistered publishes a first-sign-in event
func (p *Producer) PublishUserRegistered(ctx context.Context, user *entity.User) error {
	return p.publish(ctx, user.ID.String(), EventTypeUserRegistered, map[string]interface{}{
		"user_id":   user.ID.String(),
		"email":     user.Email,
		"name":      user.Name,
		"provider":  user.Provider,
		"joined_at": user.JoinedAt,
	})
}

// PublishChallengeCompleted publishes a challenge reaching full progress
func (p *Producer) PublishChallengeCompleted(ctx context.Context, challenge *entity.Challenge) error {
	return p.publish(ctx, challenge.UserID.String(), EventTypeChallengeCompleted, map[string]interface{}{
		"challenge_id": challenge.ID.String(),
		"user_id":      challenge.UserID.String(),
		"title":        challenge.Title,
		"category":     challenge.Category,
		"streak":       challenge.Streak,
	})
}

// PublishAchievementUnlocked publishes a first-time unlock
func (p *Producer) PublishAchievementUnlocked(ctx context.Context, unlock *entity.AchievementUnlock) error {
	return p.publish(ctx, unlock.UserID.String(), EventTypeAchievementUnlocked, map[string]interface{}{
		"user_id":        unlock.UserID.String(),
		"achievement_id": unlock.AchievementID,
		"unlocked_at":    unlock.UnlockedAt,
	})
}

// Close flushes and closes the underlying writer
func (p *Producer) Close() error {
	return p.writer.Close()
}
