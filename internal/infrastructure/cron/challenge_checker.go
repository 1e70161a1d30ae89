package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/gourishchouhan/strive/internal/domain/repository"
)

// ChallengeChecker periodically deactivates challenges whose end date
// has passed, so active-only views stay honest.
type ChallengeChecker struct {
	challengeRepo repository.ChallengeRepository
	cron          *cron.Cron
	interval      time.Duration
}

// NewChallengeChecker creates a new challenge checker
func NewChallengeChecker(challengeRepo repository.ChallengeRepository, checkInterval time.Duration) *ChallengeChecker {
	return &ChallengeChecker{
		challengeRepo: challengeRepo,
		cron:          cron.New(),
		interval:      checkInterval,
	}
}

// Start starts the challenge checker
func (c *ChallengeChecker) Start() error {
	cronExpr := fmt.Sprintf("@every %s", c.interval.String())

	log.Printf("Starting challenge checker with interval: %s", c.interval)

	_, err := c.cron.AddFunc(cronExpr, func() {
		c.checkExpired()
	})
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	c.cron.Start()
	return nil
}

// Stop stops the challenge checker
func (c *ChallengeChecker) Stop() {
	log.Println("Stopping challenge checker...")
	ctx := c.cron.Stop()
	<-ctx.Done()
	log.Println("Challenge checker stopped")
}

func (c *ChallengeChecker) checkExpired() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := c.challengeRepo.DeactivateExpired(ctx, time.Now().UTC())
	if err != nil {
		log.Printf("Error deactivating expired challenges: %v", err)
		return
	}

	if n > 0 {
		log.Printf("Deactivated %d expired challenges", n)
	}
}
