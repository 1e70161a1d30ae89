package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/gourishchouhan/strive/internal/domain/entity"
	"github.com/gourishchouhan/strive/internal/domain/repository"
	"github.com/gourishchouhan/strive/pkg/validation"
)

func TestUpdatePreferences(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	user, _, err := repo.UpsertByProvider(ctx, entity.ProviderProfile{
		Provider:   "google",
		ProviderID: "prov-1",
		Email:      "sam@example.com",
		Name:       "Sam",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	updated, err := svc.UpdatePreferences(ctx, user.ID, "dark", false)
	if err != nil {
		t.Fatalf("UpdatePreferences: %v", err)
	}
	if updated.Theme != "dark" || updated.NotificationsEnabled {
		t.Errorf("preferences = (%q, %v), want (dark, false)", updated.Theme, updated.NotificationsEnabled)
	}

	_, err = svc.UpdatePreferences(ctx, user.ID, "solarized", true)
	var fieldErr *validation.Error
	if !errors.As(err, &fieldErr) {
		t.Errorf("unknown theme = %v, want validation error", err)
	}
}

func TestGetProfileUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	if _, err := svc.GetProfile(context.Background(), uuid.New()); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("unknown user = %v, want ErrNotFound", err)
	}
}
