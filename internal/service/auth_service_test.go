package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gourishchouhan/strive/internal/domain/entity"
	"github.com/gourishchouhan/strive/internal/domain/repository"
	"github.com/gourishchouhan/strive/internal/domain/service"
	pkgjwt "github.com/gourishchouhan/strive/pkg/jwt"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (r *fakeUserRepo) UpsertByProvider(_ context.Context, profile entity.ProviderProfile) (*entity.User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Provider == profile.Provider && u.ProviderID == profile.ProviderID {
			u.Name = profile.Name
			u.Image = profile.Image
			c := *u
			return &c, false, nil
		}
	}
	now := time.Now().UTC()
	u := &entity.User{
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
	r.users[u.ID] = u
	c := *u
	return &c, true, nil
}

func (r *fakeUserRepo) UpdatePreferences(_ context.Context, id uuid.UUID, theme string, notificationsEnabled bool) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u.Theme = theme
	u.NotificationsEnabled = notificationsEnabled
	c := *u
	return &c, nil
}

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entity.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[uuid.UUID]*entity.Session)}
}

func (s *fakeSessionStore) Set(_ context.Context, session *entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *session
	s.sessions[session.ID] = &c
	return nil
}

func (s *fakeSessionStore) Get(_ context.Context, sessionID uuid.UUID) (*entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := *sess
	return &c, nil
}

func (s *fakeSessionStore) GetByTokenHash(_ context.Context, tokenHash string) (*entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sess := range s.sessions {
		if sess.TokenHash == tokenHash {
			c := *sess
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeSessionStore) Delete(_ context.Context, sessionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

func (s *fakeSessionStore) Exists(_ context.Context, sessionID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[sessionID]
	return ok, nil
}

type fakeProvider struct {
	profile entity.ProviderProfile
}

func (p *fakeProvider) AuthCodeURL(state string) string {
	return "https://provider.example/consent?state=" + state
}

func (p *fakeProvider) Exchange(_ context.Context, code string) (*entity.ProviderProfile, error) {
	c := p.profile
	return &c, nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
}

func (m *fakeMailer) SendWelcomeEmail(_ context.Context, to, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to)
	return nil
}

func newAuthFixture() (*fakeUserRepo, *fakeSessionStore, *fakeMailer, *fakeEvents, service.AuthService) {
	userRepo := newFakeUserRepo()
	sessions := newFakeSessionStore()
	mailer := &fakeMailer{}
	events := &fakeEvents{}
	provider := &fakeProvider{profile: entity.ProviderProfile{
		Provider:   "google",
		ProviderID: "prov-123",
		Email:      "jamie@example.com",
		Name:       "Jamie",
	}}
	tokenManager := pkgjwt.NewTokenManager("test-secret", 15*time.Minute, 7*24*time.Hour, "strive")
	svc := NewAuthService(userRepo, sessions, provider, tokenManager, mailer, events, 24*time.Hour)
	return userRepo, sessions, mailer, events, svc
}

func TestHandleCallbackFirstSignIn(t *testing.T) {
	_, sessions, mailer, events, svc := newAuthFixture()
	ctx := context.Background()

	user, pair, err := svc.HandleCallback(ctx, "auth-code")
	if err != nil {
		t.Fatalf("HandleCallback: %v", err)
	}

	if user.Email != "jamie@example.com" {
		t.Errorf("Email = %q", user.Email)
	}
	if user.Theme != "light" || !user.NotificationsEnabled {
		t.Error("new user must get default preferences")
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("callback must issue a full token pair")
	}

	// A session backing the refresh token must exist
	if _, err := sessions.GetByTokenHash(ctx, pkgjwt.HashToken(pair.RefreshToken)); err != nil {
		t.Errorf("session for refresh token not stored: %v", err)
	}

	mailer.mu.Lock()
	sent := len(mailer.sent)
	mailer.mu.Unlock()
	if sent != 1 {
		t.Errorf("sent %d welcome emails, want 1", sent)
	}
	if got := len(events.byKind("user_registered")); got != 1 {
		t.Errorf("published %d user_registered events, want 1", got)
	}
}

func TestHandleCallbackReturningUser(t *testing.T) {
	_, _, mailer, events, svc := newAuthFixture()
	ctx := context.Background()

	first, _, err := svc.HandleCallback(ctx, "auth-code")
	if err != nil {
		t.Fatalf("HandleCallback: %v", err)
	}
	second, _, err := svc.HandleCallback(ctx, "auth-code")
	if err != nil {
		t.Fatalf("HandleCallback: %v", err)
	}

	if first.ID != second.ID {
		t.Error("same provider identity must map to the same user")
	}

	mailer.mu.Lock()
	sent := len(mailer.sent)
	mailer.mu.Unlock()
	if sent != 1 {
		t.Errorf("sent %d welcome emails, want 1 for a returning user", sent)
	}
	if got := len(events.byKind("user_registered")); got != 1 {
		t.Errorf("published %d user_registered events, want 1", got)
	}
}

func TestRefreshRotatesSession(t *testing.T) {
	_, _, _, _, svc := newAuthFixture()
	ctx := context.Background()

	_, pair, err := svc.HandleCallback(ctx, "auth-code")
	if err != nil {
		t.Fatalf("HandleCallback: %v", err)
	}

	rotated, err := svc.Refresh(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if rotated.RefreshToken == pair.RefreshToken {
		t.Error("refresh must rotate the refresh token")
	}

	// The old refresh token stops resolving
	if _, err := svc.Refresh(ctx, pair.RefreshToken); err == nil {
		t.Error("spent refresh token was accepted again")
	}

	// The new one keeps working
	if _, err := svc.Refresh(ctx, rotated.RefreshToken); err != nil {
		t.Errorf("rotated refresh token rejected: %v", err)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	_, _, _, _, svc := newAuthFixture()
	ctx := context.Background()

	_, pair, err := svc.HandleCallback(ctx, "auth-code")
	if err != nil {
		t.Fatalf("HandleCallback: %v", err)
	}

	if _, err := svc.Refresh(ctx, pair.AccessToken); err == nil {
		t.Error("access token accepted as refresh token")
	}
}

func TestLogoutTerminatesSession(t *testing.T) {
	_, _, _, _, svc := newAuthFixture()
	ctx := context.Background()

	_, pair, err := svc.HandleCallback(ctx, "auth-code")
	if err != nil {
		t.Fatalf("HandleCallback: %v", err)
	}

	principal, err := svc.ValidateAccessToken(ctx, pair.AccessToken)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}

	if err := svc.Logout(ctx, principal.SessionID); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	// Token is still cryptographically valid but the session is gone
	if _, err := svc.ValidateAccessToken(ctx, pair.AccessToken); err == nil {
		t.Error("access token accepted after logout")
	}
	if _, err := svc.Refresh(ctx, pair.RefreshToken); err == nil {
		t.Error("refresh token accepted after logout")
	}
}

func TestLoginURLCarriesState(t *testing.T) {
	_, _, _, _, svc := newAuthFixture()
	url := svc.LoginURL("opaque-state")
	if url != "https://provider.example/consent?state=opaque-state" {
		t.Errorf("LoginURL = %q", url)
	}
}
