package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/gourishchouhan/strive/internal/domain/entity"
	"github.com/gourishchouhan/strive/internal/domain/service"
)

type stubAuthService struct {
	principal *service.Principal
}

func (s *stubAuthService) LoginURL(string) string { return "" }

func (s *stubAuthService) HandleCallback(context.Context, string) (*entity.User, *service.TokenPair, error) {
	return nil, nil, errors.New("not implemented")
}

func (s *stubAuthService) Refresh(context.Context, string) (*service.TokenPair, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthService) Logout(context.Context, uuid.UUID) error { return nil }

func (s *stubAuthService) ValidateAccessToken(_ context.Context, token string) (*service.Principal, error) {
	if token != "good-token" || s.principal == nil {
		return nil, errors.New("invalid token")
	}
	return s.principal, nil
}

func TestAuthRejectsBadHeaders(t *testing.T) {
	m := NewAuthMiddleware(&stubAuthService{})
	handler := m.Auth(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached without valid credentials")
	})

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"empty token", "Bearer "},
		{"rejected token", "Bearer bad-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			handler(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestAuthInjectsPrincipal(t *testing.T) {
	principal := &service.Principal{UserID: uuid.New(), SessionID: uuid.New()}
	m := NewAuthMiddleware(&stubAuthService{principal: principal})

	called := false
	handler := m.Auth(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if got := GetUserID(r); got != principal.UserID {
			t.Errorf("GetUserID = %s, want %s", got, principal.UserID)
		}
		if got := GetSessionID(r); got != principal.SessionID {
			t.Errorf("GetSessionID = %s, want %s", got, principal.SessionID)
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if !called {
		t.Fatal("handler not reached with valid credentials")
	}
}

func TestGetUserIDWithoutPrincipal(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetUserID(req); got != uuid.Nil {
		t.Errorf("GetUserID on bare request = %s, want Nil", got)
	}
}
