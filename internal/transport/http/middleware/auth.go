package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/gourishchouhan/strive/internal/domain/service"
)

type contextKey string

const (
	UserIDKey    contextKey = "userID"
	SessionIDKey contextKey = "sessionID"
)

// AuthMiddleware validates bearer tokens against the auth service
type AuthMiddleware struct {
	authService service.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authService service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Auth validates the JWT from the Authorization header and rejects the
// request before any data access when no valid principal is present.
func (m *AuthMiddleware) Auth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Missing authorization header", http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			http.Error(w, "Invalid authorization header format", http.StatusUnauthorized)
			return
		}

		principal, err := m.authService.ValidateAccessToken(r.Context(), parts[1])
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := withPrincipal(r.Context(), principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func withPrincipal(ctx context.Context, p *service.Principal) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, p.UserID)
	return context.WithValue(ctx, SessionIDKey, p.SessionID)
}

// GetUserID extracts the authenticated user ID from the request context
func GetUserID(r *http.Request) uuid.UUID {
	userID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return userID
}

// GetSessionID extracts the session ID from the request context
func GetSessionID(r *http.Request) uuid.UUID {
	sessionID, ok := r.Context().Value(SessionIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return sessionID
}
