package handler

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/gourishchouhan/strive/internal/transport/http/middleware"
)

// Router sets up HTTP routes
type Router struct {
	authHandler        *AuthHandler
	userHandler        *UserHandler
	taskHandler        *TaskHandler
	challengeHandler   *ChallengeHandler
	dashboardHandler   *DashboardHandler
	achievementHandler *AchievementHandler
	authMiddleware     *middleware.AuthMiddleware
	limiter            *middleware.RateLimiter
	mux                *http.ServeMux
}

// NewRouter creates a new router
func NewRouter(
	authHandler *AuthHandler,
	userHandler *UserHandler,
	taskHandler *TaskHandler,
	challengeHandler *ChallengeHandler,
	dashboardHandler *DashboardHandler,
	achievementHandler *AchievementHandler,
	authMiddleware *middleware.AuthMiddleware,
	limiter *middleware.RateLimiter,
) *Router {
	return &Router{
		authHandler:        authHandler,
		userHandler:        userHandler,
		taskHandler:        taskHandler,
		challengeHandler:   challengeHandler,
		dashboardHandler:   dashboardHandler,
		achievementHandler: achievementHandler,
		authMiddleware:     authMiddleware,
		limiter:            limiter,
		mux:                http.NewServeMux(),
	}
}

// Setup configures all routes
func (r *Router) Setup() http.Handler {

	r.mux.HandleFunc("GET /api/v1/auth/login", r.authHandler.Login)
	r.mux.HandleFunc("GET /api/v1/auth/callback", r.authHandler.Callback)
	r.mux.HandleFunc("POST /api/v1/auth/refresh", r.authHandler.Refresh)
	r.mux.HandleFunc("POST /api/v1/auth/logout", r.authMiddleware.Auth(r.authHandler.Logout))

	r.mux.HandleFunc("GET /api/v1/users/profile", r.authMiddleware.Auth(r.userHandler.GetProfile))
	r.mux.HandleFunc("PUT /api/v1/users/preferences", r.authMiddleware.Auth(r.userHandler.UpdatePreferences))

	r.mux.HandleFunc("GET /api/v1/tasks", r.authMiddleware.Auth(r.taskHandler.ListTasks))
	r.mux.HandleFunc("POST /api/v1/tasks", r.authMiddleware.Auth(r.taskHandler.CreateTask))
	r.mux.HandleFunc("PUT /api/v1/tasks/{id}", r.authMiddleware.Auth(r.taskHandler.UpdateTask))
	r.mux.HandleFunc("DELETE /api/v1/tasks/{id}", r.authMiddleware.Auth(r.taskHandler.DeleteTask))

	r.mux.HandleFunc("GET /api/v1/challenges", r.authMiddleware.Auth(r.challengeHandler.ListChallenges))
	r.mux.HandleFunc("POST /api/v1/challenges", r.authMiddleware.Auth(r.challengeHandler.CreateChallenge))
	r.mux.HandleFunc("GET /api/v1/challenges/{id}", r.authMiddleware.Auth(r.challengeHandler.GetChallenge))
	r.mux.HandleFunc("PUT /api/v1/challenges/{id}", r.authMiddleware.Auth(r.challengeHandler.UpdateChallenge))
	r.mux.HandleFunc("DELETE /api/v1/challenges/{id}", r.authMiddleware.Auth(r.challengeHandler.DeleteChallenge))

	r.mux.HandleFunc("GET /api/v1/dashboard", r.authMiddleware.Auth(r.dashboardHandler.GetStats))
	r.mux.HandleFunc("GET /api/v1/achievements", r.authMiddleware.Auth(r.achievementHandler.ListAchievements))

	r.mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	var handler http.Handler = r.mux

	handler = middleware.Logging(handler)

	handler = r.limiter.Wrap(handler)

	return handler
}
