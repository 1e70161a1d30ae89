package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/gourishchouhan/strive/internal/config"
	"github.com/gourishchouhan/strive/internal/infrastructure/cron"
	"github.com/gourishchouhan/strive/internal/infrastructure/db"
	"github.com/gourishchouhan/strive/internal/infrastructure/kafka"
	"github.com/gourishchouhan/strive/internal/infrastructure/oauth"
	"github.com/gourishchouhan/strive/internal/infrastructure/postgres"
	"github.com/gourishchouhan/strive/internal/infrastructure/redis"
	"github.com/gourishchouhan/strive/internal/infrastructure/smtp"
	"github.com/gourishchouhan/strive/internal/service"
	"github.com/gourishchouhan/strive/internal/transport/http/handler"
	"github.com/gourishchouhan/strive/internal/transport/http/middleware"
	pkgjwt "github.com/gourishchouhan/strive/pkg/jwt"
)

// App represents the application
type App struct {
	cfg        *config.Config
	pool       *pgxpool.Pool
	redis      *goredis.Client
	producer   *kafka.Producer
	checker    *cron.ChallengeChecker
	limiter    *middleware.RateLimiter
	httpServer *http.Server
}

// New creates a new application
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	app := &App{cfg: cfg}

	if err := app.initStorage(); err != nil {
		return nil, err
	}

	if err := app.initHTTPServer(); err != nil {
		return nil, err
	}

	return app, nil
}

// initStorage connects to postgres and redis and applies the schema
func (a *App) initStorage() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, &a.cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	a.pool = pool

	if err := db.InitSchema(ctx, pool); err != nil {
		return fmt.Errorf("failed to init schema: %w", err)
	}

	a.redis = goredis.NewClient(&goredis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err := a.redis.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Printf("Connected to postgres and redis")
	return nil
}

// initHTTPServer wires repositories, services, handlers and middleware
func (a *App) initHTTPServer() error {
	taskRepo := postgres.NewTaskRepository(a.pool)
	challengeRepo := postgres.NewChallengeRepository(a.pool)
	userRepo := postgres.NewUserRepository(a.pool)
	achievementRepo := postgres.NewAchievementRepository(a.pool)

	sessionStore := redis.NewSessionStorage(a.redis)

	var events service.EventPublisher
	if a.cfg.Kafka.Enabled {
		a.producer = kafka.NewProducer(&a.cfg.Kafka)
		events = a.producer
		log.Printf("Kafka producer enabled for brokers %v", a.cfg.Kafka.Brokers)
	}

	var mailer service.Mailer
	if a.cfg.SMTP.Enabled {
		client, err := smtp.NewClient(&a.cfg.SMTP)
		if err != nil {
			return fmt.Errorf("failed to init smtp client: %w", err)
		}
		mailer = client
		log.Printf("SMTP mailer enabled via %s:%d", a.cfg.SMTP.Host, a.cfg.SMTP.Port)
	}

	tokenManager := pkgjwt.NewTokenManager(
		a.cfg.JWT.Secret,
		a.cfg.JWT.AccessTokenTTL,
		a.cfg.JWT.RefreshTokenTTL,
		a.cfg.JWT.Issuer,
	)
	provider := oauth.NewGoogleProvider(&a.cfg.OAuth)

	taskService := service.NewTaskService(taskRepo)
	challengeService := service.NewChallengeService(challengeRepo, events, a.cfg.Dashboard.StreakLookbackDays)
	dashboardService := service.NewDashboardService(taskRepo, challengeRepo, a.cfg.Dashboard.StreakLookbackDays)
	achievementService := service.NewAchievementService(taskRepo, challengeRepo, achievementRepo, dashboardService, events)
	authService := service.NewAuthService(userRepo, sessionStore, provider, tokenManager, mailer, events, a.cfg.Session.TTL)
	userService := service.NewUserService(userRepo)

	if a.cfg.Scheduler.Enabled {
		a.checker = cron.NewChallengeChecker(challengeRepo, a.cfg.Scheduler.CheckInterval)
	}

	authMiddleware := middleware.NewAuthMiddleware(authService)
	a.limiter = middleware.NewRateLimiter(a.cfg.HTTP.RateLimitPerMinute)

	router := handler.NewRouter(
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService),
		handler.NewTaskHandler(taskService),
		handler.NewChallengeHandler(challengeService),
		handler.NewDashboardHandler(dashboardService),
		handler.NewAchievementHandler(achievementService),
		authMiddleware,
		a.limiter,
	)

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.cfg.HTTP.Port),
		Handler:      router.Setup(),
		ReadTimeout:  time.Duration(a.cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(a.cfg.HTTP.WriteTimeout) * time.Second,
	}

	log.Printf("HTTP server configured on port %d", a.cfg.HTTP.Port)
	return nil
}

// Run starts the application
func (a *App) Run() error {
	if a.checker != nil {
		if err := a.checker.Start(); err != nil {
			return fmt.Errorf("failed to start challenge checker: %w", err)
		}
	}

	go func() {
		log.Printf("Starting HTTP server on %s", a.httpServer.Addr)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	if a.checker != nil {
		a.checker.Stop()
	}

	a.limiter.Stop()

	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			log.Printf("Failed to close kafka producer: %v", err)
		}
	}

	if err := a.redis.Close(); err != nil {
		log.Printf("Failed to close redis client: %v", err)
	}
	a.pool.Close()

	log.Println("Server stopped")
	return nil
}
