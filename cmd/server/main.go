package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/studybuddy/internal/auth"
	"github.com/iudanet/studybuddy/internal/config"
	"github.com/iudanet/studybuddy/internal/genai"
	"github.com/iudanet/studybuddy/internal/profile"
	"github.com/iudanet/studybuddy/internal/server/handlers"
	"github.com/iudanet/studybuddy/internal/server/middleware"
	"github.com/iudanet/studybuddy/internal/server/storage/sqlite"
	"github.com/iudanet/studybuddy/internal/session"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}

	// Show version and exit if requested
	if cfg.ShowVersion {
		printVersion()
		return nil
	}

	logger := newLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Открываем хранилище, миграции выполняются при старте
	store, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", slog.Any("error", err))
		}
	}()

	jwtConfig := handlers.JWTConfig{
		Secret:         []byte(cfg.JWTSecret),
		AccessTokenTTL: cfg.AccessTokenTTL,
	}

	// Сервисы
	sessions := session.NewManager()
	authService := auth.NewService(logger, store)
	profileService := profile.NewService(logger, store)
	provider := genai.NewClient(cfg.AIBaseURL, cfg.AIModel, cfg.AIAPIKey)

	// Handlers
	authHandler := handlers.NewAuthHandler(logger, authService, sessions, jwtConfig)
	profileHandler := handlers.NewProfileHandler(logger, profileService, sessions)
	studyHandler := handlers.NewStudyHandler(logger, provider, sessions)
	healthHandler := handlers.NewHealthHandler(logger, Version)

	// Защищенные маршруты требуют валидный JWT
	authn := middleware.AuthMiddleware(logger, jwtConfig)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.Handle("POST /api/v1/auth/logout", authn(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("GET /api/v1/profile", authn(http.HandlerFunc(profileHandler.Get)))
	mux.Handle("PUT /api/v1/profile/learning-style", authn(http.HandlerFunc(profileHandler.SetLearningStyle)))
	mux.Handle("PUT /api/v1/profile/difficulty", authn(http.HandlerFunc(profileHandler.SetDifficulty)))
	mux.Handle("PUT /api/v1/profile/topics", authn(http.HandlerFunc(profileHandler.SetTopics)))
	mux.Handle("POST /api/v1/study/materials", authn(http.HandlerFunc(studyHandler.GenerateMaterials)))
	mux.Handle("POST /api/v1/study/practice-test", authn(http.HandlerFunc(studyHandler.GeneratePracticeTest)))
	mux.Handle("POST /api/v1/study/chat", authn(http.HandlerFunc(studyHandler.Chat)))
	mux.Handle("GET /api/v1/study/history", authn(http.HandlerFunc(studyHandler.History)))

	// Limiter живет на уровне run(), чтобы остановить его cleanup при shutdown
	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow, logger)
	defer limiter.Stop()

	// Общая цепочка middleware: recovery снаружи, затем логирование и rate limit
	var handler http.Handler = mux
	handler = middleware.RateLimitMiddleware(limiter, logger)(handler)
	handler = middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(handler)
	handler = middleware.RequestIDMiddleware(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", slog.String("addr", cfg.ListenAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}

// newLogger создает JSON логгер с заданным уровнем
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func printVersion() {
	fmt.Printf("StudyBuddy Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
