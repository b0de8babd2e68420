package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"farmlink/database"
	"farmlink/internal/audit"
	"farmlink/internal/auth"
	"farmlink/internal/cache"
	"farmlink/internal/config"
	"farmlink/internal/handler"
	"farmlink/internal/mail"
	"farmlink/internal/middleware"
	"farmlink/internal/repository"
	"farmlink/internal/service"
	"farmlink/internal/validator"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	// Redis is optional; without it the profile cache is disabled and rate
	// limiting falls back to in-process counters.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = cache.NewRedisClient(cfg.RedisURL, cfg.RedisPassword)
		if err != nil {
			logger.Warn("redis unavailable, continuing without cache", "error", err)
			redisClient = nil
		}
	}

	store := repository.NewStore(db)

	recorder, err := audit.NewRecorder(store.Events(), logger)
	if err != nil {
		log.Fatalf("could not start audit recorder: %v", err)
	}

	cipher, err := auth.NewFieldCipher(cfg.EncryptionKey)
	if err != nil {
		log.Fatalf("could not initialize field cipher: %v", err)
	}

	profiles := cache.NewProfileCache(redisClient, cfg.ProfileCacheTTL, logger)
	mailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom)
	v := validator.New()

	authService := service.NewAuthService(store, cipher, mailer, recorder, cfg)
	profileService := service.NewProfileService(store, profiles, cipher, recorder, v)
	ratingService := service.NewRatingService(store, profiles, recorder, v)
	feedbackService := service.NewFeedbackService(store, recorder, v)
	productService := service.NewProductService(store)

	limiter := middleware.NewRateLimiter(redisClient, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Logger())
	engine.Use(gin.Recovery())

	router := handler.NewRouter(authService, profileService, ratingService, feedbackService, productService, limiter)
	router.SetupRoutes(engine)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: engine,
	}

	go func() {
		logger.Info("starting server", "port", cfg.HTTPPort, "env", cfg.GoEnv)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("could not start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	// Drain pending audit events before closing shared resources.
	if err := recorder.Close(); err != nil {
		logger.Error("could not close audit recorder", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	if redisClient != nil {
		redisClient.Close()
	}

	logger.Info("server exited")
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" || cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
