package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/davidgomes/haxball-clone/internal/api"
	"github.com/davidgomes/haxball-clone/internal/factory"
	"github.com/davidgomes/haxball-clone/internal/middleware"
	redisstorage "github.com/davidgomes/haxball-clone/internal/storage/redis"
	"github.com/davidgomes/haxball-clone/internal/ws"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Rate limit the movement endpoints
	rateLimiter := middleware.NewIPRateLimiter(middleware.DefaultRateLimitConfig())
	defer rateLimiter.Stop()

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		SessionService:  app.SessionService,
		PositionService: app.PositionService,
		ScoringService:  app.ScoringService,
		MatchService:    app.MatchService,
		Hub:             app.Hub,
		Metrics:         app.Metrics,
		RateLimiter:     rateLimiter,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			logger.Error("invalid PORT", slog.String("value", port))
			os.Exit(1)
		}
		serverConfig.Port = p
	}
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Run the websocket hub and the snapshot broadcaster
	go app.Hub.Run(ctx)

	broadcaster := ws.NewBroadcaster(app.Hub, app.MatchService, broadcastInterval(logger), logger)
	go broadcaster.Run(ctx)

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// broadcastInterval reads the snapshot push interval from the environment
func broadcastInterval(logger *slog.Logger) time.Duration {
	raw := os.Getenv("BROADCAST_INTERVAL_MS")
	if raw == "" {
		return ws.DefaultBroadcastInterval
	}

	ms, err := strconv.Atoi(raw)
	if err != nil || ms <= 0 {
		logger.Warn("invalid BROADCAST_INTERVAL_MS, using default", slog.String("value", raw))
		return ws.DefaultBroadcastInterval
	}

	return time.Duration(ms) * time.Millisecond
}
