package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/davidgomes/haxball-clone/internal/api/handler"
	"github.com/davidgomes/haxball-clone/internal/metrics"
	"github.com/davidgomes/haxball-clone/internal/middleware"
	"github.com/davidgomes/haxball-clone/internal/services/match"
	"github.com/davidgomes/haxball-clone/internal/services/position"
	"github.com/davidgomes/haxball-clone/internal/services/scoring"
	"github.com/davidgomes/haxball-clone/internal/services/session"
	"github.com/davidgomes/haxball-clone/internal/ws"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	SessionService  *session.Service
	PositionService *position.Service
	ScoringService  *scoring.Service
	MatchService    *match.Service
	Hub             *ws.Hub
	Metrics         *metrics.Metrics
	RateLimiter     *middleware.IPRateLimiter
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.SessionService, cfg.PositionService, cfg.MatchService, cfg.Metrics)
	gameHandler := handler.NewGameHandler(cfg.MatchService, cfg.ScoringService, cfg.PositionService, cfg.Metrics)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	metricsMiddleware := middleware.Metrics(cfg.Metrics)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)
	api.Use(metricsMiddleware)

	// Match routes
	api.HandleFunc("/match/initialize", gameHandler.Initialize).Methods(http.MethodPost)
	api.HandleFunc("/snapshot", gameHandler.Snapshot).Methods(http.MethodGet)
	api.HandleFunc("/goals", gameHandler.ScoreGoal).Methods(http.MethodPost)
	api.HandleFunc("/ball", gameHandler.UpdateBall).Methods(http.MethodPut)

	// Player routes
	api.HandleFunc("/players", playerHandler.Join).Methods(http.MethodPost)
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}/leave", playerHandler.Leave).Methods(http.MethodPost)

	// Movement routes carry the per-IP rate limit: they are the hot path
	// and the only endpoints clients hammer every frame
	movement := api.NewRoute().Subrouter()
	if cfg.RateLimiter != nil {
		movement.Use(cfg.RateLimiter.Middleware)
	}
	movement.HandleFunc("/players/{id}/position", playerHandler.UpdatePosition).Methods(http.MethodPut)
	movement.HandleFunc("/players/{id}/move", playerHandler.Move).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Websocket snapshot stream (outside the JSON middleware chain so the
	// hijacked connection isn't wrapped by the logging response writer)
	if cfg.Hub != nil {
		r.HandleFunc("/api/v1/ws", cfg.Hub.HandleWS).Methods(http.MethodGet)
	}

	// Prometheus scrape endpoint
	r.Handle("/metrics", cfg.Metrics.Handler()).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
