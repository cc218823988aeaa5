package factory

import (
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/davidgomes/haxball-clone/internal/dependencies/clock"
	"github.com/davidgomes/haxball-clone/internal/dependencies/ident"
	"github.com/davidgomes/haxball-clone/internal/metrics"
	"github.com/davidgomes/haxball-clone/internal/model"
	"github.com/davidgomes/haxball-clone/internal/services/match"
	"github.com/davidgomes/haxball-clone/internal/services/position"
	"github.com/davidgomes/haxball-clone/internal/services/scoring"
	"github.com/davidgomes/haxball-clone/internal/services/session"
	"github.com/davidgomes/haxball-clone/internal/storage"
	"github.com/davidgomes/haxball-clone/internal/storage/memory"
	redisstorage "github.com/davidgomes/haxball-clone/internal/storage/redis"
	"github.com/davidgomes/haxball-clone/internal/ws"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock
	Ident ident.Generator

	// Field geometry shared by every service
	Field model.Field

	// Services
	SessionService  *session.Service
	PositionService *position.Service
	ScoringService  *scoring.Service
	MatchService    *match.Service

	// Transport
	Hub     *ws.Hub
	Metrics *metrics.Metrics
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Field overrides the default field geometry (optional)
	// If zero value, defaults to model.DefaultField()
	Field model.Field
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	gen := ident.New()

	field := cfg.Field
	if field == (model.Field{}) {
		field = model.DefaultField()
	}

	return newWithDependencies(store, field, clk, gen, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, field model.Field, clk clock.Clock, gen ident.Generator, logger *slog.Logger) *App {
	// The match guard serializes goal scoring and match resets against
	// snapshot reads so clients never observe a half-applied goal
	guard := &sync.RWMutex{}

	m := metrics.New()

	sessionService := session.New(store, field, clk, gen, logger)
	positionService := position.New(store, field, clk, logger)
	scoringService := scoring.New(store, field, clk, guard, logger)
	matchService := match.New(store, field, clk, guard, logger)

	hub := ws.NewHub(logger, m)

	return &App{
		Storage:         store,
		Clock:           clk,
		Ident:           gen,
		Field:           field,
		SessionService:  sessionService,
		PositionService: positionService,
		ScoringService:  scoringService,
		MatchService:    matchService,
		Hub:             hub,
		Metrics:         m,
	}
}
