package match

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/davidgomes/haxball-clone/internal/dependencies/clock"
	"github.com/davidgomes/haxball-clone/internal/model"
	"github.com/davidgomes/haxball-clone/internal/storage"
)

// Service owns match initialization and snapshot assembly
type Service struct {
	storage storage.Storage
	field   model.Field
	clock   clock.Clock
	guard   *sync.RWMutex
	logger  *slog.Logger
}

// New creates a new match service. The guard is shared with the scoring
// service; Snapshot holds its read lock so composite reads never
// interleave with a goal's two writes.
func New(storage storage.Storage, field model.Field, clock clock.Clock, guard *sync.RWMutex, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		field:   field,
		clock:   clock,
		guard:   guard,
		logger:  logger,
	}
}

// Initialize sets up or resets the match. Safe to call on every server
// start: an existing game state is reset in place (join history and the
// record's creation time survive), never duplicated, and the ball goes
// back to the kickoff point with zero velocity.
func (s *Service) Initialize(ctx context.Context) (*model.GameState, *model.Ball, error) {
	s.guard.Lock()
	defer s.guard.Unlock()

	now := s.clock.Now()

	state, err := s.storage.GetGameState(ctx)
	if err != nil {
		if !errors.Is(err, model.ErrGameStateNotFound) {
			return nil, nil, err
		}
		state = &model.GameState{CreatedAt: now}
	}

	state.RedScore = 0
	state.BlueScore = 0
	state.MatchTime = 0
	state.IsActive = true
	state.UpdatedAt = now

	if err := s.storage.SaveGameState(ctx, state); err != nil {
		return nil, nil, err
	}

	cx, cy := s.field.Center()
	ball := &model.Ball{X: cx, Y: cy, UpdatedAt: now}
	if err := s.storage.SaveBall(ctx, ball); err != nil {
		return nil, nil, err
	}

	s.logger.Info("match initialized")
	return state, ball, nil
}

// Snapshot composes a consistent read of all online players, the ball
// and the game state. Missing singletons are materialized as defaults in
// the returned view only; nothing is written back. Never mutates state.
func (s *Service) Snapshot(ctx context.Context) (*model.Snapshot, error) {
	s.guard.RLock()
	defer s.guard.RUnlock()

	players, err := s.storage.ListPlayers(ctx, true)
	if err != nil {
		return nil, err
	}

	ball, err := s.storage.GetBall(ctx)
	if err != nil {
		if !errors.Is(err, model.ErrBallNotFound) {
			return nil, err
		}
		cx, cy := s.field.Center()
		ball = &model.Ball{X: cx, Y: cy, UpdatedAt: s.clock.Now()}
	}

	state, err := s.storage.GetGameState(ctx)
	if err != nil {
		if !errors.Is(err, model.ErrGameStateNotFound) {
			return nil, err
		}
		now := s.clock.Now()
		state = &model.GameState{IsActive: true, CreatedAt: now, UpdatedAt: now}
	}

	return &model.Snapshot{
		Players:   players,
		Ball:      ball,
		GameState: state,
	}, nil
}

// ListOnlinePlayers returns every player currently marked online
func (s *Service) ListOnlinePlayers(ctx context.Context) ([]*model.Player, error) {
	return s.storage.ListPlayers(ctx, true)
}
