package scoring

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/davidgomes/haxball-clone/internal/dependencies/clock"
	"github.com/davidgomes/haxball-clone/internal/model"
	"github.com/davidgomes/haxball-clone/internal/storage"
)

// Service applies goal events to the match
type Service struct {
	storage storage.Storage
	field   model.Field
	clock   clock.Clock
	guard   *sync.RWMutex
	logger  *slog.Logger
}

// New creates a new scoring service. The guard is the match guard shared
// with the match service: scoring holds the write lock across the score
// increment and ball reset so a concurrent snapshot never observes one
// without the other.
func New(storage storage.Storage, field model.Field, clock clock.Clock, guard *sync.RWMutex, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		field:   field,
		clock:   clock,
		guard:   guard,
		logger:  logger,
	}
}

// ScoreGoal increments the scoring team's score by exactly one and
// resets the ball to the kickoff point with zero velocity. A missing
// game state is materialized with both scores at zero before the
// increment; identity and match time are preserved on an existing one.
func (s *Service) ScoreGoal(ctx context.Context, team model.Team) (*model.GameState, error) {
	if !team.Valid() {
		return nil, model.ErrInvalidTeam
	}

	s.guard.Lock()
	defer s.guard.Unlock()

	now := s.clock.Now()

	state, err := s.storage.GetGameState(ctx)
	if err != nil {
		if !errors.Is(err, model.ErrGameStateNotFound) {
			return nil, err
		}
		state = &model.GameState{IsActive: true, CreatedAt: now}
	}

	if team == model.TeamRed {
		state.RedScore++
	} else {
		state.BlueScore++
	}
	state.UpdatedAt = now

	if err := s.storage.SaveGameState(ctx, state); err != nil {
		return nil, err
	}

	cx, cy := s.field.Center()
	ball := &model.Ball{X: cx, Y: cy, UpdatedAt: now}
	if err := s.storage.SaveBall(ctx, ball); err != nil {
		return nil, err
	}

	s.logger.Info("goal scored",
		slog.String("team", string(team)),
		slog.Int("red_score", state.RedScore),
		slog.Int("blue_score", state.BlueScore),
	)

	return state, nil
}
