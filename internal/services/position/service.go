package position

import (
	"context"
	"errors"
	"log/slog"

	"github.com/davidgomes/haxball-clone/internal/dependencies/clock"
	"github.com/davidgomes/haxball-clone/internal/model"
	"github.com/davidgomes/haxball-clone/internal/storage"
)

// Service applies position and velocity updates to players and the ball
type Service struct {
	storage storage.Storage
	field   model.Field
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new position service
func New(storage storage.Storage, field model.Field, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		field:   field,
		clock:   clock,
		logger:  logger,
	}
}

// UpdatePlayerPosition stores a client-submitted position and velocity.
// The position is clamped to the playable area; velocity is stored as
// submitted. Name, team, online flag and join time are preserved.
func (s *Service) UpdatePlayerPosition(ctx context.Context, id model.PlayerID, x, y, vx, vy float64) (*model.Player, error) {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	player.X, player.Y = s.field.ClampPlayer(x, y)
	player.VelocityX = vx
	player.VelocityY = vy
	player.UpdatedAt = s.clock.Now()

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	return player, nil
}

// MovePlayer advances a player from a normalized direction input.
// Direction components must be within [-1, 1]; the resulting velocity is
// direction scaled by the field's player speed, integrated over dt.
func (s *Service) MovePlayer(ctx context.Context, id model.PlayerID, dirX, dirY, dt float64) (*model.Player, error) {
	if dirX < -1 || dirX > 1 || dirY < -1 || dirY > 1 {
		return nil, model.ErrInvalidDirection
	}
	if dt < 0 {
		dt = 0
	}

	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	vx := dirX * s.field.PlayerSpeed
	vy := dirY * s.field.PlayerSpeed

	player.X, player.Y = s.field.ClampPlayer(player.X+vx*dt, player.Y+vy*dt)
	player.VelocityX = vx
	player.VelocityY = vy
	player.UpdatedAt = s.clock.Now()

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	return player, nil
}

// UpdateBall overwrites the singleton ball, creating it if needed.
// Numeric input is never rejected; wall behavior is handled by StepBall,
// not here.
func (s *Service) UpdateBall(ctx context.Context, x, y, vx, vy float64) (*model.Ball, error) {
	ball, err := s.storage.GetBall(ctx)
	if err != nil {
		if !errors.Is(err, model.ErrBallNotFound) {
			return nil, err
		}
		ball = &model.Ball{}
	}

	ball.X = x
	ball.Y = y
	ball.VelocityX = vx
	ball.VelocityY = vy
	ball.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveBall(ctx, ball); err != nil {
		return nil, err
	}

	return ball, nil
}

// StepBall advances the ball by its velocity over dt seconds, bouncing
// off the field walls. On contact the offending velocity component is
// reflected and scaled by the field's restitution coefficient, and the
// position is clamped back inside the playable area.
func (s *Service) StepBall(ctx context.Context, dt float64) (*model.Ball, error) {
	if dt < 0 {
		dt = 0
	}

	ball, err := s.storage.GetBall(ctx)
	if err != nil {
		if !errors.Is(err, model.ErrBallNotFound) {
			return nil, err
		}
		cx, cy := s.field.Center()
		ball = &model.Ball{X: cx, Y: cy}
	}

	x := ball.X + ball.VelocityX*dt
	y := ball.Y + ball.VelocityY*dt

	r := s.field.BallRadius
	if x <= r || x >= s.field.Width-r {
		ball.VelocityX = -ball.VelocityX * s.field.Restitution
	}
	if y <= r || y >= s.field.Height-r {
		ball.VelocityY = -ball.VelocityY * s.field.Restitution
	}

	ball.X, ball.Y = s.field.ClampBall(x, y)
	ball.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveBall(ctx, ball); err != nil {
		return nil, err
	}

	return ball, nil
}
