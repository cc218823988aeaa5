package session

import (
	"context"
	"errors"
	"log/slog"
	"unicode/utf8"

	"github.com/davidgomes/haxball-clone/internal/dependencies/clock"
	"github.com/davidgomes/haxball-clone/internal/dependencies/ident"
	"github.com/davidgomes/haxball-clone/internal/model"
	"github.com/davidgomes/haxball-clone/internal/storage"
)

// Service handles player join and leave lifecycle
type Service struct {
	storage storage.Storage
	field   model.Field
	clock   clock.Clock
	ident   ident.Generator
	logger  *slog.Logger
}

// New creates a new session service
func New(storage storage.Storage, field model.Field, clock clock.Clock, ident ident.Generator, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		field:   field,
		clock:   clock,
		ident:   ident,
		logger:  logger,
	}
}

// Join creates a new player on the requested team at its spawn point.
// The name must be 1-20 characters; validation happens before any write.
func (s *Service) Join(ctx context.Context, name string, team model.Team) (*model.Player, error) {
	nameLen := utf8.RuneCountInString(name)
	if nameLen < model.MinPlayerNameLength || nameLen > model.MaxPlayerNameLength {
		return nil, model.ErrInvalidPlayerName
	}
	if !team.Valid() {
		return nil, model.ErrInvalidTeam
	}

	now := s.clock.Now()
	x, y := s.field.SpawnFor(team)

	player := &model.Player{
		ID:        model.PlayerID(s.ident.NewID()),
		Name:      name,
		X:         x,
		Y:         y,
		VelocityX: 0,
		VelocityY: 0,
		Team:      team,
		IsOnline:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player joined",
		slog.String("player_id", string(player.ID)),
		slog.String("name", player.Name),
		slog.String("team", string(player.Team)),
	)

	return player, nil
}

// Leave marks a player offline. The record is kept so leave can be
// retried safely and history survives. Returns false without error when
// no such player exists; leaving an already-offline player still
// succeeds.
func (s *Service) Leave(ctx context.Context, id model.PlayerID) (bool, error) {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return false, nil
		}
		return false, err
	}

	player.IsOnline = false
	player.UpdatedAt = s.clock.Now()

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return false, err
	}

	s.logger.Info("player left", slog.String("player_id", string(id)))
	return true, nil
}
