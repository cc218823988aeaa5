package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/davidgomes/haxball-clone/internal/model"
	"github.com/davidgomes/haxball-clone/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Records are copied on every read and write so no caller ever aliases
// store-owned memory; a concurrent reader sees either the old record or
// the new one, never a partially-written mix.
type Storage struct {
	mu sync.RWMutex

	players   map[model.PlayerID]*model.Player
	ball      *model.Ball
	gameState *model.GameState
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players: make(map[model.PlayerID]*model.Player),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := *player
	s.players[p.ID] = &p
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	p := *player
	return &p, nil
}

func (s *Storage) ListPlayers(ctx context.Context, onlineOnly bool) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	players := make([]*model.Player, 0, len(s.players))
	for _, player := range s.players {
		if onlineOnly && !player.IsOnline {
			continue
		}
		p := *player
		players = append(players, &p)
	}

	sort.Slice(players, func(i, j int) bool {
		if !players[i].CreatedAt.Equal(players[j].CreatedAt) {
			return players[i].CreatedAt.Before(players[j].CreatedAt)
		}
		return players[i].ID < players[j].ID
	})

	return players, nil
}

// Ball operations

func (s *Storage) SaveBall(ctx context.Context, ball *model.Ball) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := *ball
	s.ball = &b
	return nil
}

func (s *Storage) GetBall(ctx context.Context) (*model.Ball, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ball == nil {
		return nil, model.ErrBallNotFound
	}
	b := *s.ball
	return &b, nil
}

// Game state operations

func (s *Storage) SaveGameState(ctx context.Context, state *model.GameState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs := *state
	s.gameState = &gs
	return nil
}

func (s *Storage) GetGameState(ctx context.Context) (*model.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.gameState == nil {
		return nil, model.ErrGameStateNotFound
	}
	gs := *s.gameState
	return &gs, nil
}
