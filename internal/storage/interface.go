package storage

import (
	"context"

	"github.com/davidgomes/haxball-clone/internal/model"
)

// Storage defines the interface for data persistence.
//
// The ball and game state are singletons: Get returns the one record or a
// not-found error, Save creates or overwrites it in place. Absence of a
// singleton is not fatal at this layer; services decide whether to
// materialize a default.
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	// ListPlayers returns players in a stable order (join time, then id).
	// With onlineOnly set, players whose online flag is false are excluded.
	ListPlayers(ctx context.Context, onlineOnly bool) ([]*model.Player, error)

	// Ball operations (singleton)
	SaveBall(ctx context.Context, ball *model.Ball) error
	GetBall(ctx context.Context) (*model.Ball, error)

	// Game state operations (singleton)
	SaveGameState(ctx context.Context, state *model.GameState) error
	GetGameState(ctx context.Context) (*model.GameState, error)
}
