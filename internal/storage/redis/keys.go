package redis

import (
	"fmt"

	"github.com/davidgomes/haxball-clone/internal/model"
)

// Key prefix for all match data
const keyPrefix = "arena"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playerIndexKey returns the Redis key for the SET of all player keys
func playerIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// ballKey returns the Redis key for the singleton Ball
func ballKey() string {
	return fmt.Sprintf("%s:ball", keyPrefix)
}

// gameStateKey returns the Redis key for the singleton GameState
func gameStateKey() string {
	return fmt.Sprintf("%s:game_state", keyPrefix)
}
