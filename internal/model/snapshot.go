package model

// Snapshot is a composed point-in-time view of the match: every online
// player, the ball, and the game state. It carries no identity of its
// own and is recomputed on every query.
type Snapshot struct {
	Players   []*Player  `json:"players"`
	Ball      *Ball      `json:"ball"`
	GameState *GameState `json:"game_state"`
}
