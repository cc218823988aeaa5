package model

import "time"

// GameState is the singleton match record. Scores only ever move
// upward except on an explicit match reset, which preserves the
// record's identity.
type GameState struct {
	RedScore  int       `json:"red_score"`
	BlueScore int       `json:"blue_score"`
	MatchTime int       `json:"match_time"` // seconds since match start
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
