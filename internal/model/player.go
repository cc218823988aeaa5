package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player name length limits, enforced on join
const (
	MinPlayerNameLength = 1
	MaxPlayerNameLength = 20
)

// Player represents a participant on the field
type Player struct {
	ID        PlayerID  `json:"id"`
	Name      string    `json:"name"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	VelocityX float64   `json:"velocity_x"`
	VelocityY float64   `json:"velocity_y"`
	Team      Team      `json:"team"`
	IsOnline  bool      `json:"is_online"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
