package model

import "time"

// Ball is the single ball shared by the whole match.
// Exactly one record may exist; the match service and storage
// backends enforce the singleton through get-or-create semantics.
type Ball struct {
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	VelocityX float64   `json:"velocity_x"`
	VelocityY float64   `json:"velocity_y"`
	UpdatedAt time.Time `json:"updated_at"`
}
