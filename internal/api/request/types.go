package request

// JoinRequest is the request body for joining the match
type JoinRequest struct {
	Name string `json:"name"`
	Team string `json:"team"`
}

// UpdatePositionRequest is the request body for a position update
type UpdatePositionRequest struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	VelocityX float64 `json:"velocity_x"`
	VelocityY float64 `json:"velocity_y"`
}

// MoveRequest is the request body for a normalized-direction move
type MoveRequest struct {
	DirectionX float64 `json:"direction_x"`
	DirectionY float64 `json:"direction_y"`
	Dt         float64 `json:"dt"` // seconds since the client's last move
}

// UpdateBallRequest is the request body for a ball update
type UpdateBallRequest struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	VelocityX float64 `json:"velocity_x"`
	VelocityY float64 `json:"velocity_y"`
}

// ScoreGoalRequest is the request body for recording a goal
type ScoreGoalRequest struct {
	Team string `json:"team"`
}
