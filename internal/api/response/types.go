package response

import (
	"time"

	"github.com/davidgomes/haxball-clone/internal/model"
)

// Player represents a player in API responses
type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	VelocityX float64   `json:"velocity_x"`
	VelocityY float64   `json:"velocity_y"`
	Team      string    `json:"team"`
	IsOnline  bool      `json:"is_online"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:        string(p.ID),
		Name:      p.Name,
		X:         p.X,
		Y:         p.Y,
		VelocityX: p.VelocityX,
		VelocityY: p.VelocityY,
		Team:      string(p.Team),
		IsOnline:  p.IsOnline,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// PlayersFromModel converts a slice of players
func PlayersFromModel(players []*model.Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return out
}

// Ball represents the ball in API responses
type Ball struct {
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	VelocityX float64   `json:"velocity_x"`
	VelocityY float64   `json:"velocity_y"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BallFromModel converts a model.Ball
func BallFromModel(b *model.Ball) Ball {
	return Ball{
		X:         b.X,
		Y:         b.Y,
		VelocityX: b.VelocityX,
		VelocityY: b.VelocityY,
		UpdatedAt: b.UpdatedAt,
	}
}

// GameState represents the match record in API responses
type GameState struct {
	RedScore  int       `json:"red_score"`
	BlueScore int       `json:"blue_score"`
	MatchTime int       `json:"match_time"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GameStateFromModel converts a model.GameState
func GameStateFromModel(g *model.GameState) GameState {
	return GameState{
		RedScore:  g.RedScore,
		BlueScore: g.BlueScore,
		MatchTime: g.MatchTime,
		IsActive:  g.IsActive,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// Snapshot is the composed match view pushed to clients
type Snapshot struct {
	Players   []Player  `json:"players"`
	Ball      Ball      `json:"ball"`
	GameState GameState `json:"game_state"`
}

// SnapshotFromModel converts a model.Snapshot
func SnapshotFromModel(s *model.Snapshot) Snapshot {
	return Snapshot{
		Players:   PlayersFromModel(s.Players),
		Ball:      BallFromModel(s.Ball),
		GameState: GameStateFromModel(s.GameState),
	}
}

// LeaveResponse reports whether a leave call found a player to retire
type LeaveResponse struct {
	Success bool `json:"success"`
}

// InitializeResponse is returned from match initialization
type InitializeResponse struct {
	GameState GameState `json:"game_state"`
	Ball      Ball      `json:"ball"`
}

// HealthResponse is returned from the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
}
