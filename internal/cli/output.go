package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case Ball:
		o.printBall(v)
	case GameState:
		o.printGameState(v)
	case Snapshot:
		o.printSnapshot(v)
	case LeaveResult:
		o.printLeaveResult(v)
	case InitializeResult:
		o.printInitializeResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
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

// Ball response type
type Ball struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	VelocityX float64 `json:"velocity_x"`
	VelocityY float64 `json:"velocity_y"`
}

// GameState response type
type GameState struct {
	RedScore  int  `json:"red_score"`
	BlueScore int  `json:"blue_score"`
	MatchTime int  `json:"match_time"`
	IsActive  bool `json:"is_active"`
}

// Snapshot response type
type Snapshot struct {
	Players   []Player  `json:"players"`
	Ball      Ball      `json:"ball"`
	GameState GameState `json:"game_state"`
}

// LeaveResult response type
type LeaveResult struct {
	Success bool `json:"success"`
}

// InitializeResult response type
type InitializeResult struct {
	GameState GameState `json:"game_state"`
	Ball      Ball      `json:"ball"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Name, p.ID)
	fmt.Printf("Team: %s\n", p.Team)
	fmt.Printf("Position: (%.1f, %.1f)\n", p.X, p.Y)
	fmt.Printf("Velocity: (%.1f, %.1f)\n", p.VelocityX, p.VelocityY)
	if !p.IsOnline {
		fmt.Println("Status: offline")
	}
}

func (o *Output) printPlayers(players []Player) {
	fmt.Printf("Players (%d):\n", len(players))
	for _, p := range players {
		fmt.Printf("  - %s [%s] at (%.1f, %.1f) - %s\n", p.Name, p.Team, p.X, p.Y, p.ID)
	}
}

func (o *Output) printBall(b Ball) {
	fmt.Printf("Ball: (%.1f, %.1f)\n", b.X, b.Y)
	fmt.Printf("Velocity: (%.1f, %.1f)\n", b.VelocityX, b.VelocityY)
}

func (o *Output) printGameState(g GameState) {
	fmt.Printf("Score: red %d - %d blue\n", g.RedScore, g.BlueScore)
	fmt.Printf("Match Time: %d\n", g.MatchTime)
	activeStr := "no"
	if g.IsActive {
		activeStr = "yes"
	}
	fmt.Printf("Active: %s\n", activeStr)
}

func (o *Output) printSnapshot(s Snapshot) {
	o.printGameState(s.GameState)
	o.printBall(s.Ball)
	o.printPlayers(s.Players)
}

func (o *Output) printLeaveResult(l LeaveResult) {
	if l.Success {
		fmt.Println("Player left the match")
	} else {
		fmt.Println("No such player")
	}
}

func (o *Output) printInitializeResult(i InitializeResult) {
	fmt.Println("Match initialized")
	o.printGameState(i.GameState)
	o.printBall(i.Ball)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
