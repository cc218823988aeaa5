package model

// Default field geometry. These must match the values clients render
// against, so changing them is a protocol-compatibility decision.
const (
	DefaultFieldWidth   = 800.0
	DefaultFieldHeight  = 600.0
	DefaultFieldMargin  = 100.0
	DefaultPlayerRadius = 15.0
	DefaultBallRadius   = 8.0
	DefaultPlayerSpeed  = 200.0 // pixels per second
	DefaultRestitution  = 0.8   // velocity retained after a wall bounce
)

// Field holds the playable area geometry and movement tuning.
// Values are configuration rather than hardcoded constants, but the
// defaults are the only values existing clients understand.
type Field struct {
	Width        float64
	Height       float64
	Margin       float64
	PlayerRadius float64
	BallRadius   float64
	PlayerSpeed  float64
	Restitution  float64
}

// DefaultField returns the standard 800x600 field
func DefaultField() Field {
	return Field{
		Width:        DefaultFieldWidth,
		Height:       DefaultFieldHeight,
		Margin:       DefaultFieldMargin,
		PlayerRadius: DefaultPlayerRadius,
		BallRadius:   DefaultBallRadius,
		PlayerSpeed:  DefaultPlayerSpeed,
		Restitution:  DefaultRestitution,
	}
}

// SpawnFor returns the spawn position for a team: red on the left
// goal line margin, blue on the right, both at mid-height.
func (f Field) SpawnFor(team Team) (x, y float64) {
	if team == TeamRed {
		return f.Margin, f.Height / 2
	}
	return f.Width - f.Margin, f.Height / 2
}

// Center returns the kickoff point
func (f Field) Center() (x, y float64) {
	return f.Width / 2, f.Height / 2
}

// ClampPlayer constrains a player position to the playable area
func (f Field) ClampPlayer(x, y float64) (float64, float64) {
	return f.clamp(x, f.Width, f.PlayerRadius), f.clamp(y, f.Height, f.PlayerRadius)
}

// ClampBall constrains a ball position to the playable area
func (f Field) ClampBall(x, y float64) (float64, float64) {
	return f.clamp(x, f.Width, f.BallRadius), f.clamp(y, f.Height, f.BallRadius)
}

// clamp constrains a coordinate to [radius, dim-radius]
func (f Field) clamp(v, dim, radius float64) float64 {
	if v < radius {
		return radius
	}
	if v > dim-radius {
		return dim - radius
	}
	return v
}
