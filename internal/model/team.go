package model

// Team identifies one of the two sides of the match
type Team string

// The two teams
const (
	TeamRed  Team = "red"
	TeamBlue Team = "blue"
)

// ParseTeam validates a team string
func ParseTeam(s string) (Team, error) {
	switch Team(s) {
	case TeamRed:
		return TeamRed, nil
	case TeamBlue:
		return TeamBlue, nil
	default:
		return "", ErrInvalidTeam
	}
}

// Valid reports whether the team is one of the two known sides
func (t Team) Valid() bool {
	return t == TeamRed || t == TeamBlue
}
