package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound    = errors.New("player not found")
	ErrInvalidPlayerName = errors.New("player name must be between 1 and 20 characters")
	ErrInvalidTeam       = errors.New("team must be red or blue")
	ErrInvalidDirection  = errors.New("direction components must be between -1 and 1")

	// Singleton entity errors
	ErrBallNotFound      = errors.New("ball not found")
	ErrGameStateNotFound = errors.New("game state not found")
)
