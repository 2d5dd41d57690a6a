package model

import "errors"

// Common errors used across the application
var (
	// Lookup errors
	ErrPlayerNotFound      = errors.New("player not found")
	ErrCompetitionNotFound = errors.New("competition not found")
	ErrGameNotFound        = errors.New("game not found")

	// Validation errors (wrapped with the offending field)
	ErrValidation = errors.New("validation failed")

	// Player errors
	ErrEmailTaken = errors.New("email is already in use")

	// Registration errors
	ErrAlreadyRegistered = errors.New("player is already registered")
	ErrNotRegistered     = errors.New("player is not registered in this competition")

	// Game errors
	ErrSamePlayer       = errors.New("a player cannot play against themselves")
	ErrGameFinished     = errors.New("game is already finished")
	ErrResultAlreadySet = errors.New("game result was already recorded")
	ErrInvalidResult    = errors.New("result must be a terminal value")
	ErrMoveOutOfOrder   = errors.New("move ply must be greater than the last recorded ply")
)
