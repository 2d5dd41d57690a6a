package model

import (
	"fmt"
	"strings"
	"time"
)

// Move is a single half-move in SAN notation. Moves are immutable
// values owned by their game.
type Move struct {
	Ply      int       `json:"ply"`
	Notation string    `json:"notation"`
	PlayedAt time.Time `json:"played_at"`
}

// NewMove validates and constructs a move. Ply 1 is the first
// half-move of the game.
func NewMove(ply int, notation string, playedAt time.Time) (Move, error) {
	if ply < 1 {
		return Move{}, fmt.Errorf("%w: ply must be positive", ErrValidation)
	}

	notation = strings.TrimSpace(notation)
	if notation == "" {
		return Move{}, fmt.Errorf("%w: move notation is required", ErrValidation)
	}

	return Move{
		Ply:      ply,
		Notation: notation,
		PlayedAt: playedAt.UTC(),
	}, nil
}

// EndsWithCheck reports whether the notation marks a check
func (m Move) EndsWithCheck() bool {
	return strings.Contains(m.Notation, "+")
}

// EndsWithMate reports whether the notation marks a checkmate
func (m Move) EndsWithMate() bool {
	return strings.Contains(m.Notation, "#")
}

func (m Move) String() string {
	return fmt.Sprintf("%d. %s", m.Ply, m.Notation)
}
