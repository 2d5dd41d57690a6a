package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GameID uniquely identifies a game
type GameID string

// Game is a single chess game played inside a competition. A game is
// open until a terminal result is recorded; after that it accepts no
// further mutation.
type Game struct {
	ID            GameID
	CompetitionID CompetitionID
	WhiteID       PlayerID
	BlackID       PlayerID
	Result        GameResult
	Moves         []Move
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewGame constructs an open game between two distinct players
func NewGame(competitionID CompetitionID, whiteID, blackID PlayerID, now time.Time) (*Game, error) {
	if competitionID == "" {
		return nil, fmt.Errorf("%w: competition id is required", ErrValidation)
	}
	if whiteID == "" || blackID == "" {
		return nil, fmt.Errorf("%w: both player ids are required", ErrValidation)
	}
	if whiteID == blackID {
		return nil, ErrSamePlayer
	}

	return &Game{
		ID:            GameID(uuid.NewString()),
		CompetitionID: competitionID,
		WhiteID:       whiteID,
		BlackID:       blackID,
		Result:        ResultNotPlayed,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Decided returns true once a terminal result has been recorded
func (g *Game) Decided() bool {
	return g.Result != ResultNotPlayed
}

// AddMove appends a move to an open game. Ply numbers must strictly
// increase across the game's move list.
func (g *Game) AddMove(move Move, now time.Time) error {
	if move == (Move{}) {
		return fmt.Errorf("%w: move is required", ErrValidation)
	}
	if g.Decided() {
		return ErrGameFinished
	}
	if len(g.Moves) > 0 && move.Ply <= g.Moves[len(g.Moves)-1].Ply {
		return ErrMoveOutOfOrder
	}

	g.Moves = append(g.Moves, move)
	g.UpdatedAt = now
	return nil
}

// LastPly returns the ply of the most recent move, or 0 for none
func (g *Game) LastPly() int {
	if len(g.Moves) == 0 {
		return 0
	}
	return g.Moves[len(g.Moves)-1].Ply
}

// SetResult records the game's terminal result. The transition happens
// exactly once; a decided game rejects any further result.
func (g *Game) SetResult(result GameResult, now time.Time) error {
	if !result.Terminal() {
		return ErrInvalidResult
	}
	if g.Decided() {
		return ErrResultAlreadySet
	}

	g.Result = result
	g.UpdatedAt = now
	return nil
}

// Hydrate replaces the move list and result wholesale when loading
// from storage. The incoming moves are trusted to be ply-ordered.
// The redis backend takes the equivalent trusted path by unmarshalling
// the persisted JSON directly into the struct.
func (g *Game) Hydrate(moves []Move, result GameResult) {
	g.Moves = moves
	g.Result = result
}

// Clone returns a deep copy, so callers never share a loaded instance
func (g *Game) Clone() *Game {
	cp := *g
	if g.Moves != nil {
		cp.Moves = make([]Move, len(g.Moves))
		copy(cp.Moves, g.Moves)
	}
	return &cp
}
