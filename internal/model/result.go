package model

import "fmt"

// GameResult represents the outcome of a chess game
type GameResult string

const (
	ResultNotPlayed GameResult = "not_played" // Game is still open
	ResultWhiteWin  GameResult = "white_win"
	ResultBlackWin  GameResult = "black_win"
	ResultDraw      GameResult = "draw"
)

// Terminal returns true for outcomes that end a game
func (r GameResult) Terminal() bool {
	switch r {
	case ResultWhiteWin, ResultBlackWin, ResultDraw:
		return true
	case ResultNotPlayed:
		return false
	default:
		return false
	}
}

// ParseGameResult converts a wire string to a GameResult
func ParseGameResult(s string) (GameResult, error) {
	switch GameResult(s) {
	case ResultNotPlayed, ResultWhiteWin, ResultBlackWin, ResultDraw:
		return GameResult(s), nil
	default:
		return "", fmt.Errorf("%w: unknown result %q", ErrInvalidResult, s)
	}
}
