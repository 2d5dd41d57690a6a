// Package rating implements the federation's Elo rating engine.
package rating

import (
	"math"

	"github.com/mcoot/chessfed-go/internal/model"
)

// KFactor is the maximum rating points exchanged per game
const KFactor = 32

// Update holds the post-game ratings for both players
type Update struct {
	White int
	Black int
}

// Service computes rating updates for decided games. It is pure and
// holds no state; the game service invokes it exactly once per game,
// at the moment a terminal result is first recorded.
type Service struct{}

// New creates a new rating Service
func New() *Service {
	return &Service{}
}

// ForResult returns both players' new ratings given their pre-game
// ratings and a terminal outcome. Both updates are computed from the
// pre-game ratings; neither affects the other's calculation.
func (s *Service) ForResult(white, black int, result model.GameResult) (Update, error) {
	whiteScore, blackScore, err := actualScores(result)
	if err != nil {
		return Update{}, err
	}

	return Update{
		White: newRating(white, black, whiteScore),
		Black: newRating(black, white, blackScore),
	}, nil
}

// actualScores maps an outcome to each player's actual score. The two
// scores always sum to 1.0.
func actualScores(result model.GameResult) (white, black float64, err error) {
	switch result {
	case model.ResultWhiteWin:
		return 1.0, 0.0, nil
	case model.ResultBlackWin:
		return 0.0, 1.0, nil
	case model.ResultDraw:
		return 0.5, 0.5, nil
	default:
		return 0, 0, model.ErrInvalidResult
	}
}

// expectedScore is the standard Elo win expectancy for a player
// against the given opponent
func expectedScore(rating, opponent int) float64 {
	return 1.0 / (1.0 + math.Pow(10, float64(opponent-rating)/400.0))
}

// newRating applies the K-factor adjustment, rounding half away from
// zero and clamping at zero
func newRating(rating, opponent int, actual float64) int {
	expected := expectedScore(rating, opponent)
	updated := int(math.Round(float64(rating) + KFactor*(actual-expected)))
	if updated < 0 {
		return 0
	}
	return updated
}
