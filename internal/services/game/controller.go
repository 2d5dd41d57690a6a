package game

import (
	"context"
	"log/slog"
	"sort"

	"github.com/mcoot/chessfed-go/internal/dependencies/clock"
	"github.com/mcoot/chessfed-go/internal/model"
	"github.com/mcoot/chessfed-go/internal/services/rating"
	"github.com/mcoot/chessfed-go/internal/storage"
)

// Controller manages games, their move records, and the rating updates
// that follow from results
type Controller struct {
	storage       storage.Storage
	ratingService *rating.Service
	clock         clock.Clock
	logger        *slog.Logger
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	ratingService *rating.Service,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:       storage,
		ratingService: ratingService,
		clock:         clock,
		logger:        logger,
	}
}

// CreateGame creates an open game between two players in a competition.
// Both players must already be registered for the competition.
func (c *Controller) CreateGame(ctx context.Context, compID model.CompetitionID, whiteID, blackID model.PlayerID) (*model.Game, error) {
	comp, err := c.storage.GetCompetition(ctx, compID)
	if err != nil {
		return nil, err
	}

	if !comp.IsRegistered(whiteID) || !comp.IsRegistered(blackID) {
		return nil, model.ErrNotRegistered
	}

	// Registrations survive player deletion, so the ids must still resolve
	if _, err := c.storage.GetPlayer(ctx, whiteID); err != nil {
		return nil, err
	}
	if _, err := c.storage.GetPlayer(ctx, blackID); err != nil {
		return nil, err
	}

	game, err := model.NewGame(compID, whiteID, blackID, c.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.String("competition_id", string(compID)),
		slog.String("white_id", string(whiteID)),
		slog.String("black_id", string(blackID)),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, id)
}

// ListGamesByCompetition returns a competition's games, oldest first.
// The competition must exist even when it has no games.
func (c *Controller) ListGamesByCompetition(ctx context.Context, compID model.CompetitionID) ([]*model.Game, error) {
	if _, err := c.storage.GetCompetition(ctx, compID); err != nil {
		return nil, err
	}

	games, err := c.storage.GetGamesByCompetition(ctx, compID)
	if err != nil {
		return nil, err
	}

	sort.Slice(games, func(i, j int) bool {
		return games[i].CreatedAt.Before(games[j].CreatedAt)
	})
	return games, nil
}

// AddMove appends a move to an open game. Ply numbers must strictly
// increase; a decided game rejects further moves.
func (c *Controller) AddMove(ctx context.Context, gameID model.GameID, ply int, notation string) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	move, err := model.NewMove(ply, notation, now)
	if err != nil {
		return nil, err
	}

	if err := game.AddMove(move, now); err != nil {
		return nil, err
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// SetResult records a game's terminal result and applies the Elo
// exchange to both players. The result transition happens exactly once;
// storage rejects the completion if a concurrent writer got there
// first, so no rating is ever applied twice for the same game.
func (c *Controller) SetResult(ctx context.Context, gameID model.GameID, result model.GameResult) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.Decided() {
		return nil, model.ErrResultAlreadySet
	}

	white, err := c.storage.GetPlayer(ctx, game.WhiteID)
	if err != nil {
		return nil, err
	}
	black, err := c.storage.GetPlayer(ctx, game.BlackID)
	if err != nil {
		return nil, err
	}

	// Both new ratings come from the pre-game ratings
	update, err := c.ratingService.ForResult(white.Rating, black.Rating, result)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	if err := game.SetResult(result, now); err != nil {
		return nil, err
	}

	whiteBefore := white.Rating
	blackBefore := black.Rating
	if err := white.SetRating(update.White, now); err != nil {
		return nil, err
	}
	if err := black.SetRating(update.Black, now); err != nil {
		return nil, err
	}

	if err := c.storage.CompleteGame(ctx, game, white, black); err != nil {
		return nil, err
	}

	c.logger.Info("game decided",
		slog.String("game_id", string(gameID)),
		slog.String("result", string(result)),
		slog.Int("white_before", whiteBefore),
		slog.Int("white_after", white.Rating),
		slog.Int("black_before", blackBefore),
		slog.Int("black_after", black.Rating),
	)

	return game, nil
}

// DeleteGame removes a game. Ratings already applied are not reverted.
func (c *Controller) DeleteGame(ctx context.Context, id model.GameID) error {
	return c.storage.DeleteGame(ctx, id)
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, compID model.CompetitionID, whiteID, blackID model.PlayerID) (*model.Game, error)
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	ListGamesByCompetition(ctx context.Context, compID model.CompetitionID) ([]*model.Game, error)
	AddMove(ctx context.Context, gameID model.GameID, ply int, notation string) (*model.Game, error)
	SetResult(ctx context.Context, gameID model.GameID, result model.GameResult) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
}

var _ ControllerInterface = (*Controller)(nil)
