package player

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/mcoot/chessfed-go/internal/dependencies/clock"
	"github.com/mcoot/chessfed-go/internal/model"
	"github.com/mcoot/chessfed-go/internal/storage"
)

// Controller manages the player roster and rating corrections
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// NewController creates a new PlayerController
func NewController(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// CreatePlayer registers a new federation member. The email must not be
// in use by any existing player, compared case-insensitively.
func (c *Controller) CreatePlayer(ctx context.Context, firstName, lastName, email string, rating int) (*model.Player, error) {
	player, err := model.NewPlayer(firstName, lastName, email, rating, c.clock.Now())
	if err != nil {
		return nil, err
	}

	// Storage enforces the uniqueness atomically; this just surfaces
	// the common case before generating an id and hitting the claim
	if _, err := c.storage.GetPlayerByEmail(ctx, player.Email); err == nil {
		return nil, model.ErrEmailTaken
	} else if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	if err := c.storage.CreatePlayer(ctx, player); err != nil {
		return nil, err
	}

	c.logger.Info("player created",
		slog.String("player_id", string(player.ID)),
		slog.Int("rating", player.Rating),
	)

	return player, nil
}

// GetPlayer retrieves a player by ID
func (c *Controller) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return c.storage.GetPlayer(ctx, id)
}

// GetPlayerByEmail retrieves a player by email, case-insensitively
func (c *Controller) GetPlayerByEmail(ctx context.Context, email string) (*model.Player, error) {
	return c.storage.GetPlayerByEmail(ctx, email)
}

// ListPlayers returns all players ordered by last name then first name
func (c *Controller) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	players, err := c.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(players, func(i, j int) bool {
		if players[i].LastName != players[j].LastName {
			return players[i].LastName < players[j].LastName
		}
		return players[i].FirstName < players[j].FirstName
	})
	return players, nil
}

// Leaderboard returns all players ordered by rating, highest first.
// Ties break alphabetically so the ordering is stable.
func (c *Controller) Leaderboard(ctx context.Context) ([]*model.Player, error) {
	players, err := c.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(players, func(i, j int) bool {
		if players[i].Rating != players[j].Rating {
			return players[i].Rating > players[j].Rating
		}
		if players[i].LastName != players[j].LastName {
			return players[i].LastName < players[j].LastName
		}
		return players[i].FirstName < players[j].FirstName
	})
	return players, nil
}

// UpdatePlayer replaces a player's name and email. Changing the email
// to one held by another player fails with ErrEmailTaken.
func (c *Controller) UpdatePlayer(ctx context.Context, id model.PlayerID, firstName, lastName, email string) (*model.Player, error) {
	player, err := c.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	oldEmail := model.NormalizeEmail(player.Email)
	if err := player.UpdateIdentity(firstName, lastName, email, c.clock.Now()); err != nil {
		return nil, err
	}

	if model.NormalizeEmail(player.Email) != oldEmail {
		existing, err := c.storage.GetPlayerByEmail(ctx, player.Email)
		if err == nil && existing.ID != id {
			return nil, model.ErrEmailTaken
		}
		if err != nil && !errors.Is(err, model.ErrPlayerNotFound) {
			return nil, err
		}
	}

	if err := c.storage.UpdatePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// CorrectRating sets a player's rating directly, outside the normal
// game flow. Used for administrative corrections and imports.
func (c *Controller) CorrectRating(ctx context.Context, id model.PlayerID, rating int) (*model.Player, error) {
	player, err := c.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := player.Rating
	if err := player.SetRating(rating, c.clock.Now()); err != nil {
		return nil, err
	}

	if err := c.storage.UpdatePlayer(ctx, player); err != nil {
		return nil, err
	}

	c.logger.Info("rating corrected",
		slog.String("player_id", string(id)),
		slog.Int("previous", previous),
		slog.Int("rating", rating),
	)

	return player, nil
}

// DeletePlayer removes a player from the roster
func (c *Controller) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	return c.storage.DeletePlayer(ctx, id)
}

// SearchPlayers returns players whose name or email contains the query,
// case-insensitively, in roster order
func (c *Controller) SearchPlayers(ctx context.Context, query string) ([]*model.Player, error) {
	players, err := c.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return players, nil
	}

	matched := make([]*model.Player, 0, len(players))
	for _, p := range players {
		if strings.Contains(strings.ToLower(p.FullName()), query) ||
			strings.Contains(strings.ToLower(p.Email), query) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreatePlayer(ctx context.Context, firstName, lastName, email string, rating int) (*model.Player, error)
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	GetPlayerByEmail(ctx context.Context, email string) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	Leaderboard(ctx context.Context) ([]*model.Player, error)
	UpdatePlayer(ctx context.Context, id model.PlayerID, firstName, lastName, email string) (*model.Player, error)
	CorrectRating(ctx context.Context, id model.PlayerID, rating int) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error
	SearchPlayers(ctx context.Context, query string) ([]*model.Player, error)
}

var _ ControllerInterface = (*Controller)(nil)
