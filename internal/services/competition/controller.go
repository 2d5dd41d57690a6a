package competition

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/mcoot/chessfed-go/internal/dependencies/clock"
	"github.com/mcoot/chessfed-go/internal/model"
	"github.com/mcoot/chessfed-go/internal/storage"
)

// Controller manages competitions and player registrations
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// NewController creates a new CompetitionController
func NewController(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// CreateCompetition creates a new competition
func (c *Controller) CreateCompetition(ctx context.Context, name, location string, startDate time.Time) (*model.Competition, error) {
	comp, err := model.NewCompetition(name, location, startDate, c.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := c.storage.SaveCompetition(ctx, comp); err != nil {
		return nil, err
	}

	c.logger.Info("competition created",
		slog.String("competition_id", string(comp.ID)),
		slog.String("name", comp.Name),
	)

	return comp, nil
}

// GetCompetition retrieves a competition by ID
func (c *Controller) GetCompetition(ctx context.Context, id model.CompetitionID) (*model.Competition, error) {
	return c.storage.GetCompetition(ctx, id)
}

// ListCompetitions returns all competitions ordered by start date, then
// name for competitions starting the same day
func (c *Controller) ListCompetitions(ctx context.Context) ([]*model.Competition, error) {
	comps, err := c.storage.ListCompetitions(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(comps, func(i, j int) bool {
		if !comps[i].StartDate.Equal(comps[j].StartDate) {
			return comps[i].StartDate.Before(comps[j].StartDate)
		}
		return comps[i].Name < comps[j].Name
	})
	return comps, nil
}

// UpdateCompetition renames a competition and moves its location
func (c *Controller) UpdateCompetition(ctx context.Context, id model.CompetitionID, name, location string) (*model.Competition, error) {
	comp, err := c.storage.GetCompetition(ctx, id)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	if err := comp.Rename(name, now); err != nil {
		return nil, err
	}
	if err := comp.ChangeLocation(location, now); err != nil {
		return nil, err
	}

	if err := c.storage.SaveCompetition(ctx, comp); err != nil {
		return nil, err
	}
	return comp, nil
}

// DeleteCompetition removes a competition and its registrations
func (c *Controller) DeleteCompetition(ctx context.Context, id model.CompetitionID) error {
	return c.storage.DeleteCompetition(ctx, id)
}

// RegisterPlayer registers an existing player for a competition.
// Registering the same player twice fails with ErrAlreadyRegistered.
func (c *Controller) RegisterPlayer(ctx context.Context, compID model.CompetitionID, playerID model.PlayerID) error {
	comp, err := c.storage.GetCompetition(ctx, compID)
	if err != nil {
		return err
	}

	// The player must exist before they can enter a competition
	if _, err := c.storage.GetPlayer(ctx, playerID); err != nil {
		return err
	}

	if err := comp.Register(playerID, c.clock.Now()); err != nil {
		return err
	}

	if err := c.storage.SaveCompetition(ctx, comp); err != nil {
		return err
	}

	c.logger.Info("player registered",
		slog.String("competition_id", string(compID)),
		slog.String("player_id", string(playerID)),
	)

	return nil
}

// UnregisterPlayer removes a player's registration. Unregistering a
// player who was never registered is a no-op.
func (c *Controller) UnregisterPlayer(ctx context.Context, compID model.CompetitionID, playerID model.PlayerID) error {
	comp, err := c.storage.GetCompetition(ctx, compID)
	if err != nil {
		return err
	}

	comp.Unregister(playerID, c.clock.Now())
	return c.storage.SaveCompetition(ctx, comp)
}

// IsRegistered reports whether a player is registered for a competition
func (c *Controller) IsRegistered(ctx context.Context, compID model.CompetitionID, playerID model.PlayerID) (bool, error) {
	comp, err := c.storage.GetCompetition(ctx, compID)
	if err != nil {
		return false, err
	}
	return comp.IsRegistered(playerID), nil
}

// RegisteredPlayers resolves the full player records for a
// competition's registrations, ordered by last name then first name.
// Registrations whose player has since been deleted are skipped.
func (c *Controller) RegisteredPlayers(ctx context.Context, compID model.CompetitionID) ([]*model.Player, error) {
	comp, err := c.storage.GetCompetition(ctx, compID)
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(comp.Registrations))
	for _, reg := range comp.Registrations {
		player, err := c.storage.GetPlayer(ctx, reg.PlayerID)
		if err != nil {
			if errors.Is(err, model.ErrPlayerNotFound) {
				continue
			}
			return nil, err
		}
		players = append(players, player)
	}

	sort.Slice(players, func(i, j int) bool {
		if players[i].LastName != players[j].LastName {
			return players[i].LastName < players[j].LastName
		}
		return players[i].FirstName < players[j].FirstName
	})
	return players, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateCompetition(ctx context.Context, name, location string, startDate time.Time) (*model.Competition, error)
	GetCompetition(ctx context.Context, id model.CompetitionID) (*model.Competition, error)
	ListCompetitions(ctx context.Context) ([]*model.Competition, error)
	UpdateCompetition(ctx context.Context, id model.CompetitionID, name, location string) (*model.Competition, error)
	DeleteCompetition(ctx context.Context, id model.CompetitionID) error
	RegisterPlayer(ctx context.Context, compID model.CompetitionID, playerID model.PlayerID) error
	UnregisterPlayer(ctx context.Context, compID model.CompetitionID, playerID model.PlayerID) error
	IsRegistered(ctx context.Context, compID model.CompetitionID, playerID model.PlayerID) (bool, error)
	RegisteredPlayers(ctx context.Context, compID model.CompetitionID) ([]*model.Player, error)
}

var _ ControllerInterface = (*Controller)(nil)
