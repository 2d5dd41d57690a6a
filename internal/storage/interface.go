package storage

import (
	"context"

	"github.com/mcoot/chessfed-go/internal/model"
)

// Storage defines the interface for data persistence. Lookups for
// unknown ids fail with the model's NotFound errors. Save operations
// replace the stored entity wholesale, including owned child
// collections (registrations, moves).
type Storage interface {
	// Player operations. CreatePlayer claims the email atomically and
	// fails with model.ErrEmailTaken if another player holds it;
	// UpdatePlayer re-checks when the email changes. Email lookups are
	// case-insensitive.
	CreatePlayer(ctx context.Context, player *model.Player) error
	UpdatePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	GetPlayerByEmail(ctx context.Context, email string) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Competition operations
	SaveCompetition(ctx context.Context, comp *model.Competition) error
	GetCompetition(ctx context.Context, id model.CompetitionID) (*model.Competition, error)
	ListCompetitions(ctx context.Context) ([]*model.Competition, error)
	DeleteCompetition(ctx context.Context, id model.CompetitionID) error

	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	GetGamesByCompetition(ctx context.Context, competitionID model.CompetitionID) ([]*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error

	// CompleteGame persists a decided game and both rating updates as
	// one unit. It fails with model.ErrResultAlreadySet if the stored
	// game is already decided, so two concurrent completions cannot
	// both succeed.
	CompleteGame(ctx context.Context, game *model.Game, white, black *model.Player) error
}
