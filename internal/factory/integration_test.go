package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/chessfed-go/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: Complete federation flow from player creation to a rated game
func (s *IntegrationSuite) TestCompleteRatedGameFlow() {
	// Step 1: Create two players at the default rating
	alice, err := s.app.PlayerController.CreatePlayer(s.ctx, "Alice", "Aronian", "alice@test.com", model.DefaultRating)
	s.Require().NoError(err)
	bob, err := s.app.PlayerController.CreatePlayer(s.ctx, "Bob", "Botvinnik", "bob@test.com", model.DefaultRating)
	s.Require().NoError(err)

	// Step 2: Create a competition and register both players
	comp, err := s.app.CompetitionController.CreateCompetition(s.ctx, "Open 2025", "Brussels",
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.Require().NoError(s.app.CompetitionController.RegisterPlayer(s.ctx, comp.ID, alice.ID))
	s.Require().NoError(s.app.CompetitionController.RegisterPlayer(s.ctx, comp.ID, bob.ID))

	// Step 3: Create a game between them
	game, err := s.app.GameController.CreateGame(s.ctx, comp.ID, alice.ID, bob.ID)
	s.Require().NoError(err)
	s.Equal(model.ResultNotPlayed, game.Result)

	// Step 4: Record the opening move
	game, err = s.app.GameController.AddMove(s.ctx, game.ID, 1, "e4")
	s.Require().NoError(err)
	s.Len(game.Moves, 1)

	// Step 5: White wins; ratings exchange 16 points
	game, err = s.app.GameController.SetResult(s.ctx, game.ID, model.ResultWhiteWin)
	s.Require().NoError(err)
	s.Equal(model.ResultWhiteWin, game.Result)

	updatedAlice, err := s.app.PlayerController.GetPlayer(s.ctx, alice.ID)
	s.Require().NoError(err)
	s.Equal(1216, updatedAlice.Rating)

	updatedBob, err := s.app.PlayerController.GetPlayer(s.ctx, bob.ID)
	s.Require().NoError(err)
	s.Equal(1184, updatedBob.Rating)

	// Step 6: The decided game accepts no further mutation
	_, err = s.app.GameController.AddMove(s.ctx, game.ID, 2, "e5")
	s.ErrorIs(err, model.ErrGameFinished)

	_, err = s.app.GameController.SetResult(s.ctx, game.ID, model.ResultDraw)
	s.ErrorIs(err, model.ErrResultAlreadySet)

	// Step 7: The leaderboard reflects the new ratings
	leaderboard, err := s.app.PlayerController.Leaderboard(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(leaderboard, 2)
	s.Equal(alice.ID, leaderboard[0].ID)
	s.Equal(bob.ID, leaderboard[1].ID)
}

// Test: A game cannot be created until both players are registered
func (s *IntegrationSuite) TestRegistrationGatesGameCreation() {
	alice, err := s.app.PlayerController.CreatePlayer(s.ctx, "Alice", "Aronian", "alice@test.com", model.DefaultRating)
	s.Require().NoError(err)
	bob, err := s.app.PlayerController.CreatePlayer(s.ctx, "Bob", "Botvinnik", "bob@test.com", model.DefaultRating)
	s.Require().NoError(err)

	comp, err := s.app.CompetitionController.CreateCompetition(s.ctx, "Open 2025", "Brussels",
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)

	_, err = s.app.GameController.CreateGame(s.ctx, comp.ID, alice.ID, bob.ID)
	s.ErrorIs(err, model.ErrNotRegistered)

	s.Require().NoError(s.app.CompetitionController.RegisterPlayer(s.ctx, comp.ID, alice.ID))

	_, err = s.app.GameController.CreateGame(s.ctx, comp.ID, alice.ID, bob.ID)
	s.ErrorIs(err, model.ErrNotRegistered)

	s.Require().NoError(s.app.CompetitionController.RegisterPlayer(s.ctx, comp.ID, bob.ID))

	_, err = s.app.GameController.CreateGame(s.ctx, comp.ID, alice.ID, bob.ID)
	s.NoError(err)
}

// Test: Unregistering does not disturb games already played
func (s *IntegrationSuite) TestUnregisterAfterDecidedGame() {
	alice, err := s.app.PlayerController.CreatePlayer(s.ctx, "Alice", "Aronian", "alice@test.com", model.DefaultRating)
	s.Require().NoError(err)
	bob, err := s.app.PlayerController.CreatePlayer(s.ctx, "Bob", "Botvinnik", "bob@test.com", model.DefaultRating)
	s.Require().NoError(err)

	comp, err := s.app.CompetitionController.CreateCompetition(s.ctx, "Open 2025", "Brussels",
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.Require().NoError(s.app.CompetitionController.RegisterPlayer(s.ctx, comp.ID, alice.ID))
	s.Require().NoError(s.app.CompetitionController.RegisterPlayer(s.ctx, comp.ID, bob.ID))

	game, err := s.app.GameController.CreateGame(s.ctx, comp.ID, alice.ID, bob.ID)
	s.Require().NoError(err)
	_, err = s.app.GameController.SetResult(s.ctx, game.ID, model.ResultBlackWin)
	s.Require().NoError(err)

	s.Require().NoError(s.app.CompetitionController.UnregisterPlayer(s.ctx, comp.ID, alice.ID))

	games, err := s.app.GameController.ListGamesByCompetition(s.ctx, comp.ID)
	s.Require().NoError(err)
	s.Require().Len(games, 1)
	s.Equal(model.ResultBlackWin, games[0].Result)

	updatedBob, err := s.app.PlayerController.GetPlayer(s.ctx, bob.ID)
	s.Require().NoError(err)
	s.Equal(1216, updatedBob.Rating)
}
