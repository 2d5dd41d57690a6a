package competition

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/chessfed-go/internal/dependencies/mocks"
	"github.com/mcoot/chessfed-go/internal/model"
	"github.com/mcoot/chessfed-go/internal/storage/memory"
	"github.com/mcoot/chessfed-go/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	controller *Controller
	ctx        context.Context
	startDate  time.Time
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	s.controller = NewController(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
	s.startDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
}

func (s *ControllerSuite) createPlayer(id model.PlayerID, first, last, email string) {
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, &model.Player{
		ID:        id,
		FirstName: first,
		LastName:  last,
		Email:     email,
		Rating:    model.DefaultRating,
		CreatedAt: s.clock.CurrentTime,
		UpdatedAt: s.clock.CurrentTime,
	}))
}

// CreateCompetition tests

func (s *ControllerSuite) TestCreateCompetitionSucceeds() {
	comp, err := s.controller.CreateCompetition(s.ctx, "Open 2025", "Brussels", s.startDate)
	s.Require().NoError(err)

	s.NotEmpty(comp.ID)
	s.Equal("Open 2025", comp.Name)
	s.Equal("Brussels", comp.Location)
	s.Equal(s.startDate, comp.StartDate)
	s.Empty(comp.Registrations)
}

func (s *ControllerSuite) TestCreateCompetitionTrimsFields() {
	comp, err := s.controller.CreateCompetition(s.ctx, "  Open 2025 ", " Brussels ", s.startDate)
	s.Require().NoError(err)

	s.Equal("Open 2025", comp.Name)
	s.Equal("Brussels", comp.Location)
}

func (s *ControllerSuite) TestCreateCompetitionRejectsMissingFields() {
	_, err := s.controller.CreateCompetition(s.ctx, "", "Brussels", s.startDate)
	s.ErrorIs(err, model.ErrValidation)

	_, err = s.controller.CreateCompetition(s.ctx, "Open 2025", "   ", s.startDate)
	s.ErrorIs(err, model.ErrValidation)
}

func (s *ControllerSuite) TestCreateCompetitionIsPersisted() {
	comp, err := s.controller.CreateCompetition(s.ctx, "Open 2025", "Brussels", s.startDate)
	s.Require().NoError(err)

	retrieved, err := s.controller.GetCompetition(s.ctx, comp.ID)
	s.Require().NoError(err)
	s.Equal("Open 2025", retrieved.Name)
}

// List and update tests

func (s *ControllerSuite) TestListCompetitionsSortsByStartDate() {
	_, err := s.controller.CreateCompetition(s.ctx, "Autumn Open", "Ghent", s.startDate.AddDate(0, 3, 0))
	s.Require().NoError(err)
	_, err = s.controller.CreateCompetition(s.ctx, "Summer Open", "Brussels", s.startDate)
	s.Require().NoError(err)

	comps, err := s.controller.ListCompetitions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(comps, 2)
	s.Equal("Summer Open", comps[0].Name)
	s.Equal("Autumn Open", comps[1].Name)
}

func (s *ControllerSuite) TestUpdateCompetition() {
	comp, err := s.controller.CreateCompetition(s.ctx, "Open 2025", "Brussels", s.startDate)
	s.Require().NoError(err)

	updated, err := s.controller.UpdateCompetition(s.ctx, comp.ID, "Grand Open 2025", "Antwerp")
	s.Require().NoError(err)
	s.Equal("Grand Open 2025", updated.Name)
	s.Equal("Antwerp", updated.Location)

	retrieved, err := s.controller.GetCompetition(s.ctx, comp.ID)
	s.Require().NoError(err)
	s.Equal("Antwerp", retrieved.Location)
}

func (s *ControllerSuite) TestUpdateCompetitionNotFound() {
	_, err := s.controller.UpdateCompetition(s.ctx, "nonexistent", "Name", "Place")
	s.ErrorIs(err, model.ErrCompetitionNotFound)
}

func (s *ControllerSuite) TestDeleteCompetition() {
	comp, err := s.controller.CreateCompetition(s.ctx, "Open 2025", "Brussels", s.startDate)
	s.Require().NoError(err)

	s.Require().NoError(s.controller.DeleteCompetition(s.ctx, comp.ID))

	_, err = s.controller.GetCompetition(s.ctx, comp.ID)
	s.ErrorIs(err, model.ErrCompetitionNotFound)
}

// Registration tests

func (s *ControllerSuite) TestRegisterPlayerSucceeds() {
	s.createPlayer("player-1", "Alice", "Aronian", "alice@test.com")
	comp, err := s.controller.CreateCompetition(s.ctx, "Open 2025", "Brussels", s.startDate)
	s.Require().NoError(err)

	s.Require().NoError(s.controller.RegisterPlayer(s.ctx, comp.ID, "player-1"))

	registered, err := s.controller.IsRegistered(s.ctx, comp.ID, "player-1")
	s.Require().NoError(err)
	s.True(registered)
}

func (s *ControllerSuite) TestRegisterPlayerTwiceFails() {
	s.createPlayer("player-1", "Alice", "Aronian", "alice@test.com")
	comp, err := s.controller.CreateCompetition(s.ctx, "Open 2025", "Brussels", s.startDate)
	s.Require().NoError(err)

	s.Require().NoError(s.controller.RegisterPlayer(s.ctx, comp.ID, "player-1"))
	err = s.controller.RegisterPlayer(s.ctx, comp.ID, "player-1")
	s.ErrorIs(err, model.ErrAlreadyRegistered)
}

func (s *ControllerSuite) TestRegisterUnknownPlayerFails() {
	comp, err := s.controller.CreateCompetition(s.ctx, "Open 2025", "Brussels", s.startDate)
	s.Require().NoError(err)

	err = s.controller.RegisterPlayer(s.ctx, comp.ID, "ghost")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ControllerSuite) TestRegisterForUnknownCompetitionFails() {
	s.createPlayer("player-1", "Alice", "Aronian", "alice@test.com")

	err := s.controller.RegisterPlayer(s.ctx, "nonexistent", "player-1")
	s.ErrorIs(err, model.ErrCompetitionNotFound)
}

func (s *ControllerSuite) TestUnregisterPlayer() {
	s.createPlayer("player-1", "Alice", "Aronian", "alice@test.com")
	comp, err := s.controller.CreateCompetition(s.ctx, "Open 2025", "Brussels", s.startDate)
	s.Require().NoError(err)

	s.Require().NoError(s.controller.RegisterPlayer(s.ctx, comp.ID, "player-1"))
	s.Require().NoError(s.controller.UnregisterPlayer(s.ctx, comp.ID, "player-1"))

	registered, err := s.controller.IsRegistered(s.ctx, comp.ID, "player-1")
	s.Require().NoError(err)
	s.False(registered)
}

func (s *ControllerSuite) TestUnregisterAbsentPlayerIsNoOp() {
	comp, err := s.controller.CreateCompetition(s.ctx, "Open 2025", "Brussels", s.startDate)
	s.Require().NoError(err)

	s.NoError(s.controller.UnregisterPlayer(s.ctx, comp.ID, "player-1"))
}

func (s *ControllerSuite) TestRegisteredPlayersSortedByName() {
	s.createPlayer("player-1", "Magnus", "Carlsen", "magnus@test.com")
	s.createPlayer("player-2", "Levon", "Aronian", "levon@test.com")
	comp, err := s.controller.CreateCompetition(s.ctx, "Open 2025", "Brussels", s.startDate)
	s.Require().NoError(err)

	s.Require().NoError(s.controller.RegisterPlayer(s.ctx, comp.ID, "player-1"))
	s.Require().NoError(s.controller.RegisterPlayer(s.ctx, comp.ID, "player-2"))

	players, err := s.controller.RegisteredPlayers(s.ctx, comp.ID)
	s.Require().NoError(err)
	s.Require().Len(players, 2)
	s.Equal("Aronian", players[0].LastName)
	s.Equal("Carlsen", players[1].LastName)
}

func (s *ControllerSuite) TestRegisteredPlayersSkipsDeletedPlayers() {
	s.createPlayer("player-1", "Alice", "Aronian", "alice@test.com")
	s.createPlayer("player-2", "Bob", "Botvinnik", "bob@test.com")
	comp, err := s.controller.CreateCompetition(s.ctx, "Open 2025", "Brussels", s.startDate)
	s.Require().NoError(err)

	s.Require().NoError(s.controller.RegisterPlayer(s.ctx, comp.ID, "player-1"))
	s.Require().NoError(s.controller.RegisterPlayer(s.ctx, comp.ID, "player-2"))
	s.Require().NoError(s.storage.DeletePlayer(s.ctx, "player-1"))

	players, err := s.controller.RegisteredPlayers(s.ctx, comp.ID)
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal("Botvinnik", players[0].LastName)
}
