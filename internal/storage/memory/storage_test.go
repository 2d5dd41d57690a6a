package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/chessfed-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
	now     time.Time
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
	s.now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (s *StorageSuite) player(id model.PlayerID, email string, rating int) *model.Player {
	return &model.Player{
		ID:        id,
		FirstName: "Test",
		LastName:  string(id),
		Email:     email,
		Rating:    rating,
		CreatedAt: s.now,
		UpdatedAt: s.now,
	}
}

// Player tests

func (s *StorageSuite) TestCreateAndGetPlayer() {
	player := s.player("player-1", "alice@test.com", 1200)

	s.Require().NoError(s.storage.CreatePlayer(s.ctx, player))

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.Email, retrieved.Email)
	s.Equal(player.Rating, retrieved.Rating)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestCreatePlayerClaimsEmail() {
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, s.player("player-1", "alice@test.com", 1200)))

	err := s.storage.CreatePlayer(s.ctx, s.player("player-2", "Alice@Test.com", 1200))
	s.ErrorIs(err, model.ErrEmailTaken)
}

func (s *StorageSuite) TestGetPlayerByEmailIsCaseInsensitive() {
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, s.player("player-1", "alice@test.com", 1200)))

	retrieved, err := s.storage.GetPlayerByEmail(s.ctx, "ALICE@test.COM")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("player-1"), retrieved.ID)
}

func (s *StorageSuite) TestUpdatePlayerReindexesEmail() {
	player := s.player("player-1", "alice@test.com", 1200)
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, player))

	player.Email = "alicia@test.com"
	s.Require().NoError(s.storage.UpdatePlayer(s.ctx, player))

	_, err := s.storage.GetPlayerByEmail(s.ctx, "alice@test.com")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	retrieved, err := s.storage.GetPlayerByEmail(s.ctx, "alicia@test.com")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("player-1"), retrieved.ID)
}

func (s *StorageSuite) TestUpdatePlayerRejectsTakenEmail() {
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, s.player("player-1", "alice@test.com", 1200)))
	bob := s.player("player-2", "bob@test.com", 1200)
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, bob))

	bob.Email = "alice@test.com"
	s.ErrorIs(s.storage.UpdatePlayer(s.ctx, bob), model.ErrEmailTaken)
}

func (s *StorageSuite) TestUpdatePlayerNotFound() {
	err := s.storage.UpdatePlayer(s.ctx, s.player("ghost", "ghost@test.com", 1200))
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestDeletePlayerFreesEmail() {
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, s.player("player-1", "alice@test.com", 1200)))
	s.Require().NoError(s.storage.DeletePlayer(s.ctx, "player-1"))

	_, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	// The email can be claimed again
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, s.player("player-2", "alice@test.com", 1200)))
}

func (s *StorageSuite) TestStoredPlayerIsNotShared() {
	player := s.player("player-1", "alice@test.com", 1200)
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, player))

	player.Rating = 9999

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(1200, retrieved.Rating)
}

// Competition tests

func (s *StorageSuite) TestSaveAndGetCompetition() {
	comp := &model.Competition{
		ID:        "comp-1",
		Name:      "Open 2025",
		Location:  "Brussels",
		StartDate: s.now,
	}
	s.Require().NoError(comp.Register("player-1", s.now))
	s.Require().NoError(s.storage.SaveCompetition(s.ctx, comp))

	retrieved, err := s.storage.GetCompetition(s.ctx, "comp-1")
	s.Require().NoError(err)
	s.Equal("Open 2025", retrieved.Name)
	s.True(retrieved.IsRegistered("player-1"))
}

func (s *StorageSuite) TestGetCompetitionNotFound() {
	_, err := s.storage.GetCompetition(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrCompetitionNotFound)
}

func (s *StorageSuite) TestSaveCompetitionReplacesRegistrations() {
	comp := &model.Competition{ID: "comp-1", Name: "Open 2025", Location: "Brussels"}
	s.Require().NoError(comp.Register("player-1", s.now))
	s.Require().NoError(s.storage.SaveCompetition(s.ctx, comp))

	comp.Unregister("player-1", s.now)
	s.Require().NoError(comp.Register("player-2", s.now))
	s.Require().NoError(s.storage.SaveCompetition(s.ctx, comp))

	retrieved, err := s.storage.GetCompetition(s.ctx, "comp-1")
	s.Require().NoError(err)
	s.False(retrieved.IsRegistered("player-1"))
	s.True(retrieved.IsRegistered("player-2"))
}

func (s *StorageSuite) TestListAndDeleteCompetitions() {
	s.Require().NoError(s.storage.SaveCompetition(s.ctx, &model.Competition{ID: "comp-1", Name: "A", Location: "X"}))
	s.Require().NoError(s.storage.SaveCompetition(s.ctx, &model.Competition{ID: "comp-2", Name: "B", Location: "Y"}))

	comps, err := s.storage.ListCompetitions(s.ctx)
	s.Require().NoError(err)
	s.Len(comps, 2)

	s.Require().NoError(s.storage.DeleteCompetition(s.ctx, "comp-1"))
	comps, err = s.storage.ListCompetitions(s.ctx)
	s.Require().NoError(err)
	s.Len(comps, 1)
}

// Game tests

func (s *StorageSuite) game(id model.GameID) *model.Game {
	return &model.Game{
		ID:            id,
		CompetitionID: "comp-1",
		WhiteID:       "player-1",
		BlackID:       "player-2",
		Result:        model.ResultNotPlayed,
		CreatedAt:     s.now,
		UpdatedAt:     s.now,
	}
}

func (s *StorageSuite) TestSaveAndGetGame() {
	game := s.game("game-1")
	move, err := model.NewMove(1, "e4", s.now)
	s.Require().NoError(err)
	s.Require().NoError(game.AddMove(move, s.now))

	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Len(retrieved.Moves, 1)
	s.Equal("e4", retrieved.Moves[0].Notation)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestGetGamesByCompetition() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, s.game("game-1")))
	s.Require().NoError(s.storage.SaveGame(s.ctx, s.game("game-2")))

	other := s.game("game-3")
	other.CompetitionID = "comp-2"
	s.Require().NoError(s.storage.SaveGame(s.ctx, other))

	games, err := s.storage.GetGamesByCompetition(s.ctx, "comp-1")
	s.Require().NoError(err)
	s.Len(games, 2)
}

func (s *StorageSuite) TestCompleteGamePersistsAllThree() {
	white := s.player("player-1", "alice@test.com", 1200)
	black := s.player("player-2", "bob@test.com", 1200)
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, white))
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, black))

	game := s.game("game-1")
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(game.SetResult(model.ResultWhiteWin, s.now))
	white.Rating = 1216
	black.Rating = 1184

	s.Require().NoError(s.storage.CompleteGame(s.ctx, game, white, black))

	storedGame, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(model.ResultWhiteWin, storedGame.Result)

	storedWhite, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(1216, storedWhite.Rating)

	storedBlack, err := s.storage.GetPlayer(s.ctx, "player-2")
	s.Require().NoError(err)
	s.Equal(1184, storedBlack.Rating)
}

func (s *StorageSuite) TestCompleteGameFailsIfAlreadyDecided() {
	white := s.player("player-1", "alice@test.com", 1200)
	black := s.player("player-2", "bob@test.com", 1200)
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, white))
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, black))

	game := s.game("game-1")
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	decided := game.Clone()
	s.Require().NoError(decided.SetResult(model.ResultWhiteWin, s.now))
	s.Require().NoError(s.storage.CompleteGame(s.ctx, decided, white, black))

	// A second completion based on the stale open game must lose
	second := game.Clone()
	s.Require().NoError(second.SetResult(model.ResultDraw, s.now))
	err := s.storage.CompleteGame(s.ctx, second, white, black)
	s.ErrorIs(err, model.ErrResultAlreadySet)
}

func (s *StorageSuite) TestCompleteGameFailsIfGameUnknown() {
	white := s.player("player-1", "alice@test.com", 1200)
	black := s.player("player-2", "bob@test.com", 1200)
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, white))
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, black))

	err := s.storage.CompleteGame(s.ctx, s.game("ghost"), white, black)
	s.ErrorIs(err, model.ErrGameNotFound)
}
