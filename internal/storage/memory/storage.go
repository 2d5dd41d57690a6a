package memory

import (
	"context"
	"sync"

	"github.com/mcoot/chessfed-go/internal/model"
	"github.com/mcoot/chessfed-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Entities are cloned on the way in and out, so no two operations ever
// share a loaded instance.
type Storage struct {
	mu sync.RWMutex

	players      map[model.PlayerID]*model.Player
	emailIndex   map[string]model.PlayerID
	competitions map[model.CompetitionID]*model.Competition
	games        map[model.GameID]*model.Game
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:      make(map[model.PlayerID]*model.Player),
		emailIndex:   make(map[string]model.PlayerID),
		competitions: make(map[model.CompetitionID]*model.Competition),
		games:        make(map[model.GameID]*model.Game),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := model.NormalizeEmail(player.Email)
	if owner, ok := s.emailIndex[email]; ok && owner != player.ID {
		return model.ErrEmailTaken
	}

	s.players[player.ID] = player.Clone()
	s.emailIndex[email] = player.ID
	return nil
}

func (s *Storage) UpdatePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatePlayerLocked(player)
}

func (s *Storage) updatePlayerLocked(player *model.Player) error {
	stored, ok := s.players[player.ID]
	if !ok {
		return model.ErrPlayerNotFound
	}

	oldEmail := model.NormalizeEmail(stored.Email)
	newEmail := model.NormalizeEmail(player.Email)
	if oldEmail != newEmail {
		if owner, taken := s.emailIndex[newEmail]; taken && owner != player.ID {
			return model.ErrEmailTaken
		}
		delete(s.emailIndex, oldEmail)
		s.emailIndex[newEmail] = player.ID
	}

	s.players[player.ID] = player.Clone()
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player.Clone(), nil
}

func (s *Storage) GetPlayerByEmail(ctx context.Context, email string) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emailIndex[model.NormalizeEmail(email)]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player.Clone(), nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.players))
	for _, p := range s.players {
		players = append(players, p.Clone())
	}
	return players, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if player, ok := s.players[id]; ok {
		delete(s.emailIndex, model.NormalizeEmail(player.Email))
		delete(s.players, id)
	}
	return nil
}

// Competition operations

func (s *Storage) SaveCompetition(ctx context.Context, comp *model.Competition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.competitions[comp.ID] = comp.Clone()
	return nil
}

func (s *Storage) GetCompetition(ctx context.Context, id model.CompetitionID) (*model.Competition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	comp, ok := s.competitions[id]
	if !ok {
		return nil, model.ErrCompetitionNotFound
	}
	return comp.Clone(), nil
}

func (s *Storage) ListCompetitions(ctx context.Context) ([]*model.Competition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	comps := make([]*model.Competition, 0, len(s.competitions))
	for _, c := range s.competitions {
		comps = append(comps, c.Clone())
	}
	return comps, nil
}

func (s *Storage) DeleteCompetition(ctx context.Context, id model.CompetitionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.competitions, id)
	return nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game.Clone()
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game.Clone(), nil
}

func (s *Storage) GetGamesByCompetition(ctx context.Context, competitionID model.CompetitionID) ([]*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var games []*model.Game
	for _, g := range s.games {
		if g.CompetitionID == competitionID {
			games = append(games, g.Clone())
		}
	}
	return games, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

// CompleteGame persists game and player updates under a single lock
// section, checking the stored game's result first. The check makes
// concurrent completions serialize: the loser sees ErrResultAlreadySet.
func (s *Storage) CompleteGame(ctx context.Context, game *model.Game, white, black *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.games[game.ID]
	if !ok {
		return model.ErrGameNotFound
	}
	if stored.Decided() {
		return model.ErrResultAlreadySet
	}

	if err := s.updatePlayerLocked(white); err != nil {
		return err
	}
	if err := s.updatePlayerLocked(black); err != nil {
		return err
	}

	s.games[game.ID] = game.Clone()
	return nil
}
