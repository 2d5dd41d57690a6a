package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/chessfed-go/internal/model"
	"github.com/mcoot/chessfed-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Entities are stored as JSON blobs with secondary index keys for the
// email lookup and the list queries.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	// Claim the email first; SETNX makes the duplicate check atomic
	claimed, err := s.client.SetNX(ctx, emailIndexKey(player.Email), string(player.ID), 0).Result()
	if err != nil {
		return err
	}
	if !claimed {
		owner, err := s.client.Get(ctx, emailIndexKey(player.Email)).Result()
		if err != nil {
			return err
		}
		if owner != string(player.ID) {
			return model.ErrEmailTaken
		}
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, playerKey(player.ID), data, 0)
	pipe.SAdd(ctx, playersIndexKey, string(player.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) UpdatePlayer(ctx context.Context, player *model.Player) error {
	newEmail := model.NormalizeEmail(player.Email)

	txn := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, playerKey(player.ID)).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return model.ErrPlayerNotFound
			}
			return err
		}

		var stored model.Player
		if err := json.Unmarshal(data, &stored); err != nil {
			return err
		}

		oldEmail := model.NormalizeEmail(stored.Email)
		if oldEmail != newEmail {
			owner, err := tx.Get(ctx, emailIndexKey(newEmail)).Result()
			if err != nil && !errors.Is(err, redis.Nil) {
				return err
			}
			if err == nil && owner != string(player.ID) {
				return model.ErrEmailTaken
			}
		}

		updated, err := json.Marshal(player)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, playerKey(player.ID), updated, 0)
			if oldEmail != newEmail {
				pipe.Del(ctx, emailIndexKey(oldEmail))
				pipe.Set(ctx, emailIndexKey(newEmail), string(player.ID), 0)
			}
			return nil
		})
		return err
	}

	return s.watchWithRetry(ctx, txn, playerKey(player.ID), emailIndexKey(newEmail))
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) GetPlayerByEmail(ctx context.Context, email string) (*model.Player, error) {
	id, err := s.client.Get(ctx, emailIndexKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	return s.GetPlayer(ctx, model.PlayerID(id))
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	ids, err := s.client.SMembers(ctx, playersIndexKey).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(ids))
	for _, id := range ids {
		player, err := s.GetPlayer(ctx, model.PlayerID(id))
		if err != nil {
			if errors.Is(err, model.ErrPlayerNotFound) {
				continue // Index entry outlived the record
			}
			return nil, err
		}
		players = append(players, player)
	}
	return players, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	player, err := s.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil
		}
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, playerKey(id))
	pipe.Del(ctx, emailIndexKey(player.Email))
	pipe.SRem(ctx, playersIndexKey, string(id))
	_, err = pipe.Exec(ctx)
	return err
}

// Competition operations

func (s *Storage) SaveCompetition(ctx context.Context, comp *model.Competition) error {
	data, err := json.Marshal(comp)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, competitionKey(comp.ID), data, 0)
	pipe.SAdd(ctx, competitionsIndexKey, string(comp.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetCompetition(ctx context.Context, id model.CompetitionID) (*model.Competition, error) {
	data, err := s.client.Get(ctx, competitionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrCompetitionNotFound
		}
		return nil, err
	}

	var comp model.Competition
	if err := json.Unmarshal(data, &comp); err != nil {
		return nil, err
	}
	return &comp, nil
}

func (s *Storage) ListCompetitions(ctx context.Context) ([]*model.Competition, error) {
	ids, err := s.client.SMembers(ctx, competitionsIndexKey).Result()
	if err != nil {
		return nil, err
	}

	comps := make([]*model.Competition, 0, len(ids))
	for _, id := range ids {
		comp, err := s.GetCompetition(ctx, model.CompetitionID(id))
		if err != nil {
			if errors.Is(err, model.ErrCompetitionNotFound) {
				continue
			}
			return nil, err
		}
		comps = append(comps, comp)
	}
	return comps, nil
}

func (s *Storage) DeleteCompetition(ctx context.Context, id model.CompetitionID) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, competitionKey(id))
	pipe.Del(ctx, competitionGamesKey(id))
	pipe.SRem(ctx, competitionsIndexKey, string(id))
	_, err := pipe.Exec(ctx)
	return err
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, gameKey(game.ID), data, 0)
	pipe.SAdd(ctx, competitionGamesKey(game.CompetitionID), string(game.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	data, err := s.client.Get(ctx, gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var game model.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) GetGamesByCompetition(ctx context.Context, competitionID model.CompetitionID) ([]*model.Game, error) {
	ids, err := s.client.SMembers(ctx, competitionGamesKey(competitionID)).Result()
	if err != nil {
		return nil, err
	}

	games := make([]*model.Game, 0, len(ids))
	for _, id := range ids {
		game, err := s.GetGame(ctx, model.GameID(id))
		if err != nil {
			if errors.Is(err, model.ErrGameNotFound) {
				continue
			}
			return nil, err
		}
		games = append(games, game)
	}
	return games, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	game, err := s.GetGame(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrGameNotFound) {
			return nil
		}
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, gameKey(id))
	pipe.SRem(ctx, competitionGamesKey(game.CompetitionID), string(id))
	_, err = pipe.Exec(ctx)
	return err
}

// CompleteGame writes the decided game and both rating updates inside
// a WATCH/MULTI transaction keyed on the game. If the stored game is
// already decided the completion fails with ErrResultAlreadySet; a
// concurrent writer triggers an optimistic-lock retry.
func (s *Storage) CompleteGame(ctx context.Context, game *model.Game, white, black *model.Player) error {
	txn := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, gameKey(game.ID)).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return model.ErrGameNotFound
			}
			return err
		}

		var stored model.Game
		if err := json.Unmarshal(data, &stored); err != nil {
			return err
		}
		if stored.Decided() {
			return model.ErrResultAlreadySet
		}

		gameData, err := json.Marshal(game)
		if err != nil {
			return err
		}
		whiteData, err := json.Marshal(white)
		if err != nil {
			return err
		}
		blackData, err := json.Marshal(black)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, gameKey(game.ID), gameData, 0)
			pipe.Set(ctx, playerKey(white.ID), whiteData, 0)
			pipe.Set(ctx, playerKey(black.ID), blackData, 0)
			return nil
		})
		return err
	}

	return s.watchWithRetry(ctx, txn, gameKey(game.ID))
}

// watchWithRetry runs an optimistic-lock transaction, retrying a
// bounded number of times when a watched key changes underneath it
func (s *Storage) watchWithRetry(ctx context.Context, txn func(*redis.Tx) error, keys ...string) error {
	retries := s.cfg.MaxTxRetries
	if retries < 1 {
		retries = 1
	}

	var err error
	for i := 0; i < retries; i++ {
		err = s.client.Watch(ctx, txn, keys...)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return err
}
