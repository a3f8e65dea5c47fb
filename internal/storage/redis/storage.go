package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bprisby/arcade-backend-go/internal/model"
	"github.com/bprisby/arcade-backend-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Records are stored as JSON documents; each write of a single record is
// atomic, which is the only consistency guarantee the layer provides.
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

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	key := gameKey(game.ID)

	// Pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, gamesIndexKey(), key)
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

func (s *Storage) ListGames(ctx context.Context) ([]*model.Game, error) {
	keys, err := s.client.SMembers(ctx, gamesIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return []*model.Game{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	games := make([]*model.Game, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Index entry left behind by a concurrent delete
		}
		var game model.Game
		if err := json.Unmarshal([]byte(val.(string)), &game); err != nil {
			continue // Skip invalid data
		}
		games = append(games, &game)
	}

	return games, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	key := gameKey(id)

	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, gamesIndexKey(), key)
	_, err := pipe.Exec(ctx)
	return err
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	key := playerKey(player.ID)

	// A changed screen name leaves a stale index entry behind; look up the
	// stored record first so the old mapping can be dropped in the same
	// pipeline as the save.
	var staleScreenName string
	if existing, err := s.GetPlayer(ctx, player.ID); err == nil && existing.ScreenName != player.ScreenName {
		staleScreenName = existing.ScreenName
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, playersIndexKey(), key)
	pipe.Set(ctx, screenNameIndexKey(player.ScreenName), string(player.ID), 0)
	if staleScreenName != "" {
		pipe.Del(ctx, screenNameIndexKey(staleScreenName))
	}
	_, err = pipe.Exec(ctx)
	return err
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

func (s *Storage) GetPlayerByScreenName(ctx context.Context, screenName string) (*model.Player, error) {
	playerIDStr, err := s.client.Get(ctx, screenNameIndexKey(screenName)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	return s.GetPlayer(ctx, model.PlayerID(playerIDStr))
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	keys, err := s.client.SMembers(ctx, playersIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return []*model.Player{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var player model.Player
		if err := json.Unmarshal([]byte(val.(string)), &player); err != nil {
			continue
		}
		players = append(players, &player)
	}

	return players, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	key := playerKey(id)

	// Fetch the record first so the screen name index entry goes with it
	player, err := s.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil
		}
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, playersIndexKey(), key)
	pipe.Del(ctx, screenNameIndexKey(player.ScreenName))
	_, err = pipe.Exec(ctx)
	return err
}

// Prize operations

func (s *Storage) SavePrize(ctx context.Context, prize *model.Prize) error {
	data, err := json.Marshal(prize)
	if err != nil {
		return err
	}

	key := prizeKey(prize.ID)

	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, prizesIndexKey(), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPrize(ctx context.Context, id model.PrizeID) (*model.Prize, error) {
	data, err := s.client.Get(ctx, prizeKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPrizeNotFound
		}
		return nil, err
	}

	var prize model.Prize
	if err := json.Unmarshal(data, &prize); err != nil {
		return nil, err
	}
	return &prize, nil
}

func (s *Storage) ListPrizes(ctx context.Context) ([]*model.Prize, error) {
	keys, err := s.client.SMembers(ctx, prizesIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return []*model.Prize{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	prizes := make([]*model.Prize, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var prize model.Prize
		if err := json.Unmarshal([]byte(val.(string)), &prize); err != nil {
			continue
		}
		prizes = append(prizes, &prize)
	}

	return prizes, nil
}

func (s *Storage) DeletePrize(ctx context.Context, id model.PrizeID) error {
	key := prizeKey(id)

	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, prizesIndexKey(), key)
	_, err := pipe.Exec(ctx)
	return err
}
