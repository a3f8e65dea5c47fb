package memory

import (
	"context"
	"sync"

	"github.com/bprisby/arcade-backend-go/internal/model"
	"github.com/bprisby/arcade-backend-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface. Records
// are cloned on every save and read so callers never alias stored state; a
// record only changes when a save succeeds.
type Storage struct {
	mu sync.RWMutex

	games           map[model.GameID]*model.Game
	players         map[model.PlayerID]*model.Player
	screenNameIndex map[string]model.PlayerID
	prizes          map[model.PrizeID]*model.Prize
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games:           make(map[model.GameID]*model.Game),
		players:         make(map[model.PlayerID]*model.Player),
		screenNameIndex: make(map[string]model.PlayerID),
		prizes:          make(map[model.PrizeID]*model.Prize),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func cloneGame(game *model.Game) *model.Game {
	c := *game
	return &c
}

func clonePlayer(player *model.Player) *model.Player {
	c := *player
	c.GameStats = make([]model.GameStat, len(player.GameStats))
	copy(c.GameStats, player.GameStats)
	return &c
}

func clonePrize(prize *model.Prize) *model.Prize {
	c := *prize
	return &c
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = cloneGame(game)
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return cloneGame(game), nil
}

func (s *Storage) ListGames(ctx context.Context) ([]*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	games := make([]*model.Game, 0, len(s.games))
	for _, game := range s.games {
		games = append(games, cloneGame(game))
	}
	return games, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Drop a stale index entry when the screen name changed
	if existing, ok := s.players[player.ID]; ok && existing.ScreenName != player.ScreenName {
		delete(s.screenNameIndex, existing.ScreenName)
	}
	s.players[player.ID] = clonePlayer(player)
	s.screenNameIndex[player.ScreenName] = player.ID
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return clonePlayer(player), nil
}

func (s *Storage) GetPlayerByScreenName(ctx context.Context, screenName string) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.screenNameIndex[screenName]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return clonePlayer(player), nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.players))
	for _, player := range s.players {
		players = append(players, clonePlayer(player))
	}
	return players, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if player, ok := s.players[id]; ok {
		delete(s.screenNameIndex, player.ScreenName)
		delete(s.players, id)
	}
	return nil
}

// Prize operations

func (s *Storage) SavePrize(ctx context.Context, prize *model.Prize) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prizes[prize.ID] = clonePrize(prize)
	return nil
}

func (s *Storage) GetPrize(ctx context.Context, id model.PrizeID) (*model.Prize, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	prize, ok := s.prizes[id]
	if !ok {
		return nil, model.ErrPrizeNotFound
	}
	return clonePrize(prize), nil
}

func (s *Storage) ListPrizes(ctx context.Context) ([]*model.Prize, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	prizes := make([]*model.Prize, 0, len(s.prizes))
	for _, prize := range s.prizes {
		prizes = append(prizes, clonePrize(prize))
	}
	return prizes, nil
}

func (s *Storage) DeletePrize(ctx context.Context, id model.PrizeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.prizes, id)
	return nil
}
