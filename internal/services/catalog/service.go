package catalog

import (
	"context"

	"github.com/bprisby/arcade-backend-go/internal/dependencies/clock"
	"github.com/bprisby/arcade-backend-go/internal/dependencies/random"
	"github.com/bprisby/arcade-backend-go/internal/model"
	"github.com/bprisby/arcade-backend-go/internal/realtime"
	"github.com/bprisby/arcade-backend-go/internal/storage"
)

// Service manages the catalog of games on the floor
type Service struct {
	storage  storage.Storage
	notifier realtime.Notifier
	clock    clock.Clock
	random   random.Random
}

// NewService creates a new catalog Service
func NewService(
	storage storage.Storage,
	notifier realtime.Notifier,
	clock clock.Clock,
	random random.Random,
) *Service {
	return &Service{
		storage:  storage,
		notifier: notifier,
		clock:    clock,
		random:   random,
	}
}

// GameUpdate carries a merge-patch for a game. Nil fields are left unchanged.
type GameUpdate struct {
	Name      *string
	TokenCost *int
	TopPlayer *string
}

// CreateGame registers a new game
func (s *Service) CreateGame(ctx context.Context, name string, tokenCost int) (*model.Game, error) {
	if name == "" || tokenCost <= 0 {
		return nil, model.NewValidationError("Both a name and token cost are required to create a game!")
	}

	now := s.clock.Now()
	game := &model.Game{
		ID:        model.GameID(s.random.Hex(model.IDLength)),
		Name:      name,
		TokenCost: tokenCost,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	s.notifier.GamesChanged(ctx)
	return game, nil
}

// GetGame retrieves a game by id
func (s *Service) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	if !model.ValidID(string(id)) {
		return nil, model.ErrInvalidID
	}
	return s.storage.GetGame(ctx, id)
}

// ListGames retrieves all games
func (s *Service) ListGames(ctx context.Context) ([]*model.Game, error) {
	return s.storage.ListGames(ctx)
}

// UpdateGame applies a merge-patch to a game. Only supplied fields change.
func (s *Service) UpdateGame(ctx context.Context, id model.GameID, update GameUpdate) (*model.Game, error) {
	if !model.ValidID(string(id)) {
		return nil, model.ErrInvalidID
	}

	game, err := s.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		game.Name = *update.Name
	}
	if update.TokenCost != nil {
		game.TokenCost = *update.TokenCost
	}
	if update.TopPlayer != nil {
		game.TopPlayer = *update.TopPlayer
	}
	game.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	s.notifier.GamesChanged(ctx)
	return game, nil
}

// DeleteGame removes a game. Deleting an id with no record is not an error.
func (s *Service) DeleteGame(ctx context.Context, id model.GameID) error {
	if !model.ValidID(string(id)) {
		return model.ErrInvalidID
	}

	if err := s.storage.DeleteGame(ctx, id); err != nil {
		return err
	}

	s.notifier.GamesChanged(ctx)
	return nil
}

// Interface for dependency injection
type ServiceInterface interface {
	CreateGame(ctx context.Context, name string, tokenCost int) (*model.Game, error)
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	ListGames(ctx context.Context) ([]*model.Game, error)
	UpdateGame(ctx context.Context, id model.GameID, update GameUpdate) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
}

var _ ServiceInterface = (*Service)(nil)
