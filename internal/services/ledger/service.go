package ledger

import (
	"context"
	"errors"

	"github.com/bprisby/arcade-backend-go/internal/dependencies/clock"
	"github.com/bprisby/arcade-backend-go/internal/dependencies/random"
	"github.com/bprisby/arcade-backend-go/internal/model"
	"github.com/bprisby/arcade-backend-go/internal/realtime"
	"github.com/bprisby/arcade-backend-go/internal/storage"
)

// Service manages player records and the ticket ledger
type Service struct {
	storage  storage.Storage
	notifier realtime.Notifier
	clock    clock.Clock
	random   random.Random
}

// NewService creates a new ledger Service
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

// CreatePlayerParams carries the fields for a new player. ID is optional;
// when empty the store assigns one.
type CreatePlayerParams struct {
	ID         model.PlayerID
	FirstName  string
	LastName   string
	ScreenName string
}

// PlayerUpdate carries a merge-patch for a player. Nil fields are left
// unchanged. GameStats is deliberately absent: stats move only through
// PublishStats.
type PlayerUpdate struct {
	FirstName  *string
	LastName   *string
	ScreenName *string
	Tokens     *int
	Tickets    *int
}

// CreatePlayer registers a new player with an empty ticket balance
func (s *Service) CreatePlayer(ctx context.Context, params CreatePlayerParams) (*model.Player, error) {
	if params.FirstName == "" || params.LastName == "" || params.ScreenName == "" {
		return nil, model.NewValidationError("A first name, last name, and screen name are required to create a player!")
	}

	if _, err := s.storage.GetPlayerByScreenName(ctx, params.ScreenName); err == nil {
		return nil, model.ErrScreenNameTaken
	} else if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	id := params.ID
	if id == "" {
		id = model.PlayerID(s.random.Hex(model.IDLength))
	} else {
		if !model.ValidID(string(id)) {
			return nil, model.ErrInvalidID
		}
		if _, err := s.storage.GetPlayer(ctx, id); err == nil {
			return nil, model.ErrPlayerIDTaken
		} else if !errors.Is(err, model.ErrPlayerNotFound) {
			return nil, err
		}
	}

	now := s.clock.Now()
	player := &model.Player{
		ID:         id,
		FirstName:  params.FirstName,
		LastName:   params.LastName,
		ScreenName: params.ScreenName,
		Tickets:    0,
		GameStats:  []model.GameStat{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	return player, nil
}

// GetPlayer retrieves a player by id
func (s *Service) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	if !model.ValidID(string(id)) {
		return nil, model.ErrInvalidID
	}
	return s.storage.GetPlayer(ctx, id)
}

// ListPlayers retrieves all players
func (s *Service) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	return s.storage.ListPlayers(ctx)
}

// UpdatePlayer applies a merge-patch to a player. Only supplied fields
// change; a screen-name change keeps the global uniqueness constraint.
func (s *Service) UpdatePlayer(ctx context.Context, id model.PlayerID, update PlayerUpdate) (*model.Player, error) {
	if !model.ValidID(string(id)) {
		return nil, model.ErrInvalidID
	}

	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.ScreenName != nil && *update.ScreenName != player.ScreenName {
		existing, err := s.storage.GetPlayerByScreenName(ctx, *update.ScreenName)
		if err == nil && existing.ID != player.ID {
			return nil, model.ErrScreenNameTaken
		}
		if err != nil && !errors.Is(err, model.ErrPlayerNotFound) {
			return nil, err
		}
		player.ScreenName = *update.ScreenName
	}
	if update.FirstName != nil {
		player.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		player.LastName = *update.LastName
	}
	if update.Tokens != nil {
		player.Tokens = *update.Tokens
	}
	if update.Tickets != nil {
		player.Tickets = *update.Tickets
	}
	player.UpdatedAt = s.clock.Now()

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	return player, nil
}

// DeletePlayer removes a player. Stats live embedded in the record, so
// nothing else needs cleaning up.
func (s *Service) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	if !model.ValidID(string(id)) {
		return model.ErrInvalidID
	}
	return s.storage.DeletePlayer(ctx, id)
}

// PublishStats records one play session: the player's ticket balance grows
// by ticketsEarned and the per-game record for gameID is merged in. The
// whole change lands in a single document write, so a failed save leaves no
// partial ticket or stat change behind.
func (s *Service) PublishStats(ctx context.Context, id model.PlayerID, gameID model.GameID, ticketsEarned, highScore int) (*model.Player, error) {
	if !model.ValidID(string(id)) {
		return nil, model.ErrInvalidID
	}
	if gameID == "" {
		return nil, model.NewValidationError("Game ID, tickets earned, and high score are required to publish stats!")
	}
	if ticketsEarned < 0 {
		return nil, model.NewValidationError("Tickets earned must not be negative!")
	}

	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	player.Tickets += ticketsEarned
	player.GameStats = MergeStat(player.GameStats, gameID, ticketsEarned, highScore)
	player.UpdatedAt = s.clock.Now()

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.notifier.StatsChanged(ctx)
	return player, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	CreatePlayer(ctx context.Context, params CreatePlayerParams) (*model.Player, error)
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	UpdatePlayer(ctx context.Context, id model.PlayerID, update PlayerUpdate) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error
	PublishStats(ctx context.Context, id model.PlayerID, gameID model.GameID, ticketsEarned, highScore int) (*model.Player, error)
}

var _ ServiceInterface = (*Service)(nil)
