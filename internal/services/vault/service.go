package vault

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bprisby/arcade-backend-go/internal/dependencies/clock"
	"github.com/bprisby/arcade-backend-go/internal/dependencies/random"
	"github.com/bprisby/arcade-backend-go/internal/model"
	"github.com/bprisby/arcade-backend-go/internal/storage"
)

// Service manages the prize inventory and redemptions
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewService creates a new vault Service
func NewService(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger.With(slog.String("component", "vault")),
	}
}

// CreatePrizeParams carries the fields for a new prize. Description and
// Image are optional.
type CreatePrizeParams struct {
	Name              string
	TicketCost        int
	AvailableQuantity int
	Description       string
	Image             string
}

// PrizeUpdate carries a merge-patch for a prize. Nil fields are left unchanged.
type PrizeUpdate struct {
	Name              *string
	Description       *string
	TicketCost        *int
	AvailableQuantity *int
	Image             *string
}

// CreatePrize stocks a new prize behind the counter
func (s *Service) CreatePrize(ctx context.Context, params CreatePrizeParams) (*model.Prize, error) {
	if params.Name == "" || params.TicketCost <= 0 || params.AvailableQuantity < 0 {
		return nil, model.NewValidationError("A name, ticket cost, and quantity are required to create a prize!")
	}

	now := s.clock.Now()
	prize := &model.Prize{
		ID:                model.PrizeID(s.random.Hex(model.IDLength)),
		Name:              params.Name,
		Description:       params.Description,
		TicketCost:        params.TicketCost,
		AvailableQuantity: params.AvailableQuantity,
		Image:             params.Image,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.storage.SavePrize(ctx, prize); err != nil {
		return nil, err
	}

	return prize, nil
}

// GetPrize retrieves a prize by id
func (s *Service) GetPrize(ctx context.Context, id model.PrizeID) (*model.Prize, error) {
	if !model.ValidID(string(id)) {
		return nil, model.ErrInvalidID
	}
	return s.storage.GetPrize(ctx, id)
}

// ListPrizes retrieves all prizes
func (s *Service) ListPrizes(ctx context.Context) ([]*model.Prize, error) {
	return s.storage.ListPrizes(ctx)
}

// UpdatePrize applies a merge-patch to a prize. Only supplied fields change.
func (s *Service) UpdatePrize(ctx context.Context, id model.PrizeID, update PrizeUpdate) (*model.Prize, error) {
	if !model.ValidID(string(id)) {
		return nil, model.ErrInvalidID
	}

	prize, err := s.storage.GetPrize(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		prize.Name = *update.Name
	}
	if update.Description != nil {
		prize.Description = *update.Description
	}
	if update.TicketCost != nil {
		prize.TicketCost = *update.TicketCost
	}
	if update.AvailableQuantity != nil {
		prize.AvailableQuantity = *update.AvailableQuantity
	}
	if update.Image != nil {
		prize.Image = *update.Image
	}
	prize.UpdatedAt = s.clock.Now()

	if err := s.storage.SavePrize(ctx, prize); err != nil {
		return nil, err
	}

	return prize, nil
}

// DeletePrize removes a prize. Deleting an id with no record is not an error.
func (s *Service) DeletePrize(ctx context.Context, id model.PrizeID) error {
	if !model.ValidID(string(id)) {
		return model.ErrInvalidID
	}
	return s.storage.DeletePrize(ctx, id)
}

// RedeemPrize exchanges a player's tickets for one unit of a prize. The
// stock check runs before the player lookup so an unavailable prize gives a
// stable error regardless of who asks. The player's new balance is written
// first, then the decremented quantity; there is no rollback if the second
// write fails, so that case is logged loudly and surfaced as a server error.
func (s *Service) RedeemPrize(ctx context.Context, prizeID model.PrizeID, playerID model.PlayerID) (*model.Prize, error) {
	if !model.ValidID(string(prizeID)) {
		return nil, model.ErrInvalidID
	}
	if playerID == "" {
		return nil, model.NewValidationError("A player ID is required to redeem a prize!")
	}
	if !model.ValidID(string(playerID)) {
		return nil, model.ErrInvalidID
	}

	prize, err := s.storage.GetPrize(ctx, prizeID)
	if err != nil {
		return nil, err
	}

	if !prize.InStock() {
		return nil, model.ErrPrizeOutOfStock
	}

	player, err := s.storage.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	remaining := player.Tickets - prize.TicketCost
	if remaining < 0 {
		return nil, model.ErrInsufficientTickets
	}

	now := s.clock.Now()
	player.Tickets = remaining
	player.UpdatedAt = now
	prize.AvailableQuantity--
	prize.UpdatedAt = now

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	if err := s.storage.SavePrize(ctx, prize); err != nil {
		// The player has already been debited. Ticket balance and stock
		// count now disagree until an operator reconciles them.
		s.logger.Error("redemption inconsistent: player debited but prize quantity not decremented",
			slog.String("prize_id", string(prize.ID)),
			slog.String("player_id", string(player.ID)),
			slog.Int("ticket_cost", prize.TicketCost),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("persisting prize after player debit: %w", err)
	}

	return prize, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	CreatePrize(ctx context.Context, params CreatePrizeParams) (*model.Prize, error)
	GetPrize(ctx context.Context, id model.PrizeID) (*model.Prize, error)
	ListPrizes(ctx context.Context) ([]*model.Prize, error)
	UpdatePrize(ctx context.Context, id model.PrizeID, update PrizeUpdate) (*model.Prize, error)
	DeletePrize(ctx context.Context, id model.PrizeID) error
	RedeemPrize(ctx context.Context, prizeID model.PrizeID, playerID model.PlayerID) (*model.Prize, error)
}

var _ ServiceInterface = (*Service)(nil)
