package storage

import (
	"context"

	"github.com/bprisby/arcade-backend-go/internal/model"
)

// Storage defines the interface for data persistence. Implementations must
// guarantee atomic writes of a single record; no cross-record transaction is
// provided or assumed.
type Storage interface {
	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	ListGames(ctx context.Context) ([]*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error

	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	GetPlayerByScreenName(ctx context.Context, screenName string) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Prize operations
	SavePrize(ctx context.Context, prize *model.Prize) error
	GetPrize(ctx context.Context, id model.PrizeID) (*model.Prize, error)
	ListPrizes(ctx context.Context) ([]*model.Prize, error)
	DeletePrize(ctx context.Context, id model.PrizeID) error
}
