package testutil

import (
	"context"

	"github.com/bprisby/arcade-backend-go/internal/model"
	"github.com/bprisby/arcade-backend-go/internal/storage"
)

// CountingStorage wraps a Storage and counts every call made through it.
// Use this in tests to assert that an operation never touched the store.
type CountingStorage struct {
	Inner storage.Storage
	Calls int
}

var _ storage.Storage = (*CountingStorage)(nil)

func (c *CountingStorage) SaveGame(ctx context.Context, game *model.Game) error {
	c.Calls++
	return c.Inner.SaveGame(ctx, game)
}

func (c *CountingStorage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	c.Calls++
	return c.Inner.GetGame(ctx, id)
}

func (c *CountingStorage) ListGames(ctx context.Context) ([]*model.Game, error) {
	c.Calls++
	return c.Inner.ListGames(ctx)
}

func (c *CountingStorage) DeleteGame(ctx context.Context, id model.GameID) error {
	c.Calls++
	return c.Inner.DeleteGame(ctx, id)
}

func (c *CountingStorage) SavePlayer(ctx context.Context, player *model.Player) error {
	c.Calls++
	return c.Inner.SavePlayer(ctx, player)
}

func (c *CountingStorage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	c.Calls++
	return c.Inner.GetPlayer(ctx, id)
}

func (c *CountingStorage) GetPlayerByScreenName(ctx context.Context, screenName string) (*model.Player, error) {
	c.Calls++
	return c.Inner.GetPlayerByScreenName(ctx, screenName)
}

func (c *CountingStorage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	c.Calls++
	return c.Inner.ListPlayers(ctx)
}

func (c *CountingStorage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	c.Calls++
	return c.Inner.DeletePlayer(ctx, id)
}

func (c *CountingStorage) SavePrize(ctx context.Context, prize *model.Prize) error {
	c.Calls++
	return c.Inner.SavePrize(ctx, prize)
}

func (c *CountingStorage) GetPrize(ctx context.Context, id model.PrizeID) (*model.Prize, error) {
	c.Calls++
	return c.Inner.GetPrize(ctx, id)
}

func (c *CountingStorage) ListPrizes(ctx context.Context) ([]*model.Prize, error) {
	c.Calls++
	return c.Inner.ListPrizes(ctx)
}

func (c *CountingStorage) DeletePrize(ctx context.Context, id model.PrizeID) error {
	c.Calls++
	return c.Inner.DeletePrize(ctx, id)
}
