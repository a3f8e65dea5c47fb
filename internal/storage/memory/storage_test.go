package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bprisby/arcade-backend-go/internal/model"
)

func TestGameRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	game := &model.Game{ID: "5c9a1f2b8e4d3a6c7b1e9f0a", Name: "Skee-Ball", TokenCost: 4}
	require.NoError(t, s.SaveGame(ctx, game))

	retrieved, err := s.GetGame(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, "Skee-Ball", retrieved.Name)

	games, err := s.ListGames(ctx)
	require.NoError(t, err)
	assert.Len(t, games, 1)

	require.NoError(t, s.DeleteGame(ctx, game.ID))
	_, err = s.GetGame(ctx, game.ID)
	assert.ErrorIs(t, err, model.ErrGameNotFound)
}

func TestPlayerScreenNameIndex(t *testing.T) {
	s := New()
	ctx := context.Background()

	player := &model.Player{
		ID:         "6a1b2c3d4e5f6a7b8c9d0e1f",
		FirstName:  "Alice",
		LastName:   "Smith",
		ScreenName: "ace",
	}
	require.NoError(t, s.SavePlayer(ctx, player))

	byName, err := s.GetPlayerByScreenName(ctx, "ace")
	require.NoError(t, err)
	assert.Equal(t, player.ID, byName.ID)

	// Renaming drops the old index entry
	renamed := *player
	renamed.ScreenName = "deuce"
	require.NoError(t, s.SavePlayer(ctx, &renamed))

	_, err = s.GetPlayerByScreenName(ctx, "ace")
	assert.ErrorIs(t, err, model.ErrPlayerNotFound)

	byName, err = s.GetPlayerByScreenName(ctx, "deuce")
	require.NoError(t, err)
	assert.Equal(t, player.ID, byName.ID)
}

func TestDeletePlayerClearsIndex(t *testing.T) {
	s := New()
	ctx := context.Background()

	player := &model.Player{ID: "6a1b2c3d4e5f6a7b8c9d0e1f", ScreenName: "ace"}
	require.NoError(t, s.SavePlayer(ctx, player))
	require.NoError(t, s.DeletePlayer(ctx, player.ID))

	_, err := s.GetPlayer(ctx, player.ID)
	assert.ErrorIs(t, err, model.ErrPlayerNotFound)
	_, err = s.GetPlayerByScreenName(ctx, "ace")
	assert.ErrorIs(t, err, model.ErrPlayerNotFound)
}

func TestPrizeRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	prize := &model.Prize{ID: "7b2c3d4e5f6a7b8c9d0e1f2a", Name: "Plush Bear", TicketCost: 20, AvailableQuantity: 1}
	require.NoError(t, s.SavePrize(ctx, prize))

	retrieved, err := s.GetPrize(ctx, prize.ID)
	require.NoError(t, err)
	assert.True(t, retrieved.InStock())

	prizes, err := s.ListPrizes(ctx)
	require.NoError(t, err)
	assert.Len(t, prizes, 1)

	require.NoError(t, s.DeletePrize(ctx, prize.ID))
	_, err = s.GetPrize(ctx, prize.ID)
	assert.ErrorIs(t, err, model.ErrPrizeNotFound)
}

func TestReadsAndWritesDoNotAliasStoredRecords(t *testing.T) {
	s := New()
	ctx := context.Background()

	player := &model.Player{
		ID:         "6a1b2c3d4e5f6a7b8c9d0e1f",
		ScreenName: "ace",
		Tickets:    100,
		GameStats:  []model.GameStat{{GameID: "5c9a1f2b8e4d3a6c7b1e9f0a", TicketsEarned: 10, GamesPlayed: 1, HighScore: 500}},
	}
	require.NoError(t, s.SavePlayer(ctx, player))

	// Mutating the record passed to SavePlayer must not change the store
	player.Tickets = 0
	player.GameStats[0].HighScore = 9999

	stored, err := s.GetPlayer(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, stored.Tickets)
	assert.Equal(t, 500, stored.GameStats[0].HighScore)

	// Mutating a retrieved record must not change the store either
	stored.Tickets = 1
	stored.ScreenName = "deuce"
	stored.GameStats[0].TicketsEarned = 777

	again, err := s.GetPlayer(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, again.Tickets)
	assert.Equal(t, "ace", again.ScreenName)
	assert.Equal(t, 10, again.GameStats[0].TicketsEarned)

	prize := &model.Prize{ID: "7b2c3d4e5f6a7b8c9d0e1f2a", Name: "Plush Bear", AvailableQuantity: 3}
	require.NoError(t, s.SavePrize(ctx, prize))

	storedPrize, err := s.GetPrize(ctx, prize.ID)
	require.NoError(t, err)
	storedPrize.AvailableQuantity--

	againPrize, err := s.GetPrize(ctx, prize.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, againPrize.AvailableQuantity)

	game := &model.Game{ID: "5c9a1f2b8e4d3a6c7b1e9f0a", Name: "Skee-Ball"}
	require.NoError(t, s.SaveGame(ctx, game))

	listed, err := s.ListGames(ctx)
	require.NoError(t, err)
	listed[0].Name = "Pinball"

	storedGame, err := s.GetGame(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, "Skee-Ball", storedGame.Name)
}

func TestRenameThroughRetrievedRecordFreesOldScreenName(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.SavePlayer(ctx, &model.Player{
		ID:         "6a1b2c3d4e5f6a7b8c9d0e1f",
		ScreenName: "ace",
	}))

	// Rename the way services do: load, modify the copy, save it back
	loaded, err := s.GetPlayer(ctx, "6a1b2c3d4e5f6a7b8c9d0e1f")
	require.NoError(t, err)
	loaded.ScreenName = "deuce"
	require.NoError(t, s.SavePlayer(ctx, loaded))

	_, err = s.GetPlayerByScreenName(ctx, "ace")
	assert.ErrorIs(t, err, model.ErrPlayerNotFound)

	// The freed name is available for a new player
	require.NoError(t, s.SavePlayer(ctx, &model.Player{
		ID:         "7b2c3d4e5f6a7b8c9d0e1f2a",
		ScreenName: "ace",
	}))

	byName, err := s.GetPlayerByScreenName(ctx, "ace")
	require.NoError(t, err)
	assert.Equal(t, model.PlayerID("7b2c3d4e5f6a7b8c9d0e1f2a"), byName.ID)
}
