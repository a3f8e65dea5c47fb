package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/bprisby/arcade-backend-go/internal/dependencies/mocks"
	"github.com/bprisby/arcade-backend-go/internal/model"
	"github.com/bprisby/arcade-backend-go/internal/storage/memory"
	"github.com/bprisby/arcade-backend-go/internal/testutil"
)

const (
	testPlayerID = "64a1f0c2e8b9d7a3c5f1e2d4"
	testGameID   = "64a1f0c2e8b9d7a3c5f1e2d5"
	otherGameID  = "64a1f0c2e8b9d7a3c5f1e2d6"
)

// recordingNotifier counts notifications for assertions
type recordingNotifier struct {
	gamesChanged int
	statsChanged int
}

func (n *recordingNotifier) GamesChanged(context.Context) { n.gamesChanged++ }
func (n *recordingNotifier) StatsChanged(context.Context) { n.statsChanged++ }

type ServiceSuite struct {
	suite.Suite
	storage  *memory.Storage
	clock    *mocks.MockClock
	random   *mocks.MockRandom
	notifier *recordingNotifier
	service  *Service
	ctx      context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.notifier = &recordingNotifier{}
	s.service = NewService(s.storage, s.notifier, s.clock, s.random)
	s.ctx = context.Background()
}

func (s *ServiceSuite) createPlayer(screenName string) *model.Player {
	s.random.QueueHex(testPlayerID)
	player, err := s.service.CreatePlayer(s.ctx, CreatePlayerParams{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		ScreenName: screenName,
	})
	s.Require().NoError(err)
	return player
}

// CreatePlayer tests

func (s *ServiceSuite) TestCreatePlayerSucceeds() {
	player := s.createPlayer("ace")

	s.Equal(model.PlayerID(testPlayerID), player.ID)
	s.Equal("ace", player.ScreenName)
	s.Equal(0, player.Tickets)
	s.Empty(player.GameStats)
	s.Equal(s.clock.Now(), player.CreatedAt)
}

func (s *ServiceSuite) TestCreatePlayerIsPersisted() {
	player := s.createPlayer("ace")

	retrieved, err := s.service.GetPlayer(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal(player.ScreenName, retrieved.ScreenName)
}

func (s *ServiceSuite) TestCreatePlayerRequiresAllFields() {
	_, err := s.service.CreatePlayer(s.ctx, CreatePlayerParams{
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	s.True(model.IsValidation(err))
}

func (s *ServiceSuite) TestCreatePlayerRejectsDuplicateScreenName() {
	s.createPlayer("ace")

	_, err := s.service.CreatePlayer(s.ctx, CreatePlayerParams{
		FirstName:  "Grace",
		LastName:   "Hopper",
		ScreenName: "ace",
	})
	s.ErrorIs(err, model.ErrScreenNameTaken)
}

func (s *ServiceSuite) TestCreatePlayerWithCallerSuppliedID() {
	player, err := s.service.CreatePlayer(s.ctx, CreatePlayerParams{
		ID:         testPlayerID,
		FirstName:  "Ada",
		LastName:   "Lovelace",
		ScreenName: "ace",
	})
	s.Require().NoError(err)
	s.Equal(model.PlayerID(testPlayerID), player.ID)
}

func (s *ServiceSuite) TestCreatePlayerRejectsTakenID() {
	s.createPlayer("ace")

	_, err := s.service.CreatePlayer(s.ctx, CreatePlayerParams{
		ID:         testPlayerID,
		FirstName:  "Grace",
		LastName:   "Hopper",
		ScreenName: "gracie",
	})
	s.ErrorIs(err, model.ErrPlayerIDTaken)
}

func (s *ServiceSuite) TestCreatePlayerRejectsMalformedID() {
	_, err := s.service.CreatePlayer(s.ctx, CreatePlayerParams{
		ID:         "not-a-valid-id",
		FirstName:  "Ada",
		LastName:   "Lovelace",
		ScreenName: "ace",
	})
	s.ErrorIs(err, model.ErrInvalidID)
}

// GetPlayer tests

func (s *ServiceSuite) TestGetPlayerRejectsMalformedIDWithoutLookup() {
	_, err := s.service.GetPlayer(s.ctx, "short")
	s.ErrorIs(err, model.ErrInvalidID)
}

func (s *ServiceSuite) TestGetPlayerNotFound() {
	_, err := s.service.GetPlayer(s.ctx, testPlayerID)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// UpdatePlayer tests

func (s *ServiceSuite) TestUpdatePlayerMergesOnlySuppliedFields() {
	player := s.createPlayer("ace")
	tokens := 40

	updated, err := s.service.UpdatePlayer(s.ctx, player.ID, PlayerUpdate{Tokens: &tokens})
	s.Require().NoError(err)

	s.Equal(40, updated.Tokens)
	s.Equal("Ada", updated.FirstName)
	s.Equal("ace", updated.ScreenName)
}

func (s *ServiceSuite) TestUpdatePlayerScreenNameConflict() {
	s.createPlayer("ace")
	s.random.QueueHex(otherGameID)
	other, err := s.service.CreatePlayer(s.ctx, CreatePlayerParams{
		FirstName:  "Grace",
		LastName:   "Hopper",
		ScreenName: "gracie",
	})
	s.Require().NoError(err)

	name := "ace"
	_, err = s.service.UpdatePlayer(s.ctx, other.ID, PlayerUpdate{ScreenName: &name})
	s.ErrorIs(err, model.ErrScreenNameTaken)
}

func (s *ServiceSuite) TestUpdatePlayerScreenNameChangeMovesIndex() {
	player := s.createPlayer("ace")

	name := "deuce"
	_, err := s.service.UpdatePlayer(s.ctx, player.ID, PlayerUpdate{ScreenName: &name})
	s.Require().NoError(err)

	_, err = s.storage.GetPlayerByScreenName(s.ctx, "ace")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	found, err := s.storage.GetPlayerByScreenName(s.ctx, "deuce")
	s.Require().NoError(err)
	s.Equal(player.ID, found.ID)
}

func (s *ServiceSuite) TestUpdatePlayerNotFound() {
	name := "ace"
	_, err := s.service.UpdatePlayer(s.ctx, testPlayerID, PlayerUpdate{ScreenName: &name})
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// DeletePlayer tests

func (s *ServiceSuite) TestDeletePlayer() {
	player := s.createPlayer("ace")

	s.Require().NoError(s.service.DeletePlayer(s.ctx, player.ID))

	_, err := s.service.GetPlayer(s.ctx, player.ID)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// PublishStats tests

func (s *ServiceSuite) TestPublishStatsFirstPlay() {
	player := s.createPlayer("ace")

	updated, err := s.service.PublishStats(s.ctx, player.ID, testGameID, 10, 500)
	s.Require().NoError(err)

	s.Equal(10, updated.Tickets)
	s.Require().Len(updated.GameStats, 1)
	s.Equal(model.GameStat{
		GameID:        testGameID,
		TicketsEarned: 10,
		GamesPlayed:   1,
		HighScore:     500,
	}, updated.GameStats[0])
	s.Equal(1, s.notifier.statsChanged)
}

func (s *ServiceSuite) TestPublishStatsRepeatPlayMergesEntry() {
	player := s.createPlayer("ace")

	_, err := s.service.PublishStats(s.ctx, player.ID, testGameID, 10, 500)
	s.Require().NoError(err)
	updated, err := s.service.PublishStats(s.ctx, player.ID, testGameID, 5, 300)
	s.Require().NoError(err)

	s.Equal(15, updated.Tickets)
	s.Require().Len(updated.GameStats, 1)
	s.Equal(model.GameStat{
		GameID:        testGameID,
		TicketsEarned: 15,
		GamesPlayed:   2,
		HighScore:     500,
	}, updated.GameStats[0])
	s.Equal(2, s.notifier.statsChanged)
}

func (s *ServiceSuite) TestPublishStatsBalanceIsSumOfDeltas() {
	player := s.createPlayer("ace")

	deltas := []int{10, 5, 0, 25}
	gameIDs := []model.GameID{testGameID, testGameID, otherGameID, otherGameID}
	total := 0
	for i, delta := range deltas {
		_, err := s.service.PublishStats(s.ctx, player.ID, gameIDs[i], delta, 100)
		s.Require().NoError(err)
		total += delta
	}

	updated, err := s.service.GetPlayer(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal(total, updated.Tickets)
	s.Len(updated.GameStats, 2)
}

func (s *ServiceSuite) TestPublishStatsIsPersistedAtomically() {
	player := s.createPlayer("ace")

	_, err := s.service.PublishStats(s.ctx, player.ID, testGameID, 10, 500)
	s.Require().NoError(err)

	retrieved, err := s.service.GetPlayer(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal(10, retrieved.Tickets)
	s.Len(retrieved.GameStats, 1)
}

func (s *ServiceSuite) TestPublishStatsRequiresGameID() {
	player := s.createPlayer("ace")

	_, err := s.service.PublishStats(s.ctx, player.ID, "", 10, 500)
	s.True(model.IsValidation(err))
	s.Equal(0, s.notifier.statsChanged)
}

func (s *ServiceSuite) TestPublishStatsRejectsNegativeTickets() {
	player := s.createPlayer("ace")

	_, err := s.service.PublishStats(s.ctx, player.ID, testGameID, -5, 500)
	s.True(model.IsValidation(err))
}

func (s *ServiceSuite) TestPublishStatsPlayerNotFound() {
	_, err := s.service.PublishStats(s.ctx, testPlayerID, testGameID, 10, 500)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestPublishStatsRejectsMalformedID() {
	_, err := s.service.PublishStats(s.ctx, "bogus", testGameID, 10, 500)
	s.ErrorIs(err, model.ErrInvalidID)
}

func (s *ServiceSuite) TestMalformedIDNeverTouchesStorage() {
	counting := &testutil.CountingStorage{Inner: s.storage}
	service := NewService(counting, s.notifier, s.clock, s.random)

	_, err := service.GetPlayer(s.ctx, "nope")
	s.ErrorIs(err, model.ErrInvalidID)

	_, err = service.UpdatePlayer(s.ctx, "nope", PlayerUpdate{})
	s.ErrorIs(err, model.ErrInvalidID)

	err = service.DeletePlayer(s.ctx, "nope")
	s.ErrorIs(err, model.ErrInvalidID)

	_, err = service.PublishStats(s.ctx, "nope", testGameID, 10, 500)
	s.ErrorIs(err, model.ErrInvalidID)

	s.Equal(0, counting.Calls)
}
