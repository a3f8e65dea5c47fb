package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/bprisby/arcade-backend-go/internal/model"
	"github.com/bprisby/arcade-backend-go/internal/storage"
)

// Broadcaster pushes fresh data snapshots to all connected subscribers.
// Every broadcast recomputes its payload from the store; nothing is diffed
// or cached between calls. Store errors are logged and discarded.
type Broadcaster struct {
	storage storage.Storage
	hub     *Hub
	logger  *slog.Logger
}

var _ Notifier = (*Broadcaster)(nil)

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(store storage.Storage, hub *Hub, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		storage: store,
		hub:     hub,
		logger:  logger.With(slog.String("component", "broadcaster")),
	}
}

// gamesPayload is the wire shape of the "games" event
type gamesPayload struct {
	Games []*model.Game `json:"games"`
}

// PlayerStats is one entry of the "stats" event: a player's screen name and
// their per-game records, best score first.
type PlayerStats struct {
	ScreenName string           `json:"screenName"`
	GameStats  []model.GameStat `json:"gameStats"`
}

// statsPayload is the wire shape of the "stats" event
type statsPayload struct {
	Stats []PlayerStats `json:"stats"`
}

// GamesChanged reloads all games and pushes the full list under a "games"
// event. Nothing is sent when the catalog is empty.
func (b *Broadcaster) GamesChanged(ctx context.Context) {
	games, err := b.storage.ListGames(ctx)
	if err != nil {
		b.logger.Error("failed to load games for broadcast",
			slog.String("error", err.Error()))
		return
	}

	if len(games) == 0 {
		return
	}

	data, err := json.Marshal(gamesPayload{Games: games})
	if err != nil {
		b.logger.Error("failed to encode games broadcast",
			slog.String("error", err.Error()))
		return
	}

	b.hub.BroadcastEvent("games", string(data))
}

// StatsChanged reloads all players, keeps those with at least one game
// record, and pushes their projected stats under a "stats" event.
func (b *Broadcaster) StatsChanged(ctx context.Context) {
	players, err := b.storage.ListPlayers(ctx)
	if err != nil {
		b.logger.Error("failed to load players for broadcast",
			slog.String("error", err.Error()))
		return
	}

	stats := ProjectStats(players)
	if len(stats) == 0 {
		return
	}

	data, err := json.Marshal(statsPayload{Stats: stats})
	if err != nil {
		b.logger.Error("failed to encode stats broadcast",
			slog.String("error", err.Error()))
		return
	}

	b.hub.BroadcastEvent("stats", string(data))
}

// SyncSubscriber replays both broadcasts so a newly connected subscriber
// receives current state without waiting for the next mutation.
func (b *Broadcaster) SyncSubscriber(ctx context.Context) {
	b.GamesChanged(ctx)
	b.StatsChanged(ctx)
}

// ProjectStats filters players down to those with at least one GameStat and
// projects each to its broadcast shape, stats sorted by high score descending.
func ProjectStats(players []*model.Player) []PlayerStats {
	stats := make([]PlayerStats, 0, len(players))
	for _, player := range players {
		if len(player.GameStats) == 0 {
			continue
		}

		entries := make([]model.GameStat, len(player.GameStats))
		copy(entries, player.GameStats)
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].HighScore > entries[j].HighScore
		})

		stats = append(stats, PlayerStats{
			ScreenName: player.ScreenName,
			GameStats:  entries,
		})
	}
	return stats
}
