package realtime

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bprisby/arcade-backend-go/internal/model"
	"github.com/bprisby/arcade-backend-go/internal/storage/memory"
	"github.com/bprisby/arcade-backend-go/internal/testutil"
)

func TestBroadcaster_GamesChanged(t *testing.T) {
	store := memory.New()
	hub := NewHub(testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	broadcaster := NewBroadcaster(store, hub, testutil.NopLogger())

	ctx := context.Background()
	err := store.SaveGame(ctx, &model.Game{
		ID:        "64a1f0c2e8b9d7a3c5f1e2d4",
		Name:      "Skee-Ball",
		TokenCost: 2,
	})
	if err != nil {
		t.Fatalf("SaveGame() error = %v", err)
	}

	client := NewClient(hub)
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	broadcaster.GamesChanged(ctx)

	select {
	case msg := <-client.send:
		msgStr := string(msg)
		if !strings.Contains(msgStr, "event: games") {
			t.Errorf("message does not contain event name: %s", msgStr)
		}
		if !strings.Contains(msgStr, `"Skee-Ball"`) {
			t.Errorf("message does not contain game name: %s", msgStr)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("client did not receive games broadcast")
	}
}

func TestBroadcaster_GamesChangedEmptyCatalog(t *testing.T) {
	store := memory.New()
	hub := NewHub(testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	broadcaster := NewBroadcaster(store, hub, testutil.NopLogger())

	client := NewClient(hub)
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	broadcaster.GamesChanged(context.Background())

	select {
	case msg := <-client.send:
		t.Errorf("client received %q for empty catalog, want nothing", string(msg))
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBroadcaster_StatsChanged(t *testing.T) {
	store := memory.New()
	hub := NewHub(testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	broadcaster := NewBroadcaster(store, hub, testutil.NopLogger())

	ctx := context.Background()
	players := []*model.Player{
		{
			ID:         "64a1f0c2e8b9d7a3c5f1e2d4",
			ScreenName: "alice",
			GameStats: []model.GameStat{
				{GameID: "64a1f0c2e8b9d7a3c5f1e2d5", TicketsEarned: 10, GamesPlayed: 2, HighScore: 400},
			},
		},
		{
			// No recorded plays; must be absent from the broadcast
			ID:         "64a1f0c2e8b9d7a3c5f1e2d6",
			ScreenName: "bob",
		},
	}
	for _, p := range players {
		if err := store.SavePlayer(ctx, p); err != nil {
			t.Fatalf("SavePlayer() error = %v", err)
		}
	}

	client := NewClient(hub)
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	broadcaster.StatsChanged(ctx)

	select {
	case msg := <-client.send:
		msgStr := string(msg)
		if !strings.Contains(msgStr, "event: stats") {
			t.Errorf("message does not contain event name: %s", msgStr)
		}
		if !strings.Contains(msgStr, `"alice"`) {
			t.Errorf("message does not contain alice: %s", msgStr)
		}
		if strings.Contains(msgStr, `"bob"`) {
			t.Errorf("message contains player with no stats: %s", msgStr)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("client did not receive stats broadcast")
	}
}

func TestProjectStats(t *testing.T) {
	players := []*model.Player{
		{
			ScreenName: "carol",
			GameStats: []model.GameStat{
				{GameID: "a", HighScore: 100},
				{GameID: "b", HighScore: 900},
				{GameID: "c", HighScore: 500},
			},
		},
		{ScreenName: "empty"},
	}

	stats := ProjectStats(players)

	if len(stats) != 1 {
		t.Fatalf("ProjectStats() returned %d entries, want 1", len(stats))
	}
	if stats[0].ScreenName != "carol" {
		t.Errorf("ScreenName = %q, want %q", stats[0].ScreenName, "carol")
	}
	scores := []int{900, 500, 100}
	for i, want := range scores {
		if stats[0].GameStats[i].HighScore != want {
			t.Errorf("GameStats[%d].HighScore = %d, want %d (descending order)",
				i, stats[0].GameStats[i].HighScore, want)
		}
	}

	// Projection must not reorder the player's stored stats
	if players[0].GameStats[0].GameID != "a" {
		t.Errorf("ProjectStats() mutated the source slice")
	}
}
