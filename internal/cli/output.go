package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bprisby/arcade-backend-go/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case model.Game:
		o.printGame(v)
	case GamesResult:
		fmt.Printf("Games (%d):\n", len(v.Games))
		for _, g := range v.Games {
			fmt.Printf("  - %s (%s) - %d tokens\n", g.Name, g.ID, g.TokenCost)
		}
	case model.Player:
		o.printPlayer(v)
	case PlayersResult:
		fmt.Printf("Players (%d):\n", len(v.Players))
		for _, p := range v.Players {
			fmt.Printf("  - %s (%s) - %d tickets\n", p.ScreenName, p.ID, p.Tickets)
		}
	case model.Prize:
		o.printPrize(v)
	case PrizesResult:
		fmt.Printf("Prizes (%d):\n", len(v.Prizes))
		for _, p := range v.Prizes {
			fmt.Printf("  - %s (%s) - %d tickets, %d in stock\n",
				p.Name, p.ID, p.TicketCost, p.AvailableQuantity)
		}
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// GamesResult is the list envelope for games
type GamesResult struct {
	Games []*model.Game `json:"games"`
}

// PlayersResult is the list envelope for players
type PlayersResult struct {
	Players []*model.Player `json:"players"`
}

// PrizesResult is the list envelope for prizes
type PrizesResult struct {
	Prizes []*model.Prize `json:"prizes"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printGame(g model.Game) {
	fmt.Printf("Game: %s (%s)\n", g.Name, g.ID)
	fmt.Printf("Token Cost: %d\n", g.TokenCost)
	if g.TopPlayer != "" {
		fmt.Printf("Top Player: %s\n", g.TopPlayer)
	}
}

func (o *Output) printPlayer(p model.Player) {
	fmt.Printf("Player: %s %s (%s)\n", p.FirstName, p.LastName, p.ID)
	fmt.Printf("Screen Name: %s\n", p.ScreenName)
	fmt.Printf("Tickets: %d\n", p.Tickets)
	if p.Tokens != 0 {
		fmt.Printf("Tokens: %d\n", p.Tokens)
	}
	if len(p.GameStats) > 0 {
		fmt.Printf("Game Stats (%d):\n", len(p.GameStats))
		for _, s := range p.GameStats {
			fmt.Printf("  - %s: %d plays, %d tickets, high score %d\n",
				s.GameID, s.GamesPlayed, s.TicketsEarned, s.HighScore)
		}
	}
}

func (o *Output) printPrize(p model.Prize) {
	fmt.Printf("Prize: %s (%s)\n", p.Name, p.ID)
	fmt.Printf("Ticket Cost: %d\n", p.TicketCost)
	fmt.Printf("Available: %d\n", p.AvailableQuantity)
	if p.Description != "" {
		fmt.Printf("Description: %s\n", p.Description)
	}
}
