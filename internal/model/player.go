package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// GameStat is a player's cumulative record for one specific game.
// A player holds at most one GameStat per distinct GameID; the stat-merge
// in the ledger service is the only sanctioned way to mutate these.
type GameStat struct {
	GameID        GameID `json:"gameId"`
	TicketsEarned int    `json:"ticketsEarned"`
	GamesPlayed   int    `json:"gamesPlayed"`
	HighScore     int    `json:"highScore"`
}

// Player represents an arcade customer
type Player struct {
	ID         PlayerID   `json:"id"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	ScreenName string     `json:"screenName"` // globally unique
	Tokens     int        `json:"tokens"`
	Tickets    int        `json:"tickets"`
	GameStats  []GameStat `json:"gameStats"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// StatFor returns the player's stat entry for a game, or nil if the player
// has never published a result for it.
func (p *Player) StatFor(gameID GameID) *GameStat {
	for i := range p.GameStats {
		if p.GameStats[i].GameID == gameID {
			return &p.GameStats[i]
		}
	}
	return nil
}
