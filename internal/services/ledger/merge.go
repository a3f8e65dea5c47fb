package ledger

import "github.com/bprisby/arcade-backend-go/internal/model"

// MergeStat folds one play session into a player's stat collection and
// returns the updated slice. If an entry for gameID exists, its tickets
// accumulate, its play count increments, and its high score is replaced only
// when the new score is strictly greater (a tie keeps the stored value).
// Otherwise a fresh entry is appended. At most one entry is ever touched;
// the scan stops at the first match.
func MergeStat(stats []model.GameStat, gameID model.GameID, ticketsEarned, highScore int) []model.GameStat {
	for i := range stats {
		if stats[i].GameID == gameID {
			stats[i].TicketsEarned += ticketsEarned
			stats[i].GamesPlayed++
			if stats[i].HighScore < highScore {
				stats[i].HighScore = highScore
			}
			return stats
		}
	}

	return append(stats, model.GameStat{
		GameID:        gameID,
		TicketsEarned: ticketsEarned,
		GamesPlayed:   1,
		HighScore:     highScore,
	})
}
