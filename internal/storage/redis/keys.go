package redis

import (
	"fmt"

	"github.com/bprisby/arcade-backend-go/internal/model"
)

// Key prefix for all arcade data
const keyPrefix = "arcade"

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// gamesIndexKey returns the Redis key for the SET of all game keys
func gamesIndexKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playersIndexKey returns the Redis key for the SET of all player keys
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// screenNameIndexKey returns the Redis key for the screen_name -> player_id index
func screenNameIndexKey(screenName string) string {
	return fmt.Sprintf("%s:idx:screen_name:%s", keyPrefix, screenName)
}

// prizeKey returns the Redis key for a Prize
func prizeKey(id model.PrizeID) string {
	return fmt.Sprintf("%s:prize:%s", keyPrefix, id)
}

// prizesIndexKey returns the Redis key for the SET of all prize keys
func prizesIndexKey() string {
	return fmt.Sprintf("%s:idx:prizes", keyPrefix)
}
