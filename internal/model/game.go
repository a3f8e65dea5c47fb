package model

import "time"

// GameID uniquely identifies an arcade game
type GameID string

// Game represents an arcade cabinet on the floor
type Game struct {
	ID        GameID    `json:"id"`
	Name      string    `json:"name"`
	TokenCost int       `json:"tokenCost"`
	TopPlayer string    `json:"topPlayer,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
