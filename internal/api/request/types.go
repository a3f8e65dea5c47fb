package request

import "encoding/json"

// Pointer fields distinguish "absent" from "zero" so create endpoints can
// reject missing required values and update endpoints can merge-patch.

// CreateGame is the request body for POST /games/create
type CreateGame struct {
	Name      *string `json:"name"`
	TokenCost *int    `json:"tokenCost"`
}

// UpdateGame is the request body for PUT /games/{id}/update
type UpdateGame struct {
	Name      *string `json:"name"`
	TokenCost *int    `json:"tokenCost"`
	TopPlayer *string `json:"topPlayer"`
}

// CreatePlayer is the request body for POST /players/create.
// PlayerID lets deployments mint their own identifiers.
type CreatePlayer struct {
	PlayerID   *string `json:"playerId"`
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	ScreenName *string `json:"screenName"`
}

// UpdatePlayer is the request body for PUT /players/{id}/update.
// GameStats is captured only to refuse it: stats move through publishstats,
// never through a generic edit.
type UpdatePlayer struct {
	FirstName  *string         `json:"firstName"`
	LastName   *string         `json:"lastName"`
	ScreenName *string         `json:"screenName"`
	Tokens     *int            `json:"tokens"`
	Tickets    *int            `json:"tickets"`
	GameStats  json.RawMessage `json:"gameStats"`
}

// PublishStats is the request body for POST /players/{id}/publishstats
type PublishStats struct {
	GameID        *string `json:"gameId"`
	TicketsEarned *int    `json:"ticketsEarned"`
	HighScore     *int    `json:"highScore"`
}

// CreatePrize is the request body for POST /prizes/create
type CreatePrize struct {
	Name              *string `json:"name"`
	TicketCost        *int    `json:"ticketCost"`
	AvailableQuantity *int    `json:"availableQuantity"`
	Description       *string `json:"description"`
	Image             *string `json:"image"`
}

// UpdatePrize is the request body for PUT /prizes/{id}/update
type UpdatePrize struct {
	Name              *string `json:"name"`
	Description       *string `json:"description"`
	TicketCost        *int    `json:"ticketCost"`
	AvailableQuantity *int    `json:"availableQuantity"`
	Image             *string `json:"image"`
}

// RedeemPrize is the request body for POST /prizes/{id}/redeem
type RedeemPrize struct {
	PlayerID *string `json:"playerId"`
}
