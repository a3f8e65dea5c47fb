package model

import "time"

// PrizeID uniquely identifies a prize
type PrizeID string

// Prize represents a redeemable item behind the counter
type Prize struct {
	ID                PrizeID   `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	TicketCost        int       `json:"ticketCost"`
	AvailableQuantity int       `json:"availableQuantity"`
	Image             string    `json:"image,omitempty"` // reference, not binary
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// InStock reports whether at least one unit remains
func (p *Prize) InStock() bool {
	return p.AvailableQuantity > 0
}
