package response

import "github.com/bprisby/arcade-backend-go/internal/model"

// Model types already carry their wire tags, so responses embed them
// directly; only the list envelopes need their own shapes.

// Games is the response for GET /games/
type Games struct {
	Games []*model.Game `json:"games"`
}

// Players is the response for GET /players/
type Players struct {
	Players []*model.Player `json:"players"`
}

// Prizes is the response for GET /prizes/
type Prizes struct {
	Prizes []*model.Prize `json:"prizes"`
}

// Health is the response for GET /health
type Health struct {
	Status string `json:"status"`
}
