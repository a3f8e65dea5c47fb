package handler

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bprisby/arcade-backend-go/internal/api/apierr"
	"github.com/bprisby/arcade-backend-go/internal/api/request"
	"github.com/bprisby/arcade-backend-go/internal/api/response"
	"github.com/bprisby/arcade-backend-go/internal/model"
	"github.com/bprisby/arcade-backend-go/internal/services/ledger"
)

// PlayerHandler handles player ledger endpoints
type PlayerHandler struct {
	ledger ledger.ServiceInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(ledger ledger.ServiceInterface) *PlayerHandler {
	return &PlayerHandler{ledger: ledger}
}

// Create handles POST /players/create
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayer
	if err := decodeBody(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	if req.FirstName == nil || req.LastName == nil || req.ScreenName == nil {
		apierr.WriteError(w, model.NewValidationError("A first name, last name, and screen name are required to create a player!"))
		return
	}

	params := ledger.CreatePlayerParams{
		FirstName:  *req.FirstName,
		LastName:   *req.LastName,
		ScreenName: *req.ScreenName,
	}
	if req.PlayerID != nil {
		params.ID = model.PlayerID(*req.PlayerID)
	}

	player, err := h.ledger.CreatePlayer(r.Context(), params)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, player)
}

// Get handles GET /players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	player, err := h.ledger.GetPlayer(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, player)
}

// List handles GET /players/
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.ledger.ListPlayers(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Players{Players: players})
}

// Update handles PUT /players/{id}/update. A payload carrying gameStats is
// refused outright; the publishstats endpoint is the only door to stats.
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	var req request.UpdatePlayer
	if err := decodeBody(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	if len(req.GameStats) > 0 {
		apierr.WriteError(w, model.ErrGameStatsProtected)
		return
	}

	player, err := h.ledger.UpdatePlayer(r.Context(), id, ledger.PlayerUpdate{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		ScreenName: req.ScreenName,
		Tokens:     req.Tokens,
		Tickets:    req.Tickets,
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, player)
}

// PublishStats handles POST /players/{id}/publishstats
func (h *PlayerHandler) PublishStats(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	var req request.PublishStats
	if err := decodeBody(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	if req.GameID == nil || req.TicketsEarned == nil || req.HighScore == nil {
		apierr.WriteError(w, model.NewValidationError("Game ID, tickets earned, and high score are required to publish stats!"))
		return
	}

	player, err := h.ledger.PublishStats(r.Context(), id,
		model.GameID(*req.GameID), *req.TicketsEarned, *req.HighScore)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, player)
}

// Delete handles DELETE /players/{id}/delete
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	if err := h.ledger.DeletePlayer(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.Text(w, http.StatusOK, fmt.Sprintf("Deleted player %s.", id))
}
