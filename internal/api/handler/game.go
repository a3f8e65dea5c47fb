package handler

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bprisby/arcade-backend-go/internal/api/apierr"
	"github.com/bprisby/arcade-backend-go/internal/api/request"
	"github.com/bprisby/arcade-backend-go/internal/api/response"
	"github.com/bprisby/arcade-backend-go/internal/model"
	"github.com/bprisby/arcade-backend-go/internal/services/catalog"
)

// GameHandler handles game catalog endpoints
type GameHandler struct {
	catalog catalog.ServiceInterface
}

// NewGameHandler creates a new game handler
func NewGameHandler(catalog catalog.ServiceInterface) *GameHandler {
	return &GameHandler{catalog: catalog}
}

// Create handles POST /games/create
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGame
	if err := decodeBody(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	if req.Name == nil || req.TokenCost == nil {
		apierr.WriteError(w, model.NewValidationError("Both a name and token cost are required to create a game!"))
		return
	}

	game, err := h.catalog.CreateGame(r.Context(), *req.Name, *req.TokenCost)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, game)
}

// Get handles GET /games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	game, err := h.catalog.GetGame(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, game)
}

// List handles GET /games/
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.catalog.ListGames(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Games{Games: games})
}

// Update handles PUT /games/{id}/update
func (h *GameHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	var req request.UpdateGame
	if err := decodeBody(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	game, err := h.catalog.UpdateGame(r.Context(), id, catalog.GameUpdate{
		Name:      req.Name,
		TokenCost: req.TokenCost,
		TopPlayer: req.TopPlayer,
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, game)
}

// Delete handles DELETE /games/{id}/delete
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	if err := h.catalog.DeleteGame(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.Text(w, http.StatusOK, fmt.Sprintf("Deleted game %s.", id))
}
