package handler

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bprisby/arcade-backend-go/internal/api/apierr"
	"github.com/bprisby/arcade-backend-go/internal/api/request"
	"github.com/bprisby/arcade-backend-go/internal/api/response"
	"github.com/bprisby/arcade-backend-go/internal/model"
	"github.com/bprisby/arcade-backend-go/internal/services/vault"
)

// PrizeHandler handles prize vault endpoints
type PrizeHandler struct {
	vault vault.ServiceInterface
}

// NewPrizeHandler creates a new prize handler
func NewPrizeHandler(vault vault.ServiceInterface) *PrizeHandler {
	return &PrizeHandler{vault: vault}
}

// Create handles POST /prizes/create
func (h *PrizeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePrize
	if err := decodeBody(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	if req.Name == nil || req.TicketCost == nil || req.AvailableQuantity == nil {
		apierr.WriteError(w, model.NewValidationError("A name, ticket cost, and quantity are required to create a prize!"))
		return
	}

	params := vault.CreatePrizeParams{
		Name:              *req.Name,
		TicketCost:        *req.TicketCost,
		AvailableQuantity: *req.AvailableQuantity,
	}
	if req.Description != nil {
		params.Description = *req.Description
	}
	if req.Image != nil {
		params.Image = *req.Image
	}

	prize, err := h.vault.CreatePrize(r.Context(), params)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, prize)
}

// Get handles GET /prizes/{id}
func (h *PrizeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.PrizeID(mux.Vars(r)["id"])

	prize, err := h.vault.GetPrize(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, prize)
}

// List handles GET /prizes/
func (h *PrizeHandler) List(w http.ResponseWriter, r *http.Request) {
	prizes, err := h.vault.ListPrizes(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Prizes{Prizes: prizes})
}

// Update handles PUT /prizes/{id}/update
func (h *PrizeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.PrizeID(mux.Vars(r)["id"])

	var req request.UpdatePrize
	if err := decodeBody(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	prize, err := h.vault.UpdatePrize(r.Context(), id, vault.PrizeUpdate{
		Name:              req.Name,
		Description:       req.Description,
		TicketCost:        req.TicketCost,
		AvailableQuantity: req.AvailableQuantity,
		Image:             req.Image,
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, prize)
}

// Redeem handles POST /prizes/{id}/redeem
func (h *PrizeHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	id := model.PrizeID(mux.Vars(r)["id"])

	var req request.RedeemPrize
	if err := decodeBody(r, &req); err != nil {
		apierr.WriteError(w, err)
		return
	}

	if req.PlayerID == nil {
		apierr.WriteError(w, model.NewValidationError("A player ID is required to redeem a prize!"))
		return
	}

	prize, err := h.vault.RedeemPrize(r.Context(), id, model.PlayerID(*req.PlayerID))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, prize)
}

// Delete handles DELETE /prizes/{id}/delete
func (h *PrizeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.PrizeID(mux.Vars(r)["id"])

	if err := h.vault.DeletePrize(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.Text(w, http.StatusOK, fmt.Sprintf("Deleted prize %s.", id))
}
