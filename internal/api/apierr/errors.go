package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bprisby/arcade-backend-go/internal/model"
)

// ErrorResponse is the wire shape of every error the API emits
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// Common error messages
const (
	MsgBadID          = "The specified ID is invalid!"
	MsgGameNotFound   = "Could not find a game with the specified ID!"
	MsgPlayerNotFound = "Could not find a player with the specified ID!"
	MsgPrizeNotFound  = "Could not find a prize with the specified ID!"
	MsgInternal       = "An internal server error occurred"
)

// httpError pairs an HTTP status with the message surfaced to the caller
type httpError struct {
	status  int
	message string
}

func (e *httpError) Error() string {
	return e.message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		StatusCode: he.status,
		Error:      http.StatusText(he.status),
		Message:    he.message,
	})
}

// toHTTPError converts an error to an httpError. Lookup failures map to
// 400, matching the original service's contract: a missing record and a
// malformed id are both the caller's fault.
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	var ve *model.ValidationError
	if errors.As(err, &ve) {
		return &httpError{http.StatusBadRequest, ve.Message}
	}

	switch {
	case errors.Is(err, model.ErrInvalidID):
		return &httpError{http.StatusBadRequest, MsgBadID}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusBadRequest, MsgGameNotFound}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusBadRequest, MsgPlayerNotFound}
	case errors.Is(err, model.ErrPrizeNotFound):
		return &httpError{http.StatusBadRequest, MsgPrizeNotFound}
	case errors.Is(err, model.ErrGameStatsProtected):
		return &httpError{http.StatusBadRequest, "Cannot update game stats through this request!"}
	case errors.Is(err, model.ErrScreenNameTaken):
		return &httpError{http.StatusConflict, "A player with this screen name already exists!"}
	case errors.Is(err, model.ErrPlayerIDTaken):
		return &httpError{http.StatusConflict, "A player with this ID already exists!"}
	case errors.Is(err, model.ErrPrizeOutOfStock):
		return &httpError{http.StatusForbidden, "Tried to redeem a prize which is out of stock!"}
	case errors.Is(err, model.ErrInsufficientTickets):
		return &httpError{http.StatusForbidden, "Player does not have enough tickets to redeem this prize!"}
	default:
		return &httpError{http.StatusInternalServerError, MsgInternal}
	}
}

// NewBadRequestError creates a 400 error with the given message
func NewBadRequestError(message string) error {
	return &httpError{http.StatusBadRequest, message}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, MsgInternal}
}
