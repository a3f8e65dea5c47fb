package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bprisby/arcade-backend-go/internal/api/apierr"
)

// decodeBody parses a JSON request body into dst
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apierr.NewBadRequestError("Invalid request body")
	}
	return nil
}
