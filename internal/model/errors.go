package model

import "errors"

// Common errors used across the application
var (
	// Identifier errors
	ErrInvalidID = errors.New("invalid record identifier")

	// Game errors
	ErrGameNotFound = errors.New("game not found")

	// Player errors
	ErrPlayerNotFound      = errors.New("player not found")
	ErrScreenNameTaken     = errors.New("screen name already in use")
	ErrPlayerIDTaken       = errors.New("player id already in use")
	ErrGameStatsProtected  = errors.New("game stats cannot be updated directly")
	ErrInsufficientTickets = errors.New("player does not have enough tickets")

	// Prize errors
	ErrPrizeNotFound   = errors.New("prize not found")
	ErrPrizeOutOfStock = errors.New("prize is out of stock")
)

// ValidationError reports a missing or malformed required field.
// The message is surfaced verbatim to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
