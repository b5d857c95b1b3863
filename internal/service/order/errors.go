package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")

	ErrOrderNotFound       = errors.New("order not found")
	ErrForbidden           = errors.New("actor is not the required participant")
	ErrInvalidTransition   = errors.New("illegal order status transition")
	ErrInvalidAmount       = errors.New("price amount must be positive")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrInvalidParticipants = errors.New("buyer and provider must be different users")
)
