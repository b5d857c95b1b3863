package notification

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrUnknownStatus         = errors.New("unknown order status")
)
