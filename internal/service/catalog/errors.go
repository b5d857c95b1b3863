package catalog

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")

	ErrServiceNotFound  = errors.New("service listing not found")
	ErrRequestNotFound  = errors.New("request not found")
	ErrProposalNotFound = errors.New("proposal not found")
)
