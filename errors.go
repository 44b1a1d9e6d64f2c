package brochure

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates dashboard content failed validation.
	ErrValidation = errors.New("validation error")

	// ErrUnknownDashboard indicates the requested dashboard does not exist.
	ErrUnknownDashboard = errors.New("unknown dashboard")
)
