package usecase

import "errors"

// Sentinel errors for the use case layer
var (
	// Not found errors
	ErrAuditNotFound     = errors.New("audit entity not found")
	ErrPhaseNotFound     = errors.New("phase not found")
	ErrTaskNotFound      = errors.New("task not found")
	ErrRiskNotFound      = errors.New("risk not found")
	ErrCriterionNotFound = errors.New("criterion not found")
	ErrEntryNotFound     = errors.New("planner entry not found")
	ErrPersonNotFound    = errors.New("person not found")

	// Access control errors
	ErrForbidden = errors.New("operation not allowed for role")

	// Input errors
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
