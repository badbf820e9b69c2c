package domain

import "errors"

// Workflow error taxonomy. Every failure is a rejected command the caller may
// retry with corrected input; none leaves the entity or audit log mutated.
var (
	// ErrNotFound: unknown entity id.
	ErrNotFound = errors.New("not found")
	// ErrPreconditionFailed: the entity is not in the status the requested
	// transition requires, or the actor role is wrong for it.
	ErrPreconditionFailed = errors.New("precondition failed")
	// ErrValidationFailed: the command payload itself is invalid.
	ErrValidationFailed = errors.New("validation failed")
)
