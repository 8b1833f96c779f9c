package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Lookup errors
	ErrUserNotFound        = errors.New("user not found")
	ErrListingNotFound     = errors.New("instrument listing not found")
	ErrRentalNotFound      = errors.New("rental not found")
	ErrLessonNotFound      = errors.New("lesson not found")
	ErrInstructorNotFound  = errors.New("instructor not found")
	ErrApplicationNotFound = errors.New("instructor application not found")
	ErrMatchNotFound       = errors.New("match not found")

	// Lifecycle errors
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrBookingConflict        = errors.New("booking conflict")

	// Authorization errors
	ErrActorNotAllowed = errors.New("actor not allowed to perform this action")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Consistency errors: a compound write left the store in a partially
	// applied state that requires manual reconciliation
	ErrConsistency = errors.New("data consistency violation")

	// Upstream errors: the store or another dependency is unreachable,
	// not the request at fault
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
)
