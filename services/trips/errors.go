package trips

import "errors"

var (
	// ErrInvalidTransition is returned when a requested lifecycle transition
	// is not present in the transition table
	ErrInvalidTransition = errors.New("invalid trip status transition")

	// ErrPermissionDenied is returned when the caller's role lacks the trip
	// modify capability. Distinguishable from ErrInvalidTransition so the
	// dashboard can render a different message.
	ErrPermissionDenied = errors.New("role is not allowed to modify trips")

	// ErrTripNotFound is returned when the trip does not exist in the
	// caller's account scope
	ErrTripNotFound = errors.New("trip not found")
)
