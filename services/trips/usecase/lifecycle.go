package usecase

import (
	"github.com/fleetops/dispatch/internal/pkg/models"
	"github.com/fleetops/dispatch/services/trips"
)

// transitionTable holds the only legal lifecycle edges. Completed and
// Cancelled are terminal: no entry leaves them.
var transitionTable = map[models.TripStatus]map[models.TripEvent]models.TripStatus{
	models.TripStatusScheduled: {
		models.TripEventStart:  models.TripStatusInProgress,
		models.TripEventCancel: models.TripStatusCancelled,
	},
	models.TripStatusInProgress: {
		models.TripEventComplete: models.TripStatusCompleted,
		models.TripEventCancel:   models.TripStatusCancelled,
	},
}

// NextStatus resolves the target state for an operator-requested event.
// Events not present in the transition table are rejected.
func NextStatus(current models.TripStatus, event models.TripEvent) (models.TripStatus, error) {
	targets, ok := transitionTable[current]
	if !ok {
		return "", trips.ErrInvalidTransition
	}

	next, ok := targets[event]
	if !ok {
		return "", trips.ErrInvalidTransition
	}

	return next, nil
}
