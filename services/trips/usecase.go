package trips

import (
	"context"

	"github.com/fleetops/dispatch/internal/pkg/models"
)

// ConfirmTripRequest carries the operator's final selection for a new trip.
// Driver and vehicle are full candidate values so the trip stores immutable
// snapshots rather than references into the fleet pool.
type ConfirmTripRequest struct {
	RouteID string                  `json:"route_id"`
	Driver  models.DriverCandidate  `json:"driver"`
	Vehicle models.VehicleCandidate `json:"vehicle"`
}

// TripFilter narrows a trip listing
type TripFilter struct {
	Status models.TripStatus
}

// TripUC defines the interface for trip lifecycle business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fleetops/dispatch/services/trips TripUC
type TripUC interface {
	ConfirmTrip(ctx context.Context, accountID, role string, req ConfirmTripRequest) (*models.Trip, error)
	TransitionTrip(ctx context.Context, accountID, role, tripID string, event models.TripEvent) (*models.Trip, error)
	GetTrip(ctx context.Context, accountID, tripID string) (*models.Trip, error)
	ListTrips(ctx context.Context, accountID string, filter TripFilter) ([]models.Trip, error)
}
