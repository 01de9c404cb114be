package trips

import (
	"context"

	"github.com/fleetops/dispatch/internal/pkg/models"
)

// TripRepo defines the interface for trip data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/fleetops/dispatch/services/trips TripRepo
type TripRepo interface {
	CreateTrip(ctx context.Context, trip *models.Trip) error
	UpdateTripStatus(ctx context.Context, accountID, tripID string, status models.TripStatus) error
	GetTrip(ctx context.Context, accountID, tripID string) (*models.Trip, error)
	ListTrips(ctx context.Context, accountID string, filter TripFilter) ([]models.Trip, error)
}
