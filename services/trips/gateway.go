package trips

import (
	"context"

	"github.com/fleetops/dispatch/internal/pkg/models"
)

// TripGW defines the interface for trip event publication
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/fleetops/dispatch/services/trips TripGW
type TripGW interface {
	PublishTripCreated(ctx context.Context, trip *models.Trip) error
	PublishTripStatusChanged(ctx context.Context, trip *models.Trip) error
}
