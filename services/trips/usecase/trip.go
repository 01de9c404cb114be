package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/dispatch/internal/pkg/logger"
	"github.com/fleetops/dispatch/internal/pkg/models"
	"github.com/fleetops/dispatch/internal/utils"
	"github.com/fleetops/dispatch/services/planner"
	plannerusecase "github.com/fleetops/dispatch/services/planner/usecase"
	"github.com/fleetops/dispatch/services/trips"
)

// tripUC implements the trips.TripUC interface
type tripUC struct {
	cfg      *models.Config
	tripRepo trips.TripRepo
	tripGW   trips.TripGW
	routes   trips.RouteSource
}

// NewTripUC creates a new trip use case
func NewTripUC(
	cfg *models.Config,
	tripRepo trips.TripRepo,
	tripGW trips.TripGW,
	routes trips.RouteSource,
) (trips.TripUC, error) {
	return &tripUC{
		cfg:      cfg,
		tripRepo: tripRepo,
		tripGW:   tripGW,
		routes:   routes,
	}, nil
}

// ConfirmTrip assembles the operator's final selection into a Scheduled trip.
// The assigned driver and vehicle are stored as value snapshots with freshly
// recomputed scores, so later fleet mutations never alter the trip.
func (uc *tripUC) ConfirmTrip(ctx context.Context, accountID, role string, req trips.ConfirmTripRequest) (*models.Trip, error) {
	if !models.RoleCanModifyTrips(role) {
		return nil, trips.ErrPermissionDenied
	}

	route, err := uc.routeByID(ctx, req.RouteID)
	if err != nil {
		return nil, err
	}

	driver := req.Driver
	driver.Score = plannerusecase.ScoreDriver(driver.PerformanceRating, driver.HoursWorked, driver.ProximityScore)

	vehicle := req.Vehicle
	vehicle.Score = plannerusecase.ScoreVehicle(vehicle.FuelEfficiency, vehicle.UtilizationScore, vehicle.MaintenanceStatus)

	now := time.Now()
	actualHours, deliveryStatus := simulateDeliveryOutcome(route)

	trip := &models.Trip{
		ID:              uuid.New(),
		AccountID:       accountID,
		Route:           route,
		AssignedDriver:  driver.Snapshot(),
		AssignedVehicle: vehicle.Snapshot(),
		Status:          models.TripStatusScheduled,
		ActualHours:     actualHours,
		DeliveryStatus:  deliveryStatus,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.tripRepo.CreateTrip(ctx, trip); err != nil {
		logger.Error("Failed to create trip",
			logger.String("account_id", accountID),
			logger.Err(err))
		return nil, err
	}

	if err := uc.tripGW.PublishTripCreated(ctx, trip); err != nil {
		logger.Error("Failed to publish trip created event",
			logger.String("trip_id", trip.ID.String()),
			logger.Err(err))
		return nil, err
	}

	logger.Info("Confirmed trip",
		logger.String("trip_id", trip.ID.String()),
		logger.String("account_id", accountID),
		logger.String("route_id", route.ID))

	return trip, nil
}

// TransitionTrip advances one trip along the lifecycle table. A rejected
// transition leaves the stored trip untouched; a successful one persists
// only the status change.
func (uc *tripUC) TransitionTrip(ctx context.Context, accountID, role, tripID string, event models.TripEvent) (*models.Trip, error) {
	if !models.RoleCanModifyTrips(role) {
		return nil, trips.ErrPermissionDenied
	}

	trip, err := uc.tripRepo.GetTrip(ctx, accountID, tripID)
	if err != nil {
		return nil, err
	}

	next, err := NextStatus(trip.Status, event)
	if err != nil {
		return nil, err
	}

	if err := uc.tripRepo.UpdateTripStatus(ctx, accountID, tripID, next); err != nil {
		return nil, err
	}

	trip.Status = next
	trip.UpdatedAt = time.Now()

	if err := uc.tripGW.PublishTripStatusChanged(ctx, trip); err != nil {
		logger.Error("Failed to publish trip status event",
			logger.String("trip_id", tripID),
			logger.Err(err))
		return nil, err
	}

	logger.Info("Transitioned trip",
		logger.String("trip_id", tripID),
		logger.String("status", string(next)))

	return trip, nil
}

// GetTrip returns one trip from the caller's account scope
func (uc *tripUC) GetTrip(ctx context.Context, accountID, tripID string) (*models.Trip, error) {
	return uc.tripRepo.GetTrip(ctx, accountID, tripID)
}

// ListTrips returns the account's trips, newest first
func (uc *tripUC) ListTrips(ctx context.Context, accountID string, filter trips.TripFilter) ([]models.Trip, error) {
	return uc.tripRepo.ListTrips(ctx, accountID, filter)
}

func (uc *tripUC) routeByID(ctx context.Context, id string) (models.Route, error) {
	routes, err := uc.routes.Routes(ctx)
	if err != nil {
		return models.Route{}, fmt.Errorf("failed to load route catalog: %w", err)
	}

	for _, r := range routes {
		if r.ID == id {
			return r, nil
		}
	}

	return models.Route{}, fmt.Errorf("unknown route %q: %w", id, planner.ErrRouteNotFound)
}

// simulateDeliveryOutcome assigns the mocked delivery outcome at
// confirmation time: the actual duration varies around the route ETA and the
// trip is marked delayed when it exceeds the estimate.
func simulateDeliveryOutcome(route models.Route) (float64, models.DeliveryStatus) {
	factor := 0.85 + rand.Float64()*0.45
	actual := utils.Round2(route.ETAHours * factor)

	if actual > route.ETAHours {
		return actual, models.DeliveryDelayed
	}
	return actual, models.DeliveryOnTime
}
