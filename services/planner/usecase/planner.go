package usecase

import (
	"context"
	"fmt"

	"github.com/fleetops/dispatch/internal/pkg/logger"
	"github.com/fleetops/dispatch/internal/pkg/models"
	"github.com/fleetops/dispatch/internal/utils"
	"github.com/fleetops/dispatch/services/planner"
)

// plannerUC implements the planner.PlannerUC interface
type plannerUC struct {
	cfg       *models.Config
	fleetRepo planner.FleetRepo
	fleetGW   planner.FleetGW
	settings  planner.SettingsSource
}

// NewPlannerUC creates a new planner use case
func NewPlannerUC(
	cfg *models.Config,
	fleetRepo planner.FleetRepo,
	fleetGW planner.FleetGW,
	settings planner.SettingsSource,
) (planner.PlannerUC, error) {
	return &plannerUC{
		cfg:       cfg,
		fleetRepo: fleetRepo,
		fleetGW:   fleetGW,
		settings:  settings,
	}, nil
}

// PlanTrip produces ranked driver and vehicle recommendations for a route.
// Scores are recomputed from current fleet inputs on every call; nothing is
// read back from a prior ranking.
func (uc *plannerUC) PlanTrip(ctx context.Context, accountID string, req models.PlanRequest) (*models.PlanResponse, error) {
	route, ok := routeByID(req.RouteID)
	if !ok {
		return nil, fmt.Errorf("unknown route %q: %w", req.RouteID, planner.ErrRouteNotFound)
	}

	drivers, err := uc.fleetRepo.GetDriverCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load driver candidates: %w", err)
	}

	vehicles, err := uc.fleetRepo.GetVehicleCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicle candidates: %w", err)
	}

	for i := range drivers {
		drivers[i].ProximityScore = uc.proximityScore(drivers[i], req.Pickup)
	}

	rankedDrivers := RankDrivers(drivers)
	rankedVehicles := RankVehicles(vehicles)

	price, rate, currency := uc.fuelPricing(ctx, accountID, route)

	estimates := make([]models.FuelEstimate, 0, len(rankedVehicles))
	for _, v := range rankedVehicles {
		estimates = append(estimates, EstimateFuelCost(v.ID, v.FuelEfficiency, route.Distance, price, rate, currency))
	}

	logger.Info("Planned trip candidates",
		logger.String("account_id", accountID),
		logger.String("route_id", route.ID),
		logger.Int("drivers", len(rankedDrivers)),
		logger.Int("vehicles", len(rankedVehicles)))

	return &models.PlanResponse{
		Route:         route,
		Drivers:       rankedDrivers,
		Vehicles:      rankedVehicles,
		FuelEstimates: estimates,
	}, nil
}

// Routes returns the fixed route catalog
func (uc *plannerUC) Routes(ctx context.Context) ([]models.Route, error) {
	routes := make([]models.Route, len(routeCatalog))
	copy(routes, routeCatalog)
	return routes, nil
}

// SeedFleet loads the fixture fleet into the candidate pool
func (uc *plannerUC) SeedFleet(ctx context.Context) error {
	if err := uc.fleetRepo.SeedFleet(ctx, seedDrivers, seedVehicles); err != nil {
		return fmt.Errorf("failed to seed fleet: %w", err)
	}

	if err := uc.fleetGW.PublishFleetSeeded(ctx, len(seedDrivers), len(seedVehicles)); err != nil {
		logger.Warn("Failed to publish fleet seeded event", logger.Err(err))
	}

	logger.Info("Seeded fleet pool",
		logger.Int("drivers", len(seedDrivers)),
		logger.Int("vehicles", len(seedVehicles)))
	return nil
}

// proximityScore derives the driver's closeness to the pickup point. Drivers
// without a reported position score zero rather than erroring out.
func (uc *plannerUC) proximityScore(d models.DriverCandidate, pickup models.GeoPoint) float64 {
	if d.Latitude == 0 && d.Longitude == 0 {
		return 0
	}

	distance := utils.CalculateDistance(
		models.GeoPoint{Latitude: d.Latitude, Longitude: d.Longitude},
		pickup,
	)

	return utils.ProximityScore(distance, uc.cfg.Planner.SearchRadiusKm)
}

// fuelPricing resolves the fuel price and exchange rate for the account,
// falling back to the configured defaults when the account has no saved
// settings. A state-specific fuel price keyed by the route origin wins over
// the account-wide price.
func (uc *plannerUC) fuelPricing(ctx context.Context, accountID string, route models.Route) (price, rate float64, currency string) {
	price = uc.cfg.Fuel.PricePerLitre
	rate = uc.cfg.Fuel.ExchangeRate
	currency = uc.cfg.Fuel.Currency

	settings, err := uc.settings.GetSettings(ctx, accountID)
	if err != nil || settings == nil {
		if err != nil {
			logger.Debug("Falling back to default fuel pricing",
				logger.String("account_id", accountID),
				logger.Err(err))
		}
		return price, rate, currency
	}

	if settings.FuelPricePerLitre > 0 {
		price = settings.FuelPricePerLitre
	}
	if statePrice, ok := settings.FuelPricesByState[route.Origin]; ok && statePrice > 0 {
		price = statePrice
	}
	if settings.ExchangeRate > 0 {
		rate = settings.ExchangeRate
	}
	if settings.Currency != "" {
		currency = settings.Currency
	}

	return price, rate, currency
}
