package planner

import (
	"context"

	"github.com/fleetops/dispatch/internal/pkg/models"
)

// FleetRepo defines the interface for fleet candidate pool access
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/fleetops/dispatch/services/planner FleetRepo
type FleetRepo interface {
	GetDriverCandidates(ctx context.Context) ([]models.DriverCandidate, error)
	GetVehicleCandidates(ctx context.Context) ([]models.VehicleCandidate, error)
	SeedFleet(ctx context.Context, drivers []models.DriverCandidate, vehicles []models.VehicleCandidate) error
}

// SettingsSource supplies the per-account settings consumed by the fuel cost
// derivation. Implemented by the settings repository.
type SettingsSource interface {
	GetSettings(ctx context.Context, accountID string) (*models.DispatchSettings, error)
}
