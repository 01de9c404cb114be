package planner

import "context"

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/fleetops/dispatch/services/planner FleetGW

// FleetGW publishes fleet pool events
type FleetGW interface {
	PublishFleetSeeded(ctx context.Context, driverCount, vehicleCount int) error
}
