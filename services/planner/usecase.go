package planner

import (
	"context"

	"github.com/fleetops/dispatch/internal/pkg/models"
)

// PlannerUC defines the interface for dispatch planning business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fleetops/dispatch/services/planner PlannerUC
type PlannerUC interface {
	PlanTrip(ctx context.Context, accountID string, req models.PlanRequest) (*models.PlanResponse, error)
	Routes(ctx context.Context) ([]models.Route, error)
	SeedFleet(ctx context.Context) error
}
