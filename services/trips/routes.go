package trips

import (
	"context"

	"github.com/fleetops/dispatch/internal/pkg/models"
)

// RouteSource resolves the fixed route catalog a trip is confirmed against.
// Implemented by the planner use case.
type RouteSource interface {
	Routes(ctx context.Context) ([]models.Route, error)
}
