package gateway

import (
	"context"
	"time"

	"github.com/fleetops/dispatch/internal/pkg/constants"
	"github.com/fleetops/dispatch/internal/pkg/models"
	natspkg "github.com/fleetops/dispatch/internal/pkg/nats"
	"github.com/fleetops/dispatch/services/planner"
)

// FleetGW handles NATS publishing for fleet pool events
type FleetGW struct {
	producer *natspkg.Producer
}

// NewFleetGW creates a new fleet gateway
func NewFleetGW(client *natspkg.Client) planner.FleetGW {
	return &FleetGW{
		producer: natspkg.NewProducer(client),
	}
}

// PublishFleetSeeded publishes a fleet seeded event to NATS
func (g *FleetGW) PublishFleetSeeded(ctx context.Context, driverCount, vehicleCount int) error {
	return g.producer.Publish(constants.SubjectFleetSeeded, models.FleetSeededMessage{
		Drivers:    driverCount,
		Vehicles:   vehicleCount,
		OccurredAt: time.Now(),
	})
}
