package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/go-redis/redis/v8"

	"github.com/fleetops/dispatch/internal/pkg/constants"
	"github.com/fleetops/dispatch/internal/pkg/models"
	"github.com/fleetops/dispatch/internal/utils"
)

// geohashPrecision gives roughly street-block resolution, enough for the
// dashboard's position display
const geohashPrecision = 7

// FleetRepo is the Redis-backed fleet candidate pool
type FleetRepo struct {
	cfg    *models.Config
	client *redis.Client
}

// NewFleetRepository creates a new fleet repository
func NewFleetRepository(cfg *models.Config, client *redis.Client) *FleetRepo {
	return &FleetRepo{
		cfg:    cfg,
		client: client,
	}
}

// SeedFleet replaces the candidate pool with the given drivers and vehicles.
// Driver positions go into a geo set so proximity can be derived per pickup.
func (r *FleetRepo) SeedFleet(ctx context.Context, drivers []models.DriverCandidate, vehicles []models.VehicleCandidate) error {
	pipe := r.client.TxPipeline()

	pipe.Del(ctx, constants.KeyFleetDriverIDs, constants.KeyFleetVehicles, constants.KeyDriverGeo)

	for _, d := range drivers {
		key := fmt.Sprintf(constants.KeyFleetDriver, d.ID)
		pipe.HSet(ctx, key, map[string]interface{}{
			constants.FieldName:              d.Name,
			constants.FieldLocation:          d.Location,
			constants.FieldGeohash:           utils.EncodeLocation(models.GeoPoint{Latitude: d.Latitude, Longitude: d.Longitude}, geohashPrecision),
			constants.FieldPerformanceRating: d.PerformanceRating,
			constants.FieldHoursWorked:       d.HoursWorked,
		})
		pipe.SAdd(ctx, constants.KeyFleetDriverIDs, d.ID)
		pipe.GeoAdd(ctx, constants.KeyDriverGeo, &redis.GeoLocation{
			Name:      d.ID,
			Latitude:  d.Latitude,
			Longitude: d.Longitude,
		})
	}

	for _, v := range vehicles {
		key := fmt.Sprintf(constants.KeyFleetVehicle, v.ID)
		pipe.HSet(ctx, key, map[string]interface{}{
			constants.FieldType:              v.Type,
			constants.FieldCapacity:          v.Capacity,
			constants.FieldFuelEfficiency:    v.FuelEfficiency,
			constants.FieldUtilizationScore:  v.UtilizationScore,
			constants.FieldMaintenanceStatus: string(v.MaintenanceStatus),
		})
		pipe.SAdd(ctx, constants.KeyFleetVehicles, v.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to seed fleet pool: %w", err)
	}

	return nil
}

// GetDriverCandidates loads all driver candidates with their last reported
// positions. IDs are sorted so rankings see a deterministic input order.
func (r *FleetRepo) GetDriverCandidates(ctx context.Context) ([]models.DriverCandidate, error) {
	ids, err := r.client.SMembers(ctx, constants.KeyFleetDriverIDs).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list driver ids: %w", err)
	}
	sort.Strings(ids)

	drivers := make([]models.DriverCandidate, 0, len(ids))
	for _, id := range ids {
		fields, err := r.client.HGetAll(ctx, fmt.Sprintf(constants.KeyFleetDriver, id)).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to load driver %s: %w", id, err)
		}
		if len(fields) == 0 {
			continue
		}

		driver := models.DriverCandidate{
			ID:                id,
			Name:              fields[constants.FieldName],
			Location:          fields[constants.FieldLocation],
			Geohash:           fields[constants.FieldGeohash],
			PerformanceRating: parseFloat(fields[constants.FieldPerformanceRating]),
			HoursWorked:       parseFloat(fields[constants.FieldHoursWorked]),
		}

		positions, err := r.client.GeoPos(ctx, constants.KeyDriverGeo, id).Result()
		if err == nil && len(positions) == 1 && positions[0] != nil {
			driver.Latitude = positions[0].Latitude
			driver.Longitude = positions[0].Longitude
		}

		drivers = append(drivers, driver)
	}

	return drivers, nil
}

// GetVehicleCandidates loads all vehicle candidates
func (r *FleetRepo) GetVehicleCandidates(ctx context.Context) ([]models.VehicleCandidate, error) {
	ids, err := r.client.SMembers(ctx, constants.KeyFleetVehicles).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicle ids: %w", err)
	}
	sort.Strings(ids)

	vehicles := make([]models.VehicleCandidate, 0, len(ids))
	for _, id := range ids {
		fields, err := r.client.HGetAll(ctx, fmt.Sprintf(constants.KeyFleetVehicle, id)).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to load vehicle %s: %w", id, err)
		}
		if len(fields) == 0 {
			continue
		}

		vehicles = append(vehicles, models.VehicleCandidate{
			ID:                id,
			Type:              fields[constants.FieldType],
			Capacity:          fields[constants.FieldCapacity],
			FuelEfficiency:    parseFloat(fields[constants.FieldFuelEfficiency]),
			UtilizationScore:  parseFloat(fields[constants.FieldUtilizationScore]),
			MaintenanceStatus: models.MaintenanceStatus(fields[constants.FieldMaintenanceStatus]),
		})
	}

	return vehicles, nil
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
