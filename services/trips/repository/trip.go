package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fleetops/dispatch/internal/pkg/models"
	"github.com/fleetops/dispatch/services/trips"
)

// TripRepo is the Postgres-backed trip store. One account's trips form one
// logical collection scoped by account_id.
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateTrip persists a newly confirmed trip
func (r *TripRepo) CreateTrip(ctx context.Context, trip *models.Trip) error {
	query := `
		INSERT INTO trips (
			id, account_id,
			route_id, origin, destination, distance, eta_hours, cost, risk_rating, delivery_time_slot, route_preference,
			driver_id, driver_name, driver_location, driver_performance_rating, driver_hours_worked, driver_proximity_score, driver_score,
			vehicle_id, vehicle_type, vehicle_capacity, vehicle_fuel_efficiency, vehicle_utilization_score, vehicle_maintenance_status, vehicle_score,
			status, actual_hours, delivery_status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		trip.ID,
		trip.AccountID,
		trip.Route.ID,
		trip.Route.Origin,
		trip.Route.Destination,
		trip.Route.Distance,
		trip.Route.ETAHours,
		trip.Route.Cost,
		trip.Route.RiskRating,
		trip.Route.DeliveryTimeSlot,
		trip.Route.RoutePreference,
		trip.AssignedDriver.DriverID,
		trip.AssignedDriver.Name,
		trip.AssignedDriver.Location,
		trip.AssignedDriver.PerformanceRating,
		trip.AssignedDriver.HoursWorked,
		trip.AssignedDriver.ProximityScore,
		trip.AssignedDriver.Score,
		trip.AssignedVehicle.VehicleID,
		trip.AssignedVehicle.Type,
		trip.AssignedVehicle.Capacity,
		trip.AssignedVehicle.FuelEfficiency,
		trip.AssignedVehicle.UtilizationScore,
		string(trip.AssignedVehicle.MaintenanceStatus),
		trip.AssignedVehicle.Score,
		trip.Status,
		trip.ActualHours,
		trip.DeliveryStatus,
		trip.CreatedAt,
		trip.UpdatedAt,
	)

	return err
}

// UpdateTripStatus persists a lifecycle transition. The status change is the
// unit of persistence; no other field is touched.
func (r *TripRepo) UpdateTripStatus(ctx context.Context, accountID, tripID string, status models.TripStatus) error {
	query := `UPDATE trips SET status = $1, updated_at = $2 WHERE id = $3 AND account_id = $4`

	result, err := r.db.ExecContext(ctx, query, status, time.Now(), tripID, accountID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return trips.ErrTripNotFound
	}

	return nil
}

const tripColumns = `
	id, account_id,
	route_id, origin, destination, distance, eta_hours, cost, risk_rating, delivery_time_slot, route_preference,
	driver_id, driver_name, driver_location, driver_performance_rating, driver_hours_worked, driver_proximity_score, driver_score,
	vehicle_id, vehicle_type, vehicle_capacity, vehicle_fuel_efficiency, vehicle_utilization_score, vehicle_maintenance_status, vehicle_score,
	status, actual_hours, delivery_status, created_at, updated_at
`

// GetTrip retrieves one trip within the account scope
func (r *TripRepo) GetTrip(ctx context.Context, accountID, tripID string) (*models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1 AND account_id = $2`

	row := r.db.QueryRowContext(ctx, query, tripID, accountID)

	trip, err := scanTrip(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trips.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return trip, nil
}

// ListTrips retrieves the account's trips, optionally narrowed by status,
// newest first
func (r *TripRepo) ListTrips(ctx context.Context, accountID string, filter trips.TripFilter) ([]models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE account_id = $1`
	args := []interface{}{accountID}

	if filter.Status != "" {
		query += ` AND status = $2`
		args = append(args, filter.Status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var result []models.Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		result = append(result, *trip)
	}

	return result, rows.Err()
}

// rowScanner covers both sql.Row and sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTrip(row rowScanner) (*models.Trip, error) {
	trip := &models.Trip{}
	var maintenanceStatus string

	err := row.Scan(
		&trip.ID,
		&trip.AccountID,
		&trip.Route.ID,
		&trip.Route.Origin,
		&trip.Route.Destination,
		&trip.Route.Distance,
		&trip.Route.ETAHours,
		&trip.Route.Cost,
		&trip.Route.RiskRating,
		&trip.Route.DeliveryTimeSlot,
		&trip.Route.RoutePreference,
		&trip.AssignedDriver.DriverID,
		&trip.AssignedDriver.Name,
		&trip.AssignedDriver.Location,
		&trip.AssignedDriver.PerformanceRating,
		&trip.AssignedDriver.HoursWorked,
		&trip.AssignedDriver.ProximityScore,
		&trip.AssignedDriver.Score,
		&trip.AssignedVehicle.VehicleID,
		&trip.AssignedVehicle.Type,
		&trip.AssignedVehicle.Capacity,
		&trip.AssignedVehicle.FuelEfficiency,
		&trip.AssignedVehicle.UtilizationScore,
		&maintenanceStatus,
		&trip.AssignedVehicle.Score,
		&trip.Status,
		&trip.ActualHours,
		&trip.DeliveryStatus,
		&trip.CreatedAt,
		&trip.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	trip.AssignedVehicle.MaintenanceStatus = models.MaintenanceStatus(maintenanceStatus)
	return trip, nil
}
