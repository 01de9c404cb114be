package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/fleetops/dispatch/internal/pkg/models"
	"github.com/fleetops/dispatch/services/trips"
	"github.com/fleetops/dispatch/services/trips/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func sampleTrip() *models.Trip {
	now := time.Now()
	return &models.Trip{
		ID:        uuid.New(),
		AccountID: "acct-1",
		Route: models.Route{
			ID:               "MUM-PUN",
			Origin:           "Mumbai",
			Destination:      "Pune",
			Distance:         "150 km",
			ETAHours:         3.5,
			Cost:             4200,
			RiskRating:       "Low",
			DeliveryTimeSlot: "09:00-13:00",
			RoutePreference:  "Fastest",
		},
		AssignedDriver: models.DriverSnapshot{
			DriverID:          "DRV-001",
			Name:              "Rajesh Kumar",
			Location:          "Mumbai Central Depot",
			PerformanceRating: 4.6,
			HoursWorked:       3,
			ProximityScore:    92.5,
			Score:             94.55,
		},
		AssignedVehicle: models.VehicleSnapshot{
			VehicleID:         "VEH-001",
			Type:              "Mini Truck",
			Capacity:          "1000 kg / 8 m3",
			FuelEfficiency:    12,
			UtilizationScore:  65,
			MaintenanceStatus: models.MaintenanceGood,
			Score:             100,
		},
		Status:         models.TripStatusScheduled,
		ActualHours:    3.2,
		DeliveryStatus: models.DeliveryOnTime,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestCreateTrip_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(&models.Config{}, db)

	trip := sampleTrip()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO trips")).
		WithArgs(
			trip.ID, trip.AccountID,
			trip.Route.ID, trip.Route.Origin, trip.Route.Destination, trip.Route.Distance,
			trip.Route.ETAHours, trip.Route.Cost, trip.Route.RiskRating, trip.Route.DeliveryTimeSlot, trip.Route.RoutePreference,
			trip.AssignedDriver.DriverID, trip.AssignedDriver.Name, trip.AssignedDriver.Location,
			trip.AssignedDriver.PerformanceRating, trip.AssignedDriver.HoursWorked, trip.AssignedDriver.ProximityScore, trip.AssignedDriver.Score,
			trip.AssignedVehicle.VehicleID, trip.AssignedVehicle.Type, trip.AssignedVehicle.Capacity,
			trip.AssignedVehicle.FuelEfficiency, trip.AssignedVehicle.UtilizationScore, string(trip.AssignedVehicle.MaintenanceStatus), trip.AssignedVehicle.Score,
			trip.Status, trip.ActualHours, trip.DeliveryStatus, sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateTrip(context.Background(), trip)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTripStatus_NoRows(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(&models.Config{}, db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE trips")).
		WithArgs(models.TripStatusInProgress, sqlmock.AnyArg(), "missing", "acct-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateTripStatus(context.Background(), "acct-1", "missing", models.TripStatusInProgress)
	assert.ErrorIs(t, err, trips.ErrTripNotFound)
}

func TestUpdateTripStatus_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(&models.Config{}, db)

	tripID := uuid.New().String()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE trips")).
		WithArgs(models.TripStatusCompleted, sqlmock.AnyArg(), tripID, "acct-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateTripStatus(context.Background(), "acct-1", tripID, models.TripStatusCompleted)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func tripRows(trip *models.Trip) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "account_id",
		"route_id", "origin", "destination", "distance", "eta_hours", "cost", "risk_rating", "delivery_time_slot", "route_preference",
		"driver_id", "driver_name", "driver_location", "driver_performance_rating", "driver_hours_worked", "driver_proximity_score", "driver_score",
		"vehicle_id", "vehicle_type", "vehicle_capacity", "vehicle_fuel_efficiency", "vehicle_utilization_score", "vehicle_maintenance_status", "vehicle_score",
		"status", "actual_hours", "delivery_status", "created_at", "updated_at",
	}).AddRow(
		trip.ID, trip.AccountID,
		trip.Route.ID, trip.Route.Origin, trip.Route.Destination, trip.Route.Distance,
		trip.Route.ETAHours, trip.Route.Cost, trip.Route.RiskRating, trip.Route.DeliveryTimeSlot, trip.Route.RoutePreference,
		trip.AssignedDriver.DriverID, trip.AssignedDriver.Name, trip.AssignedDriver.Location,
		trip.AssignedDriver.PerformanceRating, trip.AssignedDriver.HoursWorked, trip.AssignedDriver.ProximityScore, trip.AssignedDriver.Score,
		trip.AssignedVehicle.VehicleID, trip.AssignedVehicle.Type, trip.AssignedVehicle.Capacity,
		trip.AssignedVehicle.FuelEfficiency, trip.AssignedVehicle.UtilizationScore, string(trip.AssignedVehicle.MaintenanceStatus), trip.AssignedVehicle.Score,
		trip.Status, trip.ActualHours, trip.DeliveryStatus, trip.CreatedAt, trip.UpdatedAt,
	)
}

func TestGetTrip_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(&models.Config{}, db)

	trip := sampleTrip()

	mock.ExpectQuery(regexp.QuoteMeta("FROM trips WHERE id = $1 AND account_id = $2")).
		WithArgs(trip.ID.String(), trip.AccountID).
		WillReturnRows(tripRows(trip))

	got, err := repo.GetTrip(context.Background(), trip.AccountID, trip.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, trip.ID, got.ID)
	assert.Equal(t, "MUM-PUN", got.Route.ID)
	assert.Equal(t, models.MaintenanceGood, got.AssignedVehicle.MaintenanceStatus)
	assert.Equal(t, 94.55, got.AssignedDriver.Score)
}

func TestGetTrip_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM trips")).
		WithArgs("missing", "acct-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetTrip(context.Background(), "acct-1", "missing")
	assert.ErrorIs(t, err, trips.ErrTripNotFound)
}

func TestListTrips_FilterByStatus(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(&models.Config{}, db)

	trip := sampleTrip()

	mock.ExpectQuery(regexp.QuoteMeta("AND status = $2")).
		WithArgs("acct-1", models.TripStatusScheduled).
		WillReturnRows(tripRows(trip))

	result, err := repo.ListTrips(context.Background(), "acct-1", trips.TripFilter{Status: models.TripStatusScheduled})
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, models.TripStatusScheduled, result[0].Status)
}

func TestListTrips_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM trips WHERE account_id = $1")).
		WithArgs("acct-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	result, err := repo.ListTrips(context.Background(), "acct-1", trips.TripFilter{})
	assert.NoError(t, err)
	assert.Empty(t, result)
}
