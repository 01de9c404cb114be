package usecase_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/fleetops/dispatch/internal/pkg/models"
	"github.com/fleetops/dispatch/services/planner"
	"github.com/fleetops/dispatch/services/planner/mocks"
	"github.com/fleetops/dispatch/services/planner/usecase"
)

func testConfig() *models.Config {
	return &models.Config{
		Planner: models.PlannerConfig{SearchRadiusKm: 50},
		Fuel: models.FuelConfig{
			PricePerLitre: 1.2,
			ExchangeRate:  83,
			Currency:      "INR",
		},
	}
}

func TestPlanTrip_RanksCandidatesAndEstimatesFuel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFleet := mocks.NewMockFleetRepo(ctrl)
	mockSettings := mocks.NewMockSettingsSource(ctrl)

	drivers := []models.DriverCandidate{
		{ID: "DRV-002", Name: "Amit Singh", Latitude: 19.1197, Longitude: 72.8464, PerformanceRating: 4.1, HoursWorked: 7},
		{ID: "DRV-001", Name: "Rajesh Kumar", Latitude: 18.9696, Longitude: 72.8195, PerformanceRating: 4.6, HoursWorked: 3},
	}
	vehicles := []models.VehicleCandidate{
		{ID: "VEH-002", Type: "Cargo Van", FuelEfficiency: 10, UtilizationScore: 80, MaintenanceStatus: models.MaintenanceNeedsCheck},
		{ID: "VEH-001", Type: "Mini Truck", FuelEfficiency: 12, UtilizationScore: 65, MaintenanceStatus: models.MaintenanceGood},
	}

	mockFleet.EXPECT().GetDriverCandidates(gomock.Any()).Return(drivers, nil)
	mockFleet.EXPECT().GetVehicleCandidates(gomock.Any()).Return(vehicles, nil)
	mockSettings.EXPECT().GetSettings(gomock.Any(), "acct-1").Return(nil, nil)

	uc, err := usecase.NewPlannerUC(testConfig(), mockFleet, mocks.NewMockFleetGW(ctrl), mockSettings)
	assert.NoError(t, err)

	plan, err := uc.PlanTrip(context.Background(), "acct-1", models.PlanRequest{
		RouteID: "MUM-PUN",
		Pickup:  models.GeoPoint{Latitude: 18.9696, Longitude: 72.8195},
	})
	assert.NoError(t, err)

	assert.Equal(t, "MUM-PUN", plan.Route.ID)
	assert.Len(t, plan.Drivers, 2)
	assert.Len(t, plan.Vehicles, 2)
	assert.Len(t, plan.FuelEstimates, 2)

	// DRV-001 is at the pickup point with a better rating and fewer hours
	assert.Equal(t, "DRV-001", plan.Drivers[0].ID)
	assert.True(t, plan.Drivers[0].Recommended)
	assert.Equal(t, 100.00, plan.Drivers[0].ProximityScore)

	// VEH-001 clamps to 100; VEH-002 is 10*5+80-15 = 115 -> 100 as well,
	// so the tie breaks on ID
	assert.Equal(t, "VEH-001", plan.Vehicles[0].ID)
	assert.True(t, plan.Vehicles[0].Recommended)

	// Estimates follow the ranked vehicle order
	assert.Equal(t, plan.Vehicles[0].ID, plan.FuelEstimates[0].VehicleID)
	assert.True(t, plan.FuelEstimates[0].Available)
	assert.Equal(t, "INR", plan.FuelEstimates[0].Currency)
}

func TestPlanTrip_UnknownRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFleet := mocks.NewMockFleetRepo(ctrl)
	mockSettings := mocks.NewMockSettingsSource(ctrl)

	uc, err := usecase.NewPlannerUC(testConfig(), mockFleet, mocks.NewMockFleetGW(ctrl), mockSettings)
	assert.NoError(t, err)

	_, err = uc.PlanTrip(context.Background(), "acct-1", models.PlanRequest{RouteID: "NOPE"})
	assert.ErrorIs(t, err, planner.ErrRouteNotFound)
}

func TestPlanTrip_SettingsOverrideFuelPricing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFleet := mocks.NewMockFleetRepo(ctrl)
	mockSettings := mocks.NewMockSettingsSource(ctrl)

	vehicles := []models.VehicleCandidate{
		{ID: "VEH-001", FuelEfficiency: 12, UtilizationScore: 65, MaintenanceStatus: models.MaintenanceGood},
	}

	mockFleet.EXPECT().GetDriverCandidates(gomock.Any()).Return(nil, nil)
	mockFleet.EXPECT().GetVehicleCandidates(gomock.Any()).Return(vehicles, nil)
	mockSettings.EXPECT().GetSettings(gomock.Any(), "acct-1").Return(&models.DispatchSettings{
		AccountID:         "acct-1",
		FuelPricePerLitre: 2.0,
		ExchangeRate:      80,
		Currency:          "USD",
	}, nil)

	uc, err := usecase.NewPlannerUC(testConfig(), mockFleet, mocks.NewMockFleetGW(ctrl), mockSettings)
	assert.NoError(t, err)

	plan, err := uc.PlanTrip(context.Background(), "acct-1", models.PlanRequest{RouteID: "MUM-PUN"})
	assert.NoError(t, err)

	// 150 / 12 * 2.0 * 80 = 2000
	assert.Equal(t, 2000.00, plan.FuelEstimates[0].Cost)
	assert.Equal(t, "USD", plan.FuelEstimates[0].Currency)
}

func TestPlanTrip_StatePriceWinsOverAccountPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFleet := mocks.NewMockFleetRepo(ctrl)
	mockSettings := mocks.NewMockSettingsSource(ctrl)

	vehicles := []models.VehicleCandidate{
		{ID: "VEH-001", FuelEfficiency: 15, UtilizationScore: 65, MaintenanceStatus: models.MaintenanceGood},
	}

	mockFleet.EXPECT().GetDriverCandidates(gomock.Any()).Return(nil, nil)
	mockFleet.EXPECT().GetVehicleCandidates(gomock.Any()).Return(vehicles, nil)
	mockSettings.EXPECT().GetSettings(gomock.Any(), "acct-1").Return(&models.DispatchSettings{
		AccountID:         "acct-1",
		FuelPricePerLitre: 2.0,
		FuelPricesByState: map[string]float64{"Mumbai": 1.5},
		ExchangeRate:      100,
	}, nil)

	uc, err := usecase.NewPlannerUC(testConfig(), mockFleet, mocks.NewMockFleetGW(ctrl), mockSettings)
	assert.NoError(t, err)

	plan, err := uc.PlanTrip(context.Background(), "acct-1", models.PlanRequest{RouteID: "MUM-PUN"})
	assert.NoError(t, err)

	// 150 / 15 * 1.5 * 100 = 1500, using the Mumbai state price
	assert.Equal(t, 1500.00, plan.FuelEstimates[0].Cost)
}

func TestPlanTrip_SettingsErrorFallsBackToDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFleet := mocks.NewMockFleetRepo(ctrl)
	mockSettings := mocks.NewMockSettingsSource(ctrl)

	vehicles := []models.VehicleCandidate{
		{ID: "VEH-001", FuelEfficiency: 12, UtilizationScore: 65, MaintenanceStatus: models.MaintenanceGood},
	}

	mockFleet.EXPECT().GetDriverCandidates(gomock.Any()).Return(nil, nil)
	mockFleet.EXPECT().GetVehicleCandidates(gomock.Any()).Return(vehicles, nil)
	mockSettings.EXPECT().GetSettings(gomock.Any(), "acct-1").Return(nil, assert.AnError)

	uc, err := usecase.NewPlannerUC(testConfig(), mockFleet, mocks.NewMockFleetGW(ctrl), mockSettings)
	assert.NoError(t, err)

	plan, err := uc.PlanTrip(context.Background(), "acct-1", models.PlanRequest{RouteID: "MUM-PUN"})
	assert.NoError(t, err)

	// 150 / 12 * 1.2 * 83 = 1245 from the configured defaults
	assert.Equal(t, 1245.00, plan.FuelEstimates[0].Cost)
}

func TestRoutes_ReturnsCatalogCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, err := usecase.NewPlannerUC(testConfig(), mocks.NewMockFleetRepo(ctrl), mocks.NewMockFleetGW(ctrl), mocks.NewMockSettingsSource(ctrl))
	assert.NoError(t, err)

	routes, err := uc.Routes(context.Background())
	assert.NoError(t, err)
	assert.NotEmpty(t, routes)

	// Mutating the returned slice must not leak into later calls
	routes[0].Origin = "Nowhere"

	again, err := uc.Routes(context.Background())
	assert.NoError(t, err)
	assert.NotEqual(t, "Nowhere", again[0].Origin)
}

func TestSeedFleet_DelegatesToRepo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFleet := mocks.NewMockFleetRepo(ctrl)
	mockFleet.EXPECT().SeedFleet(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	mockGW := mocks.NewMockFleetGW(ctrl)
	mockGW.EXPECT().PublishFleetSeeded(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	uc, err := usecase.NewPlannerUC(testConfig(), mockFleet, mockGW, mocks.NewMockSettingsSource(ctrl))
	assert.NoError(t, err)

	assert.NoError(t, uc.SeedFleet(context.Background()))
}
