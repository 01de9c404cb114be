package usecase_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fleetops/dispatch/internal/pkg/models"
	"github.com/fleetops/dispatch/services/planner/usecase"
)

func TestScoreDriver_PerfectInputs(t *testing.T) {
	score := usecase.ScoreDriver(5, 0, 100)
	assert.Equal(t, 100.00, score)
}

func TestScoreDriver_WorstInputs(t *testing.T) {
	// Lowest rating, fully fatigued, zero proximity: only the rating
	// component contributes
	score := usecase.ScoreDriver(1, 9, 0)
	assert.Equal(t, 8.00, score)
}

func TestScoreDriver_OvertimeClampsToNineHours(t *testing.T) {
	atClamp := usecase.ScoreDriver(3, 9, 50)
	overtime := usecase.ScoreDriver(3, 15, 50)
	assert.Equal(t, atClamp, overtime)
}

func TestScoreDriver_Deterministic(t *testing.T) {
	first := usecase.ScoreDriver(4.3, 6.5, 72.18)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, usecase.ScoreDriver(4.3, 6.5, 72.18))
	}
}

func TestScoreDriver_RoundedToTwoDecimals(t *testing.T) {
	score := usecase.ScoreDriver(4.6, 3, 92.5)
	assert.Equal(t, score, math.Round(score*100)/100)
}

func TestScoreDriver_NaNPropagates(t *testing.T) {
	score := usecase.ScoreDriver(math.NaN(), 3, 50)
	assert.True(t, math.IsNaN(score))
}

func TestScoreDriver_ClampsAboveHundred(t *testing.T) {
	// Ratings above the scale max would push past 100 without the clamp
	score := usecase.ScoreDriver(10, 0, 100)
	assert.Equal(t, 100.00, score)
}

func TestScoreVehicle_EfficientGoodVehicle(t *testing.T) {
	// 12*5 + 65 = 125 clamps to the upper bound
	score := usecase.ScoreVehicle(12, 65, models.MaintenanceGood)
	assert.Equal(t, 100.00, score)
}

func TestScoreVehicle_PoorMaintenancePenalty(t *testing.T) {
	// 5*5 + 90 - 30 = 85
	score := usecase.ScoreVehicle(5, 90, models.MaintenancePoor)
	assert.Equal(t, 85.00, score)
}

func TestScoreVehicle_NeedsCheckPenalty(t *testing.T) {
	// 10*5 + 40 - 15 = 75
	score := usecase.ScoreVehicle(10, 40, models.MaintenanceNeedsCheck)
	assert.Equal(t, 75.00, score)
}

func TestScoreVehicle_ClampsBelowZero(t *testing.T) {
	score := usecase.ScoreVehicle(0, 10, models.MaintenancePoor)
	assert.Equal(t, 0.00, score)
}

func TestRankDrivers_OrderAndRecommendation(t *testing.T) {
	drivers := []models.DriverCandidate{
		{ID: "DRV-002", PerformanceRating: 4.1, HoursWorked: 7, ProximityScore: 40},
		{ID: "DRV-001", PerformanceRating: 4.6, HoursWorked: 3, ProximityScore: 90},
		{ID: "DRV-003", PerformanceRating: 3.7, HoursWorked: 1, ProximityScore: 20},
	}

	ranked := usecase.RankDrivers(drivers)

	assert.Len(t, ranked, 3)
	assert.Equal(t, "DRV-001", ranked[0].ID)
	assert.True(t, ranked[0].Recommended)
	assert.False(t, ranked[1].Recommended)
	assert.False(t, ranked[2].Recommended)
	assert.GreaterOrEqual(t, ranked[0].Score, ranked[1].Score)
	assert.GreaterOrEqual(t, ranked[1].Score, ranked[2].Score)
}

func TestRankDrivers_TieBreaksByID(t *testing.T) {
	// Identical inputs produce identical scores; order falls back to ID
	drivers := []models.DriverCandidate{
		{ID: "DRV-B", PerformanceRating: 4, HoursWorked: 2, ProximityScore: 50},
		{ID: "DRV-A", PerformanceRating: 4, HoursWorked: 2, ProximityScore: 50},
	}

	ranked := usecase.RankDrivers(drivers)
	assert.Equal(t, "DRV-A", ranked[0].ID)
	assert.Equal(t, "DRV-B", ranked[1].ID)
	assert.Equal(t, ranked[0].Score, ranked[1].Score)
}

func TestRankDrivers_DoesNotMutateInput(t *testing.T) {
	drivers := []models.DriverCandidate{
		{ID: "DRV-001", PerformanceRating: 2, HoursWorked: 8, ProximityScore: 10},
		{ID: "DRV-002", PerformanceRating: 5, HoursWorked: 0, ProximityScore: 95},
	}

	usecase.RankDrivers(drivers)

	assert.Equal(t, "DRV-001", drivers[0].ID)
	assert.Zero(t, drivers[0].Score)
	assert.False(t, drivers[1].Recommended)
}

func TestRankDrivers_Empty(t *testing.T) {
	assert.Empty(t, usecase.RankDrivers(nil))
}

func TestRankVehicles_TieBreaksByID(t *testing.T) {
	vehicles := []models.VehicleCandidate{
		{ID: "VEH-2", FuelEfficiency: 8, UtilizationScore: 50, MaintenanceStatus: models.MaintenanceGood},
		{ID: "VEH-1", FuelEfficiency: 8, UtilizationScore: 50, MaintenanceStatus: models.MaintenanceGood},
	}

	ranked := usecase.RankVehicles(vehicles)
	assert.Equal(t, "VEH-1", ranked[0].ID)
	assert.True(t, ranked[0].Recommended)
}

func TestEstimateFuelCost_Derivation(t *testing.T) {
	// 150 km / 12 km per litre * 1.2 * 83 = 1245
	estimate := usecase.EstimateFuelCost("VEH-001", 12, "150 km", 1.2, 83, "INR")

	assert.True(t, estimate.Available)
	assert.Equal(t, "VEH-001", estimate.VehicleID)
	assert.Equal(t, 1245.00, estimate.Cost)
	assert.Equal(t, "INR", estimate.Currency)
}

func TestEstimateFuelCost_ZeroEfficiencyUnavailable(t *testing.T) {
	estimate := usecase.EstimateFuelCost("VEH-009", 0, "150 km", 1.2, 83, "INR")

	assert.False(t, estimate.Available)
	assert.Zero(t, estimate.Cost)
}

func TestEstimateFuelCost_UnparseableDistanceUnavailable(t *testing.T) {
	estimate := usecase.EstimateFuelCost("VEH-001", 12, "three hundred km", 1.2, 83, "INR")
	assert.False(t, estimate.Available)
}

func TestEstimateFuelCost_NaNEfficiencyUnavailable(t *testing.T) {
	estimate := usecase.EstimateFuelCost("VEH-001", math.NaN(), "150 km", 1.2, 83, "INR")
	assert.False(t, estimate.Available)
}
