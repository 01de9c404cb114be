package usecase

import (
	"math"
	"sort"

	"github.com/fleetops/dispatch/internal/pkg/models"
	"github.com/fleetops/dispatch/internal/utils"
)

// Scoring weights. The three driver components sum to 100; hours worked is
// clamped before normalizing so overtime never produces a negative
// fatigue contribution.
const (
	maxPerformanceRating = 5.0
	fatigueClampHours    = 9.0
	performanceWeight    = 40.0
	fatigueWeight        = 30.0
	proximityWeight      = 30.0

	fuelEfficiencyFactor = 5.0

	penaltyPoor       = 30.0
	penaltyNeedsCheck = 15.0
)

// ScoreDriver computes a bounded ranking score for a driver candidate from
// performance, fatigue and proximity. It is a total function: malformed
// inputs propagate as NaN or clamp to the [0,100] bound instead of failing.
func ScoreDriver(performanceRating, hoursWorked, proximityScore float64) float64 {
	performance := performanceRating / maxPerformanceRating * performanceWeight
	fatigue := (1 - math.Min(hoursWorked, fatigueClampHours)/fatigueClampHours) * fatigueWeight
	proximity := proximityScore / 100 * proximityWeight

	return utils.Round2(utils.Clamp(performance+fatigue+proximity, 0, 100))
}

// ScoreVehicle computes a bounded ranking score for a vehicle candidate from
// fuel efficiency, utilization and maintenance condition.
func ScoreVehicle(fuelEfficiency, utilizationScore float64, status models.MaintenanceStatus) float64 {
	var penalty float64
	switch status {
	case models.MaintenancePoor:
		penalty = penaltyPoor
	case models.MaintenanceNeedsCheck:
		penalty = penaltyNeedsCheck
	}

	raw := fuelEfficiency*fuelEfficiencyFactor + utilizationScore - penalty

	return utils.Round2(utils.Clamp(raw, 0, 100))
}

// RankDrivers scores each candidate and returns a new slice sorted by score
// descending, ties broken by candidate ID ascending. The top entry is
// flagged Recommended; the caller may still pick any candidate.
func RankDrivers(drivers []models.DriverCandidate) []models.DriverCandidate {
	ranked := make([]models.DriverCandidate, len(drivers))
	copy(ranked, drivers)

	for i := range ranked {
		ranked[i].Score = ScoreDriver(ranked[i].PerformanceRating, ranked[i].HoursWorked, ranked[i].ProximityScore)
		ranked[i].Recommended = false
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ID < ranked[j].ID
	})

	if len(ranked) > 0 {
		ranked[0].Recommended = true
	}

	return ranked
}

// RankVehicles scores each candidate and returns a new slice with the same
// ranking policy as RankDrivers.
func RankVehicles(vehicles []models.VehicleCandidate) []models.VehicleCandidate {
	ranked := make([]models.VehicleCandidate, len(vehicles))
	copy(ranked, vehicles)

	for i := range ranked {
		ranked[i].Score = ScoreVehicle(ranked[i].FuelEfficiency, ranked[i].UtilizationScore, ranked[i].MaintenanceStatus)
		ranked[i].Recommended = false
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ID < ranked[j].ID
	})

	if len(ranked) > 0 {
		ranked[0].Recommended = true
	}

	return ranked
}

// EstimateFuelCost derives the display fuel cost for a vehicle on a route:
// (distance / efficiency) x fuel price, converted through the exchange rate.
// When the distance is unparseable or the efficiency is missing the estimate
// is marked unavailable rather than producing a number.
func EstimateFuelCost(vehicleID string, fuelEfficiency float64, distance string, pricePerLitre, exchangeRate float64, currency string) models.FuelEstimate {
	if fuelEfficiency <= 0 || math.IsNaN(fuelEfficiency) {
		return models.FuelEstimate{VehicleID: vehicleID, Available: false}
	}

	distanceKm, err := utils.ParseDistanceKm(distance)
	if err != nil {
		return models.FuelEstimate{VehicleID: vehicleID, Available: false}
	}

	cost := distanceKm / fuelEfficiency * pricePerLitre * exchangeRate

	return models.FuelEstimate{
		VehicleID: vehicleID,
		Available: true,
		Cost:      utils.Round2(cost),
		Currency:  currency,
	}
}
