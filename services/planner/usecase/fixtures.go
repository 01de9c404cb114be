package usecase

import "github.com/fleetops/dispatch/internal/pkg/models"

// Fixture fleet used to seed a fresh deployment. Positions are spread around
// the catalog origin cities so proximity scores differ per pickup point.
var seedDrivers = []models.DriverCandidate{
	{
		ID:                "DRV-001",
		Name:              "Rajesh Kumar",
		Location:          "Mumbai Central Depot",
		Latitude:          18.9696,
		Longitude:         72.8195,
		PerformanceRating: 4.6,
		HoursWorked:       3,
	},
	{
		ID:                "DRV-002",
		Name:              "Amit Singh",
		Location:          "Andheri Hub",
		Latitude:          19.1197,
		Longitude:         72.8468,
		PerformanceRating: 4.1,
		HoursWorked:       7,
	},
	{
		ID:                "DRV-003",
		Name:              "Suresh Patel",
		Location:          "Thane Yard",
		Latitude:          19.2183,
		Longitude:         72.9781,
		PerformanceRating: 3.7,
		HoursWorked:       1,
	},
}

var seedVehicles = []models.VehicleCandidate{
	{
		ID:                "VEH-001",
		Type:              "Mini Truck",
		Capacity:          "1000 kg / 8 m3",
		FuelEfficiency:    12,
		UtilizationScore:  65,
		MaintenanceStatus: models.MaintenanceGood,
	},
	{
		ID:                "VEH-002",
		Type:              "Cargo Van",
		Capacity:          "750 kg / 6 m3",
		FuelEfficiency:    10,
		UtilizationScore:  80,
		MaintenanceStatus: models.MaintenanceNeedsCheck,
	},
	{
		ID:                "VEH-003",
		Type:              "Heavy Truck",
		Capacity:          "5000 kg / 24 m3",
		FuelEfficiency:    6,
		UtilizationScore:  45,
		MaintenanceStatus: models.MaintenancePoor,
	},
}
