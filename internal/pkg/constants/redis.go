package constants

// Redis key formats
const (
	// Fleet pool
	KeyFleetDriver    = "fleet:driver:%s"  // Format: fleet:driver:{driver_id}
	KeyFleetVehicle   = "fleet:vehicle:%s" // Format: fleet:vehicle:{vehicle_id}
	KeyFleetDriverIDs = "fleet:drivers"    // Set of all driver IDs
	KeyFleetVehicles  = "fleet:vehicles"   // Set of all vehicle IDs
	KeyDriverGeo      = "fleet:driver:geo" // Geo set of driver positions
)

// Redis hash fields
const (
	FieldName              = "name"
	FieldLocation          = "location"
	FieldGeohash           = "geohash"
	FieldPerformanceRating = "performance_rating"
	FieldHoursWorked       = "hours_worked"
	FieldType              = "type"
	FieldCapacity          = "capacity"
	FieldFuelEfficiency    = "fuel_efficiency"
	FieldUtilizationScore  = "utilization_score"
	FieldMaintenanceStatus = "maintenance_status"
)
