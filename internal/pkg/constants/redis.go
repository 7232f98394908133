package constants

// Redis key formats
const (
	// Location Service
	KeyDriverLocation = "driver:location:%s" // Format: driver:location:{driver_id}
	KeyDriverGeo      = "driver:geo"         // Geo set of every reported driver position
	KeyLiveDrivers    = "drivers:live"       // Set of driver IDs that have reported at least once

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)

// Redis hash fields of a driver's live state
const (
	FieldLatitude   = "lat"
	FieldLongitude  = "lng"
	FieldTimestamp  = "ts" // capture time, unix microseconds
	FieldDriverID   = "driver_id"
	FieldVehicleID  = "vehicle_id"
	FieldSpeed      = "speed"
	FieldAccuracy   = "accuracy"
	FieldGPSEnabled = "gps"
	FieldGeohash    = "geohash"
)
