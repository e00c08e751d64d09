package constants

// Redis key formats
const (
	// Trip Registry
	KeyTrip = "trip:%s" // Format: trip:{trip_id}

	// Location Cache
	KeyTripLocation = "trip:%s:location" // Format: trip:{trip_id}:location
)
