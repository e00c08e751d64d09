package constants

// NATS Subjects
const (
	// Trip lifecycle events
	SubjectTripCreated   = "trips.created"
	SubjectTripStarted   = "trips.started"
	SubjectTripCompleted = "trips.completed"
	SubjectTripCancelled = "trips.cancelled"

	// Location events
	SubjectLocationUpdated = "trips.location.updated"
)
