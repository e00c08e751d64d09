package constants

// Error messages returned to HTTP clients
const (
	MsgTripNotFound     = "Trip not found"
	MsgLocationNotFound = "Location not found"
	MsgInvalidBody      = "Invalid request body"
)
