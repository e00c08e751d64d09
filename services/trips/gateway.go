package trips

import (
	"context"

	"github.com/piresc/triptrack/internal/pkg/models"
)

// TripGW defines the interface for trip event publishing
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/triptrack/services/trips TripGW
type TripGW interface {
	PublishTripEvent(ctx context.Context, event models.TripEvent) error
}
