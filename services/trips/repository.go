package trips

import (
	"context"

	"github.com/piresc/triptrack/internal/pkg/models"
)

// TripRepo defines the interface for trip storage.
// SaveTrip always resets the record's expiry; GetTrip never does.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/triptrack/services/trips TripRepo
type TripRepo interface {
	SaveTrip(ctx context.Context, trip *models.Trip) error
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)
}
