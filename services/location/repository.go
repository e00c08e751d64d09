package location

import (
	"context"

	"github.com/piresc/triptrack/internal/pkg/models"
)

// LocationRepo defines the interface for location snapshot storage.
// StoreLocation overwrites the previous snapshot and resets its expiry.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/triptrack/services/location LocationRepo
type LocationRepo interface {
	StoreLocation(ctx context.Context, tripID string, snapshot models.LocationSnapshot) error
	GetLocation(ctx context.Context, tripID string) (*models.LocationSnapshot, error)
}
