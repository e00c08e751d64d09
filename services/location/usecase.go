package location

import (
	"context"

	"github.com/piresc/triptrack/internal/pkg/models"
)

// LocationUC defines the location cache operations.
// Updates are never checked against the trip registry: a location may be
// posted for a trip that was never created or has already expired.
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/triptrack/services/location LocationUC
type LocationUC interface {
	UpdateLocation(ctx context.Context, tripID string, req models.LocationUpdateRequest) error
	GetLocation(ctx context.Context, tripID string) (*models.LocationSnapshot, error)
}
