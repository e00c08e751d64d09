package location

import (
	"context"

	"github.com/piresc/triptrack/internal/pkg/models"
)

// LocationGW defines the interface for location event publishing
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/triptrack/services/location LocationGW
type LocationGW interface {
	PublishLocationUpdated(ctx context.Context, event models.LocationEvent) error
}
