package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/triptrack/internal/pkg/constants"
	"github.com/piresc/triptrack/internal/pkg/models"
	natspkg "github.com/piresc/triptrack/internal/pkg/nats"
	"github.com/piresc/triptrack/services/location"
)

type locationGW struct {
	natsClient *natspkg.Client
}

// NewLocationGW creates a new location gateway.
// A nil client disables publishing.
func NewLocationGW(natsClient *natspkg.Client) location.LocationGW {
	return &locationGW{
		natsClient: natsClient,
	}
}

// PublishLocationUpdated publishes a location update event to NATS
func (g *locationGW) PublishLocationUpdated(ctx context.Context, event models.LocationEvent) error {
	if g.natsClient == nil {
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal location event: %w", err)
	}

	return g.natsClient.Publish(constants.SubjectLocationUpdated, data)
}
