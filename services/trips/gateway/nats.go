package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/triptrack/internal/pkg/constants"
	"github.com/piresc/triptrack/internal/pkg/models"
	natspkg "github.com/piresc/triptrack/internal/pkg/nats"
	"github.com/piresc/triptrack/services/trips"
)

var tripSubjects = map[models.TripStatus]string{
	models.TripStatusCreated:    constants.SubjectTripCreated,
	models.TripStatusInProgress: constants.SubjectTripStarted,
	models.TripStatusCompleted:  constants.SubjectTripCompleted,
	models.TripStatusCancelled:  constants.SubjectTripCancelled,
}

type tripGW struct {
	natsClient *natspkg.Client
}

// NewTripGW creates a new trip gateway.
// A nil client disables publishing.
func NewTripGW(natsClient *natspkg.Client) trips.TripGW {
	return &tripGW{
		natsClient: natsClient,
	}
}

// PublishTripEvent publishes the event on the subject for its status
func (g *tripGW) PublishTripEvent(ctx context.Context, event models.TripEvent) error {
	if g.natsClient == nil {
		return nil
	}

	subject, ok := tripSubjects[event.Status]
	if !ok {
		return fmt.Errorf("no subject for trip status %q", event.Status)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal trip event: %w", err)
	}

	return g.natsClient.Publish(subject, data)
}
