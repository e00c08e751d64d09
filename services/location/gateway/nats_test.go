package gateway

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/piresc/triptrack/internal/pkg/constants"
	"github.com/piresc/triptrack/internal/pkg/models"
	natspkg "github.com/piresc/triptrack/internal/pkg/nats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishLocationUpdated(t *testing.T) {
	opts := natsserver.DefaultTestOptions
	opts.Port = 8372
	s := natsserver.RunServer(&opts)
	defer s.Shutdown()

	client, err := natspkg.NewClient(s.ClientURL(), "location-gateway-test")
	require.NoError(t, err)
	defer client.Close()

	sub, err := client.GetConn().SubscribeSync(constants.SubjectLocationUpdated)
	require.NoError(t, err)
	require.NoError(t, client.GetConn().Flush())

	event := models.LocationEvent{
		TripID:  "trip_1_abc",
		Geohash: "ucfv0nf",
		Location: models.LocationSnapshot{
			Latitude:  55.76,
			Longitude: 37.62,
			Speed:     12.5,
			Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	gw := NewLocationGW(client)
	require.NoError(t, gw.PublishLocationUpdated(context.Background(), event))

	msg, err := sub.NextMsg(2 * time.Second)
	require.NoError(t, err)

	var got models.LocationEvent
	require.NoError(t, json.Unmarshal(msg.Data, &got))
	assert.Equal(t, event, got)
}

func TestPublishLocationUpdated_NilClient(t *testing.T) {
	gw := NewLocationGW(nil)

	assert.NoError(t, gw.PublishLocationUpdated(context.Background(), models.LocationEvent{TripID: "trip_1_abc"}))
}
