package gateway_nats

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adhiwira/kapten/internal/pkg/constants"
	"github.com/adhiwira/kapten/internal/pkg/models"
	natspkg "github.com/adhiwira/kapten/internal/pkg/nats"
	"github.com/adhiwira/kapten/services/captain"
)

var testNatsURL = "nats://127.0.0.1:8371"

func TestMain(m *testing.M) {
	opts := natsserver.DefaultTestOptions
	opts.Port = 8371
	srv := natsserver.RunServer(&opts)
	code := m.Run()
	srv.Shutdown()
	os.Exit(code)
}

func newTestChannel(t *testing.T) (*PresenceChannel, *natspkg.Client) {
	t.Helper()
	client, err := natspkg.NewClient(testNatsURL)
	require.NoError(t, err)
	t.Cleanup(client.Close)

	ch := NewPresenceChannel("captain-1", client)
	require.NoError(t, ch.Connect(context.Background(), ""))
	t.Cleanup(func() { ch.Close() })
	return ch, client
}

func publish(t *testing.T, client *natspkg.Client, subject string, payload interface{}) {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, client.Publish(subject, data))
}

func waitEvent(t *testing.T, ch *PresenceChannel) models.PresenceEvent {
	t.Helper()
	select {
	case event := <-ch.Events():
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("expected a presence event")
		return models.PresenceEvent{}
	}
}

func TestConnect_IsIdempotent(t *testing.T) {
	ch, _ := newTestChannel(t)
	assert.NoError(t, ch.Connect(context.Background(), ""))
}

func TestConnect_AfterCloseFails(t *testing.T) {
	ch, _ := newTestChannel(t)
	require.NoError(t, ch.Close())
	assert.Error(t, ch.Connect(context.Background(), ""))
}

func TestEvents_OfferAssignedForThisCaptain(t *testing.T) {
	ch, client := newTestChannel(t)

	subject := fmt.Sprintf(constants.SubjectOfferAssigned, "captain-1")
	publish(t, client, subject, models.TripOffer{
		ID:           "pushed-1",
		Pickup:       models.Coordinate{Latitude: -6.1751, Longitude: 106.8650},
		FareEstimate: 42000,
	})

	event := waitEvent(t, ch)
	assert.Equal(t, models.PresenceEventOfferAssigned, event.Type)
	require.NotNil(t, event.Offer)
	assert.Equal(t, "pushed-1", event.Offer.ID)
}

func TestEvents_OtherCaptainSubjectsIgnored(t *testing.T) {
	ch, client := newTestChannel(t)

	publish(t, client, fmt.Sprintf(constants.SubjectOfferAssigned, "captain-2"), models.TripOffer{ID: "wrong"})
	publish(t, client, fmt.Sprintf(constants.SubjectOfferCancelled, "captain-1"), models.OfferCancelledPayload{ID: "mine"})

	event := waitEvent(t, ch)
	assert.Equal(t, models.PresenceEventOfferCancelled, event.Type)
	assert.Equal(t, "mine", event.OfferID)
}

func TestEvents_StatsUpdated(t *testing.T) {
	ch, client := newTestChannel(t)

	publish(t, client, fmt.Sprintf(constants.SubjectStatsUpdated, "captain-1"), models.CaptainStats{TripsToday: 11})

	event := waitEvent(t, ch)
	assert.Equal(t, models.PresenceEventStatsUpdated, event.Type)
	require.NotNil(t, event.Stats)
	assert.Equal(t, 11, event.Stats.TripsToday)
}

func TestEvents_MalformedPayloadDropped(t *testing.T) {
	ch, client := newTestChannel(t)

	subject := fmt.Sprintf(constants.SubjectOfferAssigned, "captain-1")
	require.NoError(t, client.Publish(subject, []byte("not json")))
	publish(t, client, fmt.Sprintf(constants.SubjectOfferCancelled, "captain-1"), models.OfferCancelledPayload{ID: "after"})

	event := waitEvent(t, ch)
	assert.Equal(t, "after", event.OfferID)
}

func TestEmitLocation_PublishesUpdate(t *testing.T) {
	ch, client := newTestChannel(t)

	msgCh := make(chan *nats.Msg, 1)
	sub, err := client.Subscribe(constants.SubjectLocationUpdate, func(msg *nats.Msg) {
		msgCh <- msg
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	err = ch.EmitLocation(context.Background(), models.Coordinate{
		Latitude:  -6.2088,
		Longitude: 106.8456,
		Timestamp: time.Now(),
	})
	require.NoError(t, err)

	select {
	case msg := <-msgCh:
		var update models.CaptainLocationUpdate
		require.NoError(t, json.Unmarshal(msg.Data, &update))
		assert.Equal(t, "captain-1", update.CaptainID)
		assert.Equal(t, -6.2088, update.Location.Latitude)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a location update on the bus")
	}
}

func TestEmitLocation_BeforeConnectMapsToTransient(t *testing.T) {
	client, err := natspkg.NewClient(testNatsURL)
	require.NoError(t, err)
	defer client.Close()

	ch := NewPresenceChannel("captain-1", client)

	err = ch.EmitLocation(context.Background(), models.Coordinate{Latitude: -6.2, Longitude: 106.8})

	require.Error(t, err)
	assert.ErrorIs(t, err, captain.ErrTransientNetwork)
}

func TestClose_StopsDelivery(t *testing.T) {
	ch, client := newTestChannel(t)
	require.NoError(t, ch.Close())

	publish(t, client, fmt.Sprintf(constants.SubjectOfferAssigned, "captain-1"), models.TripOffer{ID: "late"})

	select {
	case event := <-ch.Events():
		t.Fatalf("unexpected event after close: %+v", event)
	case <-time.After(200 * time.Millisecond):
	}
}
