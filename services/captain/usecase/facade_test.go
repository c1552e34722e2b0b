package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adhiwira/kapten/internal/pkg/models"
	"github.com/adhiwira/kapten/services/captain"
	"github.com/adhiwira/kapten/services/captain/mocks"
)

func TestGoOnline_Idempotent(t *testing.T) {
	e := newTestEngine(t)

	require.NoError(t, e.uc.GoOnline(context.Background()))
	require.NoError(t, e.uc.GoOnline(context.Background()))

	assert.True(t, e.uc.Snapshot().Online)
}

func TestGoOnline_PresenceChannelFailureTolerated(t *testing.T) {
	// The engine keeps working on the poller alone when the push channel
	// cannot connect.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatch := mocks.NewMockDispatchGW(ctrl)
	presence := mocks.NewMockPresenceGW(ctrl)
	geoSource := mocks.NewMockGeoSource(ctrl)

	events := make(chan models.PresenceEvent)
	samples := make(chan models.Coordinate)
	presence.EXPECT().Events().Return((<-chan models.PresenceEvent)(events)).AnyTimes()
	presence.EXPECT().Connect(gomock.Any(), "token-1").
		Return(fmt.Errorf("%w: dial refused", captain.ErrTransientNetwork))
	presence.EXPECT().Close().Return(nil).AnyTimes()
	geoSource.EXPECT().Start(gomock.Any()).Return((<-chan models.Coordinate)(samples), nil).AnyTimes()
	geoSource.EXPECT().Stop().AnyTimes()

	uc := NewCaptainUC("captain-1", "token-1", nil, dispatch, presence, geoSource)
	defer uc.Close()

	err := uc.GoOnline(context.Background())

	assert.NoError(t, err)
	assert.True(t, uc.Snapshot().Online)
}

func TestGoOffline_ClearsOffersKeepsActiveTrip(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.uc.GoOnline(context.Background()))

	acceptTrip(t, e, "trip-1")
	e.seedOffer("offer-2")
	e.seedOffer("offer-3")

	err := e.uc.GoOffline(context.Background())

	require.NoError(t, err)
	snap := e.uc.Snapshot()
	assert.False(t, snap.Online)
	assert.Empty(t, snap.Offers, "pending offers evaporate offline")
	require.NotNil(t, snap.ActiveTrip, "active trip survives going offline")
	assert.Equal(t, "trip-1", snap.ActiveTrip.ID)
}

func TestGoOffline_Idempotent(t *testing.T) {
	e := newTestEngine(t)

	assert.NoError(t, e.uc.GoOffline(context.Background()))
	assert.NoError(t, e.uc.GoOffline(context.Background()))
}

func TestOfflineTripCompletionStopsLocationSampling(t *testing.T) {
	// Location sampling keeps running for the active trip after GoOffline
	// and stops once the trip reaches a terminal state.
	e := newTestEngine(t)
	require.NoError(t, e.uc.GoOnline(context.Background()))
	acceptTrip(t, e, "trip-1")
	require.NoError(t, e.uc.GoOffline(context.Background()))

	e.uc.mu.Lock()
	stillSampling := e.uc.geoStarted
	e.uc.mu.Unlock()
	assert.True(t, stillSampling)

	e.dispatch.EXPECT().CancelTrip(gomock.Any(), "trip-1", "reason").Return(nil)
	require.NoError(t, e.uc.Cancel(context.Background(), "trip-1", "reason"))

	waitFor(t, func() bool {
		e.uc.mu.Lock()
		defer e.uc.mu.Unlock()
		return !e.uc.geoStarted
	})
}

func TestRefresh_PullsStatsAndWallet(t *testing.T) {
	e := newTestEngine(t)

	// Note the helper already allows Stats AnyTimes; pin the wallet call.
	e.dispatch.EXPECT().
		WalletBalance(gomock.Any()).
		Return(&models.WalletBalance{Balance: 150000, TransfersLeft: 3}, nil)

	err := e.uc.Refresh(context.Background())

	require.NoError(t, err)
	snap := e.uc.Snapshot()
	require.NotNil(t, snap.Wallet)
	assert.Equal(t, float64(150000), snap.Wallet.Balance)
	assert.NotNil(t, snap.Stats)
}

func TestRefresh_PropagatesBackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatch := mocks.NewMockDispatchGW(ctrl)
	presence := mocks.NewMockPresenceGW(ctrl)
	geoSource := mocks.NewMockGeoSource(ctrl)

	events := make(chan models.PresenceEvent)
	presence.EXPECT().Events().Return((<-chan models.PresenceEvent)(events)).AnyTimes()
	presence.EXPECT().Close().Return(nil).AnyTimes()
	geoSource.EXPECT().Stop().AnyTimes()

	dispatch.EXPECT().
		Stats(gomock.Any()).
		Return(nil, fmt.Errorf("%w: 503", captain.ErrTransientNetwork))

	uc := NewCaptainUC("captain-1", "token-1", nil, dispatch, presence, geoSource)
	defer uc.Close()

	err := uc.Refresh(context.Background())

	assert.ErrorIs(t, err, captain.ErrTransientNetwork)
}

func TestSubscribe_ReceivesSnapshotsOnChange(t *testing.T) {
	e := newTestEngine(t)
	updates := e.uc.Subscribe()

	e.seedOffer("offer-1")
	e.dispatch.EXPECT().AcceptTrip(gomock.Any(), "offer-1").Return(nil)
	require.NoError(t, e.uc.Accept(context.Background(), "offer-1"))

	var got captain.Snapshot
	waitFor(t, func() bool {
		select {
		case got = <-updates:
			return got.ActiveTrip != nil
		default:
			return false
		}
	})
	assert.Equal(t, "offer-1", got.ActiveTrip.ID)
}

func TestSnapshot_IsValueCopy(t *testing.T) {
	e := newTestEngine(t)
	acceptTrip(t, e, "trip-1")

	snap := e.uc.Snapshot()
	snap.ActiveTrip.Status = models.TripStatusCompleted
	snap.Online = true

	fresh := e.uc.Snapshot()
	assert.Equal(t, models.TripStatusAccepted, fresh.ActiveTrip.Status)
	assert.False(t, fresh.Online)
}

func TestPresenceEvent_OfferAssigned(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.uc.GoOnline(context.Background()))

	offer := makeOffer("pushed-1", time.Now())
	e.events <- models.PresenceEvent{
		Type:  models.PresenceEventOfferAssigned,
		Offer: &offer,
	}

	waitFor(t, func() bool { return e.uc.registry.Len() == 1 })
}

func TestPresenceEvent_OfferAssignedIgnoredWhileOffline(t *testing.T) {
	e := newTestEngine(t)

	offer := makeOffer("pushed-1", time.Now())
	e.events <- models.PresenceEvent{
		Type:  models.PresenceEventOfferAssigned,
		Offer: &offer,
	}

	// Let the event loop drain the channel, then confirm nothing landed.
	waitFor(t, func() bool { return len(e.events) == 0 })
	assert.Equal(t, 0, e.uc.registry.Len())
}

func TestPresenceEvent_OfferAssignedInvalidPickupDropped(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.uc.GoOnline(context.Background()))

	offer := makeOffer("pushed-1", time.Now())
	offer.Pickup = models.Coordinate{Latitude: 0, Longitude: 0}
	e.events <- models.PresenceEvent{
		Type:  models.PresenceEventOfferAssigned,
		Offer: &offer,
	}

	waitFor(t, func() bool { return len(e.events) == 0 })
	assert.Equal(t, 0, e.uc.registry.Len())
}

func TestPresenceEvent_StatsUpdated(t *testing.T) {
	e := newTestEngine(t)

	e.events <- models.PresenceEvent{
		Type:  models.PresenceEventStatsUpdated,
		Stats: &models.CaptainStats{TripsToday: 7},
	}

	waitFor(t, func() bool {
		snap := e.uc.Snapshot()
		return snap.Stats != nil && snap.Stats.TripsToday == 7
	})
}

func TestGoOnline_AfterCloseReturnsSessionClosed(t *testing.T) {
	e := newTestEngine(t)

	e.uc.Close()

	err := e.uc.GoOnline(context.Background())
	assert.ErrorIs(t, err, captain.ErrSessionClosed)
}

func TestClose_ClosesSubscriberChannels(t *testing.T) {
	e := newTestEngine(t)
	updates := e.uc.Subscribe()

	e.uc.Close()

	waitFor(t, func() bool {
		select {
		case _, ok := <-updates:
			return !ok
		default:
			return false
		}
	})
}
