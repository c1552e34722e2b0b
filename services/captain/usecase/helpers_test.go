package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/adhiwira/kapten/internal/pkg/models"
	"github.com/adhiwira/kapten/services/captain/mocks"
)

// testEngine bundles a captain engine with its mocked collaborators and the
// event channel feeding the presence loop.
type testEngine struct {
	uc       *CaptainUC
	dispatch *mocks.MockDispatchGW
	presence *mocks.MockPresenceGW
	geo      *mocks.MockGeoSource
	events   chan models.PresenceEvent
	samples  chan models.Coordinate
}

func newTestEngine(t *testing.T, opts ...Option) *testEngine {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	dispatch := mocks.NewMockDispatchGW(ctrl)
	presence := mocks.NewMockPresenceGW(ctrl)
	geoSource := mocks.NewMockGeoSource(ctrl)

	events := make(chan models.PresenceEvent, 8)
	samples := make(chan models.Coordinate, 8)

	presence.EXPECT().Events().Return((<-chan models.PresenceEvent)(events)).AnyTimes()
	presence.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	presence.EXPECT().EmitLocation(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	presence.EXPECT().Close().Return(nil).AnyTimes()

	geoSource.EXPECT().Start(gomock.Any()).Return((<-chan models.Coordinate)(samples), nil).AnyTimes()
	geoSource.EXPECT().Stop().AnyTimes()

	// Terminal transitions refresh stats in the background.
	dispatch.EXPECT().Stats(gomock.Any()).Return(&models.CaptainStats{}, nil).AnyTimes()

	uc := NewCaptainUC("captain-1", "token-1", nil, dispatch, presence, geoSource, opts...)
	t.Cleanup(uc.Close)

	return &testEngine{
		uc:       uc,
		dispatch: dispatch,
		presence: presence,
		geo:      geoSource,
		events:   events,
		samples:  samples,
	}
}

// seedOffer places an offer directly in the registry
func (e *testEngine) seedOffer(id string) models.TripOffer {
	offer := makeOffer(id, time.Now())
	e.uc.registry.Upsert(offer)
	return offer
}

// activeTrip returns a copy of the active trip, or nil
func (e *testEngine) activeTrip() *models.ActiveTrip {
	e.uc.mu.Lock()
	defer e.uc.mu.Unlock()
	if e.uc.active == nil {
		return nil
	}
	trip := *e.uc.active
	return &trip
}

// historyCapture records archived trips behind a mocked TripHistoryRepo
type historyCapture struct {
	repo  *mocks.MockTripHistoryRepo
	mu    sync.Mutex
	trips map[string]models.ActiveTrip
}

func newMockHistory(ctrl *gomock.Controller) *historyCapture {
	h := &historyCapture{
		repo:  mocks.NewMockTripHistoryRepo(ctrl),
		trips: make(map[string]models.ActiveTrip),
	}
	h.repo.EXPECT().
		ArchiveTrip(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, trip *models.ActiveTrip) error {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.trips[trip.ID] = *trip
			return nil
		}).
		AnyTimes()
	return h
}

func (h *historyCapture) archived(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.trips[id]
	return ok
}

func (h *historyCapture) get(id string) models.ActiveTrip {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.trips[id]
}

// waitFor polls the condition until it holds or the deadline passes
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}
