package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/adhiwira/kapten/internal/pkg/constants"
	"github.com/adhiwira/kapten/internal/pkg/models"
	"github.com/adhiwira/kapten/services/captain"
)

// CaptainUC owns the trip-lifecycle engine for a single captain session.
// Every mutation of the offer registry and the active trip slot goes
// through its mutex, so independent producers (push events, poller ticks,
// UI commands, location samples) serialize their effects.
type CaptainUC struct {
	mu sync.Mutex

	captainID string
	authToken string
	cfg       *models.Config

	dispatchGW captain.DispatchGW
	presenceGW captain.PresenceGW
	geo        captain.GeoSource
	store      captain.PresenceStore
	history    captain.TripHistoryRepo

	registry *OfferRegistry

	online   bool
	presence models.CaptainPresence
	active   *models.ActiveTrip
	stats    *models.CaptainStats
	wallet   *models.WalletBalance

	// accept two-phase commit bookkeeping
	pendingAcceptID        string
	pendingAcceptCancelled bool

	pollInterval time.Duration
	pollRadiusKm float64

	pollCancel   context.CancelFunc
	pollInFlight bool
	geoStarted   bool

	subs   []chan captain.Snapshot
	closed bool

	rootCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

var _ captain.Facade = (*CaptainUC)(nil)

// Option customizes a CaptainUC beyond its required collaborators
type Option func(*CaptainUC)

// WithPresenceStore attaches the shared availability index
func WithPresenceStore(store captain.PresenceStore) Option {
	return func(uc *CaptainUC) { uc.store = store }
}

// WithTripHistory attaches the finished-trip archive
func WithTripHistory(history captain.TripHistoryRepo) Option {
	return func(uc *CaptainUC) { uc.history = history }
}

// NewCaptainUC creates a new captain engine instance and starts consuming
// presence channel events. Callers must Close it to release resources.
func NewCaptainUC(
	captainID string,
	authToken string,
	cfg *models.Config,
	dispatchGW captain.DispatchGW,
	presenceGW captain.PresenceGW,
	geo captain.GeoSource,
	opts ...Option,
) *CaptainUC {
	ctx, cancel := context.WithCancel(context.Background())

	uc := &CaptainUC{
		captainID:  captainID,
		authToken:  authToken,
		cfg:        cfg,
		dispatchGW: dispatchGW,
		presenceGW: presenceGW,
		geo:        geo,
		registry:   NewOfferRegistry(),
		presence: models.CaptainPresence{
			CaptainID: captainID,
		},
		pollInterval: constants.DefaultPollInterval,
		pollRadiusKm: constants.DefaultSearchRadius,
		rootCtx:      ctx,
		cancel:       cancel,
	}

	if cfg != nil && cfg.Poller.IntervalSeconds > 0 {
		uc.pollInterval = time.Duration(cfg.Poller.IntervalSeconds) * time.Second
	}
	if cfg != nil && cfg.Poller.RadiusKm > 0 {
		uc.pollRadiusKm = cfg.Poller.RadiusKm
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.wg.Add(1)
	go uc.eventLoop()

	return uc
}
