package captain

import (
	"context"

	"github.com/adhiwira/kapten/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_captain.go -package=mocks github.com/adhiwira/kapten/services/captain DispatchGW,PresenceGW,GeoSource,PresenceStore,TripHistoryRepo,Facade

// DispatchGW is the request/response contract with the dispatch backend.
// Implementations translate transport failures into ErrTransientNetwork and
// backend refusals into ErrCommandRejected.
type DispatchGW interface {
	NearbyOffers(ctx context.Context, origin models.Coordinate, radiusKm float64) ([]models.TripOffer, error)
	AcceptTrip(ctx context.Context, tripID string) error
	ReachedPickup(ctx context.Context, tripID string) error
	VerifyOTP(ctx context.Context, tripID, otp string) error
	CompleteTrip(ctx context.Context, tripID string) error
	CancelTrip(ctx context.Context, tripID, reason string) error
	Stats(ctx context.Context) (*models.CaptainStats, error)
	WalletBalance(ctx context.Context) (*models.WalletBalance, error)
}

// PresenceGW is the persistent push channel to the dispatch backend.
// Connect is idempotent; connection failures are reported once and the
// channel stays usable for reconnect attempts. Events delivers push events
// until Close.
type PresenceGW interface {
	Connect(ctx context.Context, authToken string) error
	EmitLocation(ctx context.Context, coord models.Coordinate) error
	Events() <-chan models.PresenceEvent
	Close() error
}

// GeoSource emits validated device coordinates. Start returns a channel that
// delivers samples until Stop; on permission denial it delivers a single
// fallback coordinate and closes.
type GeoSource interface {
	Start(ctx context.Context) (<-chan models.Coordinate, error)
	Stop()
}

// PresenceStore is the shared availability index written through on
// presence changes so the dispatch side can find nearby captains.
type PresenceStore interface {
	SetOnline(ctx context.Context, captainID string, coord models.Coordinate) error
	SetOffline(ctx context.Context, captainID string) error
	UpdateLocation(ctx context.Context, captainID string, coord models.Coordinate) error
}

// TripHistoryRepo archives finished trips. Archive failures never block a
// transition; history is advisory.
type TripHistoryRepo interface {
	ArchiveTrip(ctx context.Context, captainID string, trip *models.ActiveTrip) error
	EarningsToday(ctx context.Context, captainID string) (float64, error)
}

// Snapshot is the read model exposed to consumers. It is a value copy;
// mutating it has no effect on engine state.
type Snapshot struct {
	Online     bool                   `json:"online"`
	ActiveTrip *models.ActiveTrip     `json:"active_trip,omitempty"`
	Offers     []models.TripOffer     `json:"offers"`
	Presence   models.CaptainPresence `json:"presence"`
	Stats      *models.CaptainStats   `json:"stats,omitempty"`
	Wallet     *models.WalletBalance  `json:"wallet,omitempty"`
}

// Facade is the single public entry point for a captain session. All
// commands return typed errors from this package; none of them panic.
type Facade interface {
	GoOnline(ctx context.Context) error
	GoOffline(ctx context.Context) error
	Accept(ctx context.Context, offerID string) error
	ReachedPickup(ctx context.Context, tripID string) error
	StartTrip(ctx context.Context, tripID, otp string) error
	Complete(ctx context.Context, tripID string) error
	Cancel(ctx context.Context, tripID, reason string) error
	Refresh(ctx context.Context) error
	Snapshot() Snapshot
	Subscribe() <-chan Snapshot
	Close()
}
