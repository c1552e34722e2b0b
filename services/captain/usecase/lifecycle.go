package usecase

import (
	"context"
	"time"

	"github.com/adhiwira/kapten/internal/pkg/constants"
	"github.com/adhiwira/kapten/internal/pkg/logger"
	"github.com/adhiwira/kapten/internal/pkg/models"
	"github.com/adhiwira/kapten/services/captain"
)

// Accept promotes an offer into the active trip slot. The promotion is a
// two-phase commit: the offer stays in the registry and no local state
// changes until the backend acknowledges the accept. A second Accept while
// one trip exists or is being accepted is refused without a network call.
func (uc *CaptainUC) Accept(ctx context.Context, offerID string) error {
	uc.mu.Lock()
	if uc.active != nil || uc.pendingAcceptID != "" {
		uc.mu.Unlock()
		return captain.ErrActiveTripExists
	}
	offer, ok := uc.registry.Get(offerID)
	if !ok {
		uc.mu.Unlock()
		return captain.ErrOfferNotFound
	}
	uc.pendingAcceptID = offerID
	uc.pendingAcceptCancelled = false
	uc.mu.Unlock()

	err := uc.dispatchGW.AcceptTrip(ctx, offerID)

	uc.mu.Lock()
	cancelled := uc.pendingAcceptCancelled
	uc.pendingAcceptID = ""
	uc.pendingAcceptCancelled = false

	if err != nil {
		uc.mu.Unlock()
		return err
	}
	if cancelled {
		// The offer was withdrawn while the accept was in flight; the
		// remote cancellation wins over the successful call.
		uc.mu.Unlock()
		return captain.ErrStaleReference
	}

	uc.active = models.NewActiveTrip(offer, time.Now())
	uc.registry.SetActiveID(offerID)
	uc.mu.Unlock()

	uc.notify()
	return nil
}

// ReachedPickup transitions the active trip from accepted to reached_pickup
// after backend acknowledgement.
func (uc *CaptainUC) ReachedPickup(ctx context.Context, tripID string) error {
	return uc.transition(ctx, tripID, models.TripStatusReachedPickup, "", func(callCtx context.Context) error {
		return uc.dispatchGW.ReachedPickup(callCtx, tripID)
	})
}

// StartTrip verifies the entered OTP with the backend and transitions the
// trip to in_transit. The OTP is only checked locally for shape (exactly
// four digits); correctness is the backend's responsibility. On rejection
// the buffer is retained so the captain can retry.
func (uc *CaptainUC) StartTrip(ctx context.Context, tripID, otp string) error {
	if !validOTP(otp) {
		return captain.ErrInvalidOTP
	}

	uc.mu.Lock()
	if uc.active != nil && uc.active.ID == tripID {
		uc.active.OTPEntered = otp
	}
	uc.mu.Unlock()

	return uc.transition(ctx, tripID, models.TripStatusInTransit, "", func(callCtx context.Context) error {
		return uc.dispatchGW.VerifyOTP(callCtx, tripID, otp)
	})
}

// Complete transitions the active trip to completed. On success the slot is
// cleared, the trip archived and a stats refresh triggered.
func (uc *CaptainUC) Complete(ctx context.Context, tripID string) error {
	return uc.transition(ctx, tripID, models.TripStatusCompleted, "", func(callCtx context.Context) error {
		return uc.dispatchGW.CompleteTrip(callCtx, tripID)
	})
}

// Cancel ends the active trip with the given reason. The backend call is
// always allowed to finish even if the captain toggled offline mid-flight.
func (uc *CaptainUC) Cancel(ctx context.Context, tripID, reason string) error {
	return uc.transition(ctx, tripID, models.TripStatusCancelled, reason, func(callCtx context.Context) error {
		return uc.dispatchGW.CancelTrip(callCtx, tripID, reason)
	})
}

// transition runs a two-phase lifecycle transition: validate the source
// state, call the backend with the engine unlocked, then re-validate and
// commit. A remote cancellation that lands while the call is in flight
// wins; the command's result is discarded.
func (uc *CaptainUC) transition(ctx context.Context, tripID string, target models.TripStatus, reason string, call func(context.Context) error) error {
	uc.mu.Lock()
	if uc.active == nil {
		uc.mu.Unlock()
		return captain.ErrNoActiveTrip
	}
	if uc.active.ID != tripID {
		uc.mu.Unlock()
		return captain.ErrStaleReference
	}
	if !uc.active.CanTransitionTo(target) {
		uc.mu.Unlock()
		return captain.ErrInvalidTransition
	}
	uc.mu.Unlock()

	err := call(ctx)

	uc.mu.Lock()
	if uc.active == nil || uc.active.ID != tripID {
		// Remote cancel landed while the call was in flight.
		uc.mu.Unlock()
		return captain.ErrStaleReference
	}
	if err != nil {
		uc.mu.Unlock()
		return err
	}
	if !uc.active.CanTransitionTo(target) {
		uc.mu.Unlock()
		return captain.ErrInvalidTransition
	}

	uc.commitTransition(target, reason)
	uc.mu.Unlock()

	uc.notify()
	return nil
}

// commitTransition applies the target state to the active trip. Callers
// must hold uc.mu. Each phase timestamp is set exactly once and the OTP
// buffer is cleared on every state exit.
func (uc *CaptainUC) commitTransition(target models.TripStatus, reason string) {
	now := time.Now()
	trip := uc.active

	trip.OTPEntered = ""
	trip.Status = target

	switch target {
	case models.TripStatusReachedPickup:
		if trip.ReachedAt == nil {
			trip.ReachedAt = &now
		}
	case models.TripStatusInTransit:
		if trip.StartedAt == nil {
			trip.StartedAt = &now
		}
	case models.TripStatusCompleted:
		if trip.CompletedAt == nil {
			trip.CompletedAt = &now
		}
	case models.TripStatusCancelled:
		trip.CancelReason = reason
		if trip.CancelledAt == nil {
			trip.CancelledAt = &now
		}
	}

	if trip.IsTerminal() {
		uc.clearActiveLocked(trip)
	}
}

// remoteCancelLocked ends the active trip on a dispatch-initiated
// cancellation. No backend call is made; the slot is cleared immediately.
// Callers must hold uc.mu.
func (uc *CaptainUC) remoteCancelLocked(reason string) {
	trip := uc.active
	if trip == nil || trip.IsTerminal() {
		return
	}

	now := time.Now()
	trip.OTPEntered = ""
	trip.Status = models.TripStatusCancelled
	trip.CancelReason = reason
	trip.CancelledAt = &now

	uc.clearActiveLocked(trip)
}

// clearActiveLocked releases the active trip slot after a terminal
// transition, archives the trip and schedules a stats refresh. Callers
// must hold uc.mu.
func (uc *CaptainUC) clearActiveLocked(trip *models.ActiveTrip) {
	uc.active = nil
	uc.registry.SetActiveID("")

	stopGeo := !uc.online

	uc.wg.Add(1)
	go func() {
		defer uc.wg.Done()
		uc.archiveTrip(trip)
		uc.refreshStats()
		if stopGeo {
			uc.stopGeo()
		}
	}()
}

// archiveTrip records a finished trip in the history store. Failures are
// logged; history is advisory and never blocks a transition.
func (uc *CaptainUC) archiveTrip(trip *models.ActiveTrip) {
	if uc.history == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := uc.history.ArchiveTrip(ctx, uc.captainID, trip); err != nil {
		logger.Warn("Failed to archive trip",
			logger.String("captain_id", uc.captainID),
			logger.String("trip_id", trip.ID),
			logger.Err(err))
	}
}

func validOTP(otp string) bool {
	if len(otp) != constants.OTPLength {
		return false
	}
	for _, r := range otp {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
