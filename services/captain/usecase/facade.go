package usecase

import (
	"context"
	"time"

	"github.com/adhiwira/kapten/internal/pkg/logger"
	"github.com/adhiwira/kapten/internal/pkg/models"
	"github.com/adhiwira/kapten/services/captain"
)

// GoOnline marks the captain available, connects the presence channel,
// starts location sampling and begins the offer poller. A presence channel
// failure is logged and the engine keeps functioning on the poller alone.
func (uc *CaptainUC) GoOnline(ctx context.Context) error {
	uc.mu.Lock()
	if uc.closed {
		uc.mu.Unlock()
		return captain.ErrSessionClosed
	}
	if uc.online {
		uc.mu.Unlock()
		return nil
	}
	uc.online = true
	uc.presence.Online = true

	pollCtx, cancel := context.WithCancel(uc.rootCtx)
	uc.pollCancel = cancel
	loc := uc.presence.LastLocation
	uc.mu.Unlock()

	if err := uc.presenceGW.Connect(ctx, uc.authToken); err != nil {
		logger.Warn("Presence channel unavailable, continuing on poller alone",
			logger.String("captain_id", uc.captainID),
			logger.Err(err))
	}

	uc.startGeo()

	if uc.store != nil {
		if err := uc.store.SetOnline(ctx, uc.captainID, loc); err != nil {
			logger.Warn("Failed to write presence store",
				logger.String("captain_id", uc.captainID),
				logger.Err(err))
		}
	}

	uc.startPoller(pollCtx)
	uc.notify()
	return nil
}

// GoOffline marks the captain unavailable, stops the poller and clears the
// offer registry. An existing active trip is not affected; it continues
// until it reaches a terminal state.
func (uc *CaptainUC) GoOffline(ctx context.Context) error {
	uc.mu.Lock()
	if !uc.online {
		uc.mu.Unlock()
		return nil
	}
	uc.online = false
	uc.presence.Online = false

	if uc.pollCancel != nil {
		uc.pollCancel()
		uc.pollCancel = nil
	}
	uc.registry.Clear()
	hasActive := uc.active != nil
	uc.mu.Unlock()

	if uc.store != nil {
		if err := uc.store.SetOffline(ctx, uc.captainID); err != nil {
			logger.Warn("Failed to clear presence store",
				logger.String("captain_id", uc.captainID),
				logger.Err(err))
		}
	}

	// Location sampling keeps running while a trip is underway so the
	// customer still sees the captain moving.
	if !hasActive {
		uc.stopGeo()
	}

	uc.notify()
	return nil
}

// Refresh pulls stats, wallet balance and, while online, the nearby offer
// list from the backend.
func (uc *CaptainUC) Refresh(ctx context.Context) error {
	stats, err := uc.dispatchGW.Stats(ctx)
	if err != nil {
		return err
	}

	wallet, err := uc.dispatchGW.WalletBalance(ctx)
	if err != nil {
		return err
	}

	uc.mu.Lock()
	uc.stats = stats
	uc.wallet = wallet
	online := uc.online
	uc.mu.Unlock()

	if online {
		uc.pollOnce(ctx)
	}

	uc.notify()
	return nil
}

// Snapshot returns a value copy of the read model
func (uc *CaptainUC) Snapshot() captain.Snapshot {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshotLocked()
}

// snapshotLocked builds the read model. Callers must hold uc.mu.
func (uc *CaptainUC) snapshotLocked() captain.Snapshot {
	snap := captain.Snapshot{
		Online:   uc.online,
		Offers:   uc.registry.List(),
		Presence: uc.presence,
		Stats:    uc.stats,
		Wallet:   uc.wallet,
	}
	if uc.active != nil {
		tripCopy := *uc.active
		snap.ActiveTrip = &tripCopy
	}
	return snap
}

// Subscribe returns a channel receiving a snapshot after every state
// change. Slow consumers only miss intermediate snapshots, never the
// latest one.
func (uc *CaptainUC) Subscribe() <-chan captain.Snapshot {
	ch := make(chan captain.Snapshot, 8)

	uc.mu.Lock()
	uc.subs = append(uc.subs, ch)
	uc.mu.Unlock()

	return ch
}

// notify pushes the current snapshot to every subscriber
func (uc *CaptainUC) notify() {
	uc.mu.Lock()
	if uc.closed {
		uc.mu.Unlock()
		return
	}
	snap := uc.snapshotLocked()
	subs := make([]chan captain.Snapshot, len(uc.subs))
	copy(subs, uc.subs)
	uc.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- snap:
		default:
			// Drop the oldest pending snapshot to make room for the new one.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}

// Close tears the session down: poller, location sampling, presence
// channel and subscriber channels.
func (uc *CaptainUC) Close() {
	uc.mu.Lock()
	if uc.closed {
		uc.mu.Unlock()
		return
	}
	uc.closed = true
	if uc.pollCancel != nil {
		uc.pollCancel()
		uc.pollCancel = nil
	}
	subs := uc.subs
	uc.subs = nil
	uc.mu.Unlock()

	uc.cancel()
	uc.stopGeo()
	if err := uc.presenceGW.Close(); err != nil {
		logger.Warn("Failed to close presence channel",
			logger.String("captain_id", uc.captainID),
			logger.Err(err))
	}
	uc.wg.Wait()

	for _, ch := range subs {
		close(ch)
	}
}

// eventLoop consumes push events from the presence channel until the
// session is closed.
func (uc *CaptainUC) eventLoop() {
	defer uc.wg.Done()

	for {
		select {
		case <-uc.rootCtx.Done():
			return
		case ev, ok := <-uc.presenceGW.Events():
			if !ok {
				return
			}
			uc.handlePresenceEvent(ev)
		}
	}
}

// handlePresenceEvent applies a single push event to engine state
func (uc *CaptainUC) handlePresenceEvent(ev models.PresenceEvent) {
	switch ev.Type {
	case models.PresenceEventOfferAssigned:
		if ev.Offer == nil {
			return
		}
		if !ev.Offer.Pickup.Valid() {
			logger.Debug("Dropping pushed offer with invalid pickup",
				logger.String("offer_id", ev.Offer.ID))
			return
		}
		uc.mu.Lock()
		changed := uc.online && uc.registry.Upsert(*ev.Offer)
		uc.mu.Unlock()
		if changed {
			uc.notify()
		}

	case models.PresenceEventOfferCancelled:
		uc.mu.Lock()
		if uc.pendingAcceptID != "" && uc.pendingAcceptID == ev.OfferID {
			uc.pendingAcceptCancelled = true
		}
		if uc.active != nil && uc.active.ID == ev.OfferID {
			uc.remoteCancelLocked("cancelled_by_dispatch")
			uc.mu.Unlock()
			uc.notify()
			return
		}
		removed := uc.registry.Remove(ev.OfferID)
		uc.mu.Unlock()
		if removed {
			uc.notify()
		}

	case models.PresenceEventStatsUpdated:
		if ev.Stats == nil {
			return
		}
		uc.mu.Lock()
		uc.stats = ev.Stats
		uc.mu.Unlock()
		uc.notify()
	}
}

// refreshStats pulls the stats read model after a terminal transition
func (uc *CaptainUC) refreshStats() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stats, err := uc.dispatchGW.Stats(ctx)
	if err != nil {
		logger.Warn("Failed to refresh stats",
			logger.String("captain_id", uc.captainID),
			logger.Err(err))
		return
	}

	uc.mu.Lock()
	uc.stats = stats
	uc.mu.Unlock()
	uc.notify()
}
