package usecase

import (
	"context"
	"time"

	"github.com/adhiwira/kapten/internal/pkg/logger"
	"github.com/adhiwira/kapten/internal/utils"
)

// startPoller launches the timed offer-discovery fallback. Ticks run inline
// in the loop so a slow backend response can never overlap with the next
// scheduled tick; missed ticks are skipped.
func (uc *CaptainUC) startPoller(ctx context.Context) {
	uc.wg.Add(1)
	go func() {
		defer uc.wg.Done()

		ticker := time.NewTicker(uc.pollInterval)
		defer ticker.Stop()

		uc.pollOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				uc.pollOnce(ctx)
			}
		}
	}()
}

// pollOnce pulls nearby offers and merges them into the registry. At most
// one poll runs at a time; a tick or refresh arriving while another poll
// is in flight is dropped. The result is discarded when the captain went
// offline while the request was in flight.
func (uc *CaptainUC) pollOnce(ctx context.Context) {
	uc.mu.Lock()
	if !uc.online || uc.pollInFlight {
		uc.mu.Unlock()
		return
	}
	uc.pollInFlight = true
	origin := uc.presence.LastLocation
	uc.mu.Unlock()

	defer func() {
		uc.mu.Lock()
		uc.pollInFlight = false
		uc.mu.Unlock()
	}()

	if !origin.Valid() {
		logger.Debug("Skipping offer poll, no valid location yet",
			logger.String("captain_id", uc.captainID))
		return
	}

	callCtx, cancel := context.WithTimeout(ctx, uc.pollInterval)
	defer cancel()

	offers, err := uc.dispatchGW.NearbyOffers(callCtx, origin, uc.pollRadiusKm)
	if err != nil {
		logger.Warn("Offer poll failed",
			logger.String("captain_id", uc.captainID),
			logger.Err(err))
		return
	}

	uc.mu.Lock()
	if !uc.online {
		// Went offline while the request was in flight.
		uc.mu.Unlock()
		return
	}

	changed := false
	for _, offer := range offers {
		if !offer.Pickup.Valid() {
			logger.Debug("Dropping polled offer with invalid pickup",
				logger.String("offer_id", offer.ID))
			continue
		}
		if offer.DistanceKm <= 0 && offer.Destination.Valid() {
			// Some dispatch responses omit the trip distance; derive it
			// from the route endpoints so fare screens stay populated.
			offer.DistanceKm = utils.CalculateDistance(offer.Pickup, offer.Destination)
		}
		if uc.registry.Upsert(offer) {
			changed = true
		}
	}
	uc.mu.Unlock()

	if changed {
		uc.notify()
	}
}
