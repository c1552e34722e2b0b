package usecase

import (
	"context"
	"time"

	"github.com/adhiwira/kapten/internal/pkg/logger"
	"github.com/adhiwira/kapten/internal/pkg/models"
)

// startGeo begins consuming the coordinate stream. Repeated calls while the
// stream is running are no-ops.
func (uc *CaptainUC) startGeo() {
	uc.mu.Lock()
	if uc.geoStarted || uc.closed {
		uc.mu.Unlock()
		return
	}
	uc.geoStarted = true
	uc.mu.Unlock()

	samples, err := uc.geo.Start(uc.rootCtx)
	if err != nil {
		logger.Error("Failed to start location sampling",
			logger.String("captain_id", uc.captainID),
			logger.Err(err))
		uc.mu.Lock()
		uc.geoStarted = false
		uc.mu.Unlock()
		return
	}

	uc.wg.Add(1)
	go func() {
		defer uc.wg.Done()

		for {
			select {
			case <-uc.rootCtx.Done():
				return
			case coord, ok := <-samples:
				if !ok {
					uc.mu.Lock()
					uc.geoStarted = false
					uc.mu.Unlock()
					return
				}
				uc.handleCoordinate(coord)
			}
		}
	}()
}

// stopGeo halts location sampling. Safe to call repeatedly.
func (uc *CaptainUC) stopGeo() {
	uc.mu.Lock()
	started := uc.geoStarted
	uc.geoStarted = false
	uc.mu.Unlock()

	if started {
		uc.geo.Stop()
	}
}

// handleCoordinate applies one validated location sample: it updates the
// presence read model, pushes the position over the presence channel and
// writes through to the shared presence store.
func (uc *CaptainUC) handleCoordinate(coord models.Coordinate) {
	uc.mu.Lock()
	uc.presence.LastLocation = coord
	uc.presence.LastEmittedAt = time.Now()
	online := uc.online
	hasActive := uc.active != nil
	uc.mu.Unlock()

	// Position is only broadcast while the captain is discoverable or a
	// customer is being served.
	if online || hasActive {
		ctx, cancel := context.WithTimeout(uc.rootCtx, 3*time.Second)
		if err := uc.presenceGW.EmitLocation(ctx, coord); err != nil {
			logger.Debug("Failed to emit location",
				logger.String("captain_id", uc.captainID),
				logger.Err(err))
		}
		cancel()

		if uc.store != nil {
			ctx, cancel := context.WithTimeout(uc.rootCtx, 3*time.Second)
			if err := uc.store.UpdateLocation(ctx, uc.captainID, coord); err != nil {
				logger.Debug("Failed to update presence store",
					logger.String("captain_id", uc.captainID),
					logger.Err(err))
			}
			cancel()
		}
	}

	uc.notify()
}
