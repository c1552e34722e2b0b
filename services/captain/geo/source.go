package geo

import (
	"context"
	"sync"
	"time"

	"github.com/adhiwira/kapten/internal/pkg/logger"
	"github.com/adhiwira/kapten/internal/pkg/models"
	"github.com/adhiwira/kapten/services/captain"
)

// Source is a push-based coordinate stream fed by device reports arriving
// over the session transport. Every raw sample is validated; invalid
// samples are dropped and the previous valid value is retained. Delivery
// never blocks the producer.
type Source struct {
	mu       sync.Mutex
	fallback models.Coordinate
	lastGood models.Coordinate
	hasGood  bool
	out      chan models.Coordinate
	started  bool
	stopped  bool
}

var _ captain.GeoSource = (*Source)(nil)

// NewSource creates a geo source with the configured fallback position
func NewSource(cfg models.GeoConfig) *Source {
	return &Source{
		fallback: models.Coordinate{
			Latitude:  cfg.FallbackLatitude,
			Longitude: cfg.FallbackLongitude,
			Fallback:  true,
		},
	}
}

// Start begins delivering validated coordinates. The returned channel is
// closed by Stop or when the context ends.
func (s *Source) Start(ctx context.Context) (<-chan models.Coordinate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started && !s.stopped {
		return s.out, nil
	}

	s.out = make(chan models.Coordinate, 16)
	s.started = true
	s.stopped = false

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return s.out, nil
}

// Stop ends sampling and closes the stream. Safe to call repeatedly.
func (s *Source) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started || s.stopped {
		return
	}
	s.stopped = true
	close(s.out)
}

// Report feeds one raw device sample into the source. Invalid samples are
// dropped; the stream only ever carries validated positions.
func (s *Source) Report(coord models.Coordinate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started || s.stopped {
		return
	}

	if coord.Timestamp.IsZero() {
		coord.Timestamp = time.Now()
	}

	if !coord.Valid() {
		logger.Debug("Dropping invalid location sample, keeping last known good",
			logger.Float64("latitude", coord.Latitude),
			logger.Float64("longitude", coord.Longitude))
		return
	}

	s.lastGood = coord
	s.hasGood = true
	s.deliverLocked(coord)
}

// PermissionDenied handles a device-side permission refusal: a single
// fallback coordinate is emitted and the stream stops.
func (s *Source) PermissionDenied() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started || s.stopped {
		return
	}

	fallback := s.fallback
	fallback.Timestamp = time.Now()
	s.deliverLocked(fallback)

	s.stopped = true
	close(s.out)
}

// LastKnown returns the most recent valid coordinate, or the fallback when
// no valid sample has arrived yet.
func (s *Source) LastKnown() models.Coordinate {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasGood {
		return s.lastGood
	}
	return s.fallback
}

// deliverLocked sends without blocking, dropping the oldest buffered sample
// when the consumer lags. Callers must hold s.mu.
func (s *Source) deliverLocked(coord models.Coordinate) {
	select {
	case s.out <- coord:
	default:
		select {
		case <-s.out:
		default:
		}
		select {
		case s.out <- coord:
		default:
		}
	}
}
