package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/adhiwira/kapten/internal/pkg/constants"
	"github.com/adhiwira/kapten/internal/pkg/database"
	"github.com/adhiwira/kapten/internal/pkg/models"
	"github.com/adhiwira/kapten/internal/utils"
	"github.com/adhiwira/kapten/services/captain"
)

// PresenceStore keeps captain availability and last location in Redis
type PresenceStore struct {
	redis *database.RedisClient
}

var _ captain.PresenceStore = (*PresenceStore)(nil)

// NewPresenceStore creates a new presence store
func NewPresenceStore(redis *database.RedisClient) *PresenceStore {
	return &PresenceStore{redis: redis}
}

// SetOnline marks a captain as available and registers the last known location
func (s *PresenceStore) SetOnline(ctx context.Context, captainID string, location models.Coordinate) error {
	key := fmt.Sprintf(constants.KeyCaptainPresence, captainID)

	presence := models.CaptainPresence{
		CaptainID:     captainID,
		Online:        true,
		LastLocation:  location,
		LastEmittedAt: time.Now(),
	}
	if location.Valid() {
		presence.Geohash = utils.EncodeLocation(location, 6)
	}

	data, err := json.Marshal(&presence)
	if err != nil {
		return fmt.Errorf("failed to marshal presence: %w", err)
	}

	if err := s.redis.Set(ctx, key, data, constants.PresenceTTL); err != nil {
		return fmt.Errorf("failed to store presence: %w", err)
	}

	if location.Valid() {
		if err := s.redis.GeoAdd(ctx, constants.KeyCaptainGeoSet,
			location.Longitude, location.Latitude, captainID); err != nil {
			return fmt.Errorf("failed to add captain to geo index: %w", err)
		}
	}

	return nil
}

// SetOffline removes a captain from the presence index
func (s *PresenceStore) SetOffline(ctx context.Context, captainID string) error {
	key := fmt.Sprintf(constants.KeyCaptainPresence, captainID)

	if err := s.redis.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete presence: %w", err)
	}

	if err := s.redis.GeoRemove(ctx, constants.KeyCaptainGeoSet, captainID); err != nil {
		return fmt.Errorf("failed to remove captain from geo index: %w", err)
	}

	return nil
}

// UpdateLocation refreshes the stored location and the geo index entry
func (s *PresenceStore) UpdateLocation(ctx context.Context, captainID string, location models.Coordinate) error {
	if !location.Valid() {
		return captain.ErrInvalidLocation
	}

	key := fmt.Sprintf(constants.KeyCaptainPresence, captainID)

	presence := models.CaptainPresence{
		CaptainID:     captainID,
		Online:        true,
		LastLocation:  location,
		Geohash:       utils.EncodeLocation(location, 6),
		LastEmittedAt: time.Now(),
	}

	data, err := json.Marshal(&presence)
	if err != nil {
		return fmt.Errorf("failed to marshal presence: %w", err)
	}

	if err := s.redis.Set(ctx, key, data, constants.PresenceTTL); err != nil {
		return fmt.Errorf("failed to store presence: %w", err)
	}

	if err := s.redis.GeoAdd(ctx, constants.KeyCaptainGeoSet,
		location.Longitude, location.Latitude, captainID); err != nil {
		return fmt.Errorf("failed to update geo index: %w", err)
	}

	return nil
}
