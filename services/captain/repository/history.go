package repository

import (
	"context"
	"fmt"

	"github.com/adhiwira/kapten/internal/pkg/models"
	"github.com/adhiwira/kapten/services/captain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// TripHistoryRepo archives finished trips in PostgreSQL
type TripHistoryRepo struct {
	db *sqlx.DB
}

var _ captain.TripHistoryRepo = (*TripHistoryRepo)(nil)

// NewTripHistoryRepo creates a new trip history repository
func NewTripHistoryRepo(db *sqlx.DB) *TripHistoryRepo {
	return &TripHistoryRepo{db: db}
}

// ArchiveTrip inserts a finished trip into the history table
func (r *TripHistoryRepo) ArchiveTrip(ctx context.Context, captainID string, trip *models.ActiveTrip) error {
	query := `
		INSERT INTO trip_history (
			entry_id, captain_id, trip_id, service_type, status, cancel_reason,
			pickup_latitude, pickup_longitude, destination_latitude, destination_longitude,
			fare_estimate, distance_km, accepted_at, reached_at, started_at, completed_at, cancelled_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (trip_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query,
		uuid.New().String(),
		captainID,
		trip.ID,
		trip.ServiceType,
		trip.Status,
		trip.CancelReason,
		trip.Pickup.Latitude,
		trip.Pickup.Longitude,
		trip.Destination.Latitude,
		trip.Destination.Longitude,
		trip.FareEstimate,
		trip.DistanceKm,
		trip.AcceptedAt,
		trip.ReachedAt,
		trip.StartedAt,
		trip.CompletedAt,
		trip.CancelledAt,
	)
	if err != nil {
		return fmt.Errorf("failed to archive trip: %w", err)
	}

	return nil
}

// EarningsToday sums fare estimates of trips completed since local midnight
func (r *TripHistoryRepo) EarningsToday(ctx context.Context, captainID string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(fare_estimate), 0)
		FROM trip_history
		WHERE captain_id = $1
		  AND status = $2
		  AND completed_at >= date_trunc('day', now())
	`

	var earnings float64
	err := r.db.QueryRowContext(ctx, query, captainID, models.TripStatusCompleted).Scan(&earnings)
	if err != nil {
		return 0, fmt.Errorf("failed to query earnings: %w", err)
	}

	return earnings, nil
}
