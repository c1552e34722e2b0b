package models

import "time"

// OfferStatus represents the status of an unclaimed trip offer
type OfferStatus string

const (
	OfferStatusPending OfferStatus = "pending"
)

// TripOffer represents an unclaimed candidate trip pushed by dispatch or
// discovered through polling. Offers are immutable once created; they are
// only removed, expired or promoted into the active trip slot.
type TripOffer struct {
	ID           string      `json:"id" db:"id"`
	ServiceType  string      `json:"service_type" db:"service_type"`
	Pickup       Coordinate  `json:"pickup"`
	Destination  Coordinate  `json:"destination"`
	FareEstimate float64     `json:"fare_estimate" db:"fare_estimate"`
	DistanceKm   float64     `json:"distance_km" db:"distance_km"`
	Status       OfferStatus `json:"status" db:"status"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
}
