package models

import "time"

// CaptainPresence tracks a captain's availability and last reported position.
// It is created with Online=false on session start and destroyed on logout.
type CaptainPresence struct {
	CaptainID     string     `json:"captain_id"`
	Online        bool       `json:"online"`
	LastLocation  Coordinate `json:"last_location"`
	Geohash       string     `json:"geohash,omitempty"`
	LastEmittedAt time.Time  `json:"last_emitted_at"`
}

// PresenceEventType identifies a push event delivered by the dispatch backend
type PresenceEventType string

const (
	PresenceEventOfferAssigned  PresenceEventType = "offer_assigned"
	PresenceEventOfferCancelled PresenceEventType = "offer_cancelled"
	PresenceEventStatsUpdated   PresenceEventType = "stats_updated"
)

// PresenceEvent is a single push event received over the presence channel.
// Exactly one payload field is populated depending on Type.
type PresenceEvent struct {
	Type    PresenceEventType `json:"type"`
	Offer   *TripOffer        `json:"offer,omitempty"`
	OfferID string            `json:"offer_id,omitempty"`
	Stats   *CaptainStats     `json:"stats,omitempty"`
}

// OfferCancelledPayload is the wire payload of an offer_cancelled push event
type OfferCancelledPayload struct {
	ID string `json:"id"`
}

// CaptainLocationUpdate is the outbound location payload pushed to dispatch
type CaptainLocationUpdate struct {
	CaptainID string     `json:"captain_id"`
	Location  Coordinate `json:"location"`
}
