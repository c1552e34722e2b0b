package models

import "time"

// TripStatus represents the lifecycle state of the active trip
type TripStatus string

const (
	TripStatusAccepted      TripStatus = "accepted"
	TripStatusReachedPickup TripStatus = "reached_pickup"
	TripStatusInTransit     TripStatus = "in_transit"
	TripStatusCompleted     TripStatus = "completed"
	TripStatusCancelled     TripStatus = "cancelled"
)

// validTransitions defines which status changes are allowed from each state.
// Terminal states have no outgoing transitions.
var validTransitions = map[TripStatus][]TripStatus{
	TripStatusAccepted:      {TripStatusReachedPickup, TripStatusCancelled},
	TripStatusReachedPickup: {TripStatusInTransit, TripStatusCancelled},
	TripStatusInTransit:     {TripStatusCompleted, TripStatusCancelled},
	TripStatusCompleted:     {},
	TripStatusCancelled:     {},
}

// ActiveTrip is the single trip a captain is working on. At most one
// instance exists per captain session.
type ActiveTrip struct {
	ID           string     `json:"id" db:"id"`
	ServiceType  string     `json:"service_type" db:"service_type"`
	Pickup       Coordinate `json:"pickup"`
	Destination  Coordinate `json:"destination"`
	FareEstimate float64    `json:"fare_estimate" db:"fare_estimate"`
	DistanceKm   float64    `json:"distance_km" db:"distance_km"`
	Status       TripStatus `json:"status" db:"status"`
	CancelReason string     `json:"cancel_reason,omitempty" db:"cancel_reason"`

	// OTPEntered is the locally buffered OTP input. It is ephemeral and
	// never serialized; it is cleared on every state exit.
	OTPEntered string `json:"-"`

	AcceptedAt  time.Time  `json:"accepted_at" db:"accepted_at"`
	ReachedAt   *time.Time `json:"reached_at,omitempty" db:"reached_at"`
	StartedAt   *time.Time `json:"started_at,omitempty" db:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty" db:"cancelled_at"`
}

// NewActiveTrip promotes an offer into the active trip slot in the accepted state.
func NewActiveTrip(offer TripOffer, acceptedAt time.Time) *ActiveTrip {
	return &ActiveTrip{
		ID:           offer.ID,
		ServiceType:  offer.ServiceType,
		Pickup:       offer.Pickup,
		Destination:  offer.Destination,
		FareEstimate: offer.FareEstimate,
		DistanceKm:   offer.DistanceKm,
		Status:       TripStatusAccepted,
		AcceptedAt:   acceptedAt,
	}
}

// CanTransitionTo checks whether moving to the target status is a valid
// state change from the trip's current status.
func (t *ActiveTrip) CanTransitionTo(target TripStatus) bool {
	allowed, ok := validTransitions[t.Status]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the trip has reached a state with no outgoing
// transitions.
func (t *ActiveTrip) IsTerminal() bool {
	return t.Status == TripStatusCompleted || t.Status == TripStatusCancelled
}
