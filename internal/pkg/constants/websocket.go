package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Dispatch push events (inbound from the backend)
	EventOfferAssigned  = "offer_assigned"
	EventOfferCancelled = "offer_cancelled"
	EventStatsUpdated   = "stats_updated"

	// Outbound presence events
	EventLocationUpdate = "location_update"

	// Captain session commands (UI -> engine)
	EventGoOnline      = "go_online"
	EventGoOffline     = "go_offline"
	EventAcceptOffer   = "accept_offer"
	EventReachedPickup = "reached_pickup"
	EventStartTrip     = "start_trip"
	EventCompleteTrip  = "complete_trip"
	EventCancelTrip    = "cancel_trip"
	EventRefresh       = "refresh"

	// Captain session events (engine -> UI)
	EventSnapshot = "snapshot"
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorValidationFailed = "validation_failed"
	ErrorUnauthorized     = "unauthorized"
	ErrorInternalError    = "internal_error"
	ErrorInvalidLocation  = "invalid_location"
	ErrorStaleReference   = "stale_reference"
	ErrorCommandRejected  = "command_rejected"
	ErrorTransient        = "transient_network"
	ErrorActiveTripExists = "active_trip_exists"
	ErrorNoActiveTrip     = "no_active_trip"
	ErrorInvalidOTP       = "invalid_otp"
	ErrorSessionClosed    = "session_closed"
)
