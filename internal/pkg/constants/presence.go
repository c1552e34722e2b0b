package constants

import "time"

// Redis keys for the captain presence store
const (
	KeyCaptainPresence = "kapten:presence:%s" // captain ID
	KeyCaptainGeoSet   = "kapten:geo:captains"
	PresenceTTL        = 5 * time.Minute
)

// NATS subjects for bus-based presence channel deployments
const (
	SubjectOfferAssigned  = "kapten.captain.%s.offer.assigned"
	SubjectOfferCancelled = "kapten.captain.%s.offer.cancelled"
	SubjectStatsUpdated   = "kapten.captain.%s.stats"
	SubjectLocationUpdate = "kapten.location.update"
)

// Engine defaults
const (
	DefaultPollInterval         = 15 * time.Second
	DefaultSearchRadius         = 5.0 // km
	OTPLength                   = 4
	DefaultLocationEmitInterval = 5 * time.Second
)
