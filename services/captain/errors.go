package captain

import "errors"

var (
	// ErrTransientNetwork marks timeouts and connection drops. The command
	// had no local effect; callers may retry.
	ErrTransientNetwork = errors.New("transient network failure")

	// ErrCommandRejected marks a non-success backend response, e.g. an offer
	// already taken by another captain or an invalid OTP.
	ErrCommandRejected = errors.New("command rejected by dispatch")

	// ErrStaleReference marks a command issued against a trip or offer id
	// that no longer matches engine state. Rejected locally, no network call.
	ErrStaleReference = errors.New("reference no longer matches active state")

	// ErrInvalidLocation marks a coordinate that failed validation.
	ErrInvalidLocation = errors.New("invalid location coordinates")

	// ErrSessionClosed marks a command issued after the engine was torn
	// down. The session cannot be revived; the caller must reconnect.
	ErrSessionClosed = errors.New("session closed")

	ErrActiveTripExists  = errors.New("an active trip already exists")
	ErrNoActiveTrip      = errors.New("no active trip")
	ErrInvalidTransition = errors.New("invalid trip state transition")
	ErrInvalidOTP        = errors.New("otp must be exactly 4 digits")
	ErrOfferNotFound     = errors.New("offer not found")
)
