package models

import (
	"math"
	"time"
)

// Coordinate represents a geographic position reported by a captain device
type Coordinate struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Address   string    `json:"address,omitempty" db:"address"`
	Fallback  bool      `json:"fallback,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Valid reports whether the coordinate can be trusted as a real position.
// The exact (0,0) point is treated as a GPS failure, never a real fix.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) {
		return false
	}
	if math.IsInf(c.Latitude, 0) || math.IsInf(c.Longitude, 0) {
		return false
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return false
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return false
	}
	if c.Latitude == 0 && c.Longitude == 0 {
		return false
	}
	return true
}
