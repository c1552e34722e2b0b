package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adhiwira/kapten/internal/pkg/models"
)

func TestEncodeLocation(t *testing.T) {
	monas := models.Coordinate{Latitude: -6.175392, Longitude: 106.827153}

	hash := EncodeLocation(monas, 6)

	assert.Len(t, hash, 6)
	// Same cell for nearby points at this precision.
	nearby := models.Coordinate{Latitude: -6.175400, Longitude: 106.827160}
	assert.Equal(t, hash, EncodeLocation(nearby, 6))
}

func TestCalculateDistance(t *testing.T) {
	tests := []struct {
		name   string
		a, b   models.Coordinate
		wantKm float64
		delta  float64
	}{
		{
			name:   "same point",
			a:      models.Coordinate{Latitude: -6.2088, Longitude: 106.8456},
			b:      models.Coordinate{Latitude: -6.2088, Longitude: 106.8456},
			wantKm: 0,
			delta:  0.001,
		},
		{
			name:   "across central jakarta",
			a:      models.Coordinate{Latitude: -6.175392, Longitude: 106.827153},
			b:      models.Coordinate{Latitude: -6.121435, Longitude: 106.774124},
			wantKm: 8.4,
			delta:  0.3,
		},
		{
			name:   "jakarta to bandung",
			a:      models.Coordinate{Latitude: -6.2088, Longitude: 106.8456},
			b:      models.Coordinate{Latitude: -6.9175, Longitude: 107.6191},
			wantKm: 116,
			delta:  5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantKm, CalculateDistance(tt.a, tt.b), tt.delta)
		})
	}
}

func TestCalculateDistance_Symmetric(t *testing.T) {
	a := models.Coordinate{Latitude: -6.175392, Longitude: 106.827153}
	b := models.Coordinate{Latitude: -6.121435, Longitude: 106.774124}

	assert.InDelta(t, CalculateDistance(a, b), CalculateDistance(b, a), 0.0001)
}
