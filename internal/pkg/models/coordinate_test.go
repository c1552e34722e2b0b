package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinateValid(t *testing.T) {
	tests := []struct {
		name  string
		coord Coordinate
		want  bool
	}{
		{"jakarta city center", Coordinate{Latitude: -6.2088, Longitude: 106.8456}, true},
		{"extreme but legal", Coordinate{Latitude: -90, Longitude: 180}, true},
		{"latitude above range", Coordinate{Latitude: 90.0001, Longitude: 0.1}, false},
		{"latitude below range", Coordinate{Latitude: -91, Longitude: 0.1}, false},
		{"longitude above range", Coordinate{Latitude: 0.1, Longitude: 180.0001}, false},
		{"longitude below range", Coordinate{Latitude: 0.1, Longitude: -181}, false},
		{"nan latitude", Coordinate{Latitude: math.NaN(), Longitude: 106.8}, false},
		{"nan longitude", Coordinate{Latitude: -6.2, Longitude: math.NaN()}, false},
		{"infinite latitude", Coordinate{Latitude: math.Inf(1), Longitude: 106.8}, false},
		{"infinite longitude", Coordinate{Latitude: -6.2, Longitude: math.Inf(-1)}, false},
		{"null island is a gps failure", Coordinate{Latitude: 0, Longitude: 0}, false},
		{"zero latitude alone is fine", Coordinate{Latitude: 0, Longitude: 106.8}, true},
		{"zero longitude alone is fine", Coordinate{Latitude: -6.2, Longitude: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coord.Valid())
		})
	}
}
