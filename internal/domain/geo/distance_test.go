package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversine_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		lat1      float64
		lon1      float64
		lat2      float64
		lon2      float64
		expected  float64
		tolerance float64
	}{
		{"Berlin to Paris", 52.5200, 13.4050, 48.8566, 2.3522, 877.46, 1},
		{"New York to London", 40.7128, -74.0060, 51.5074, -0.1278, 5570.2, 5},
		{"Quarter of the equator", 0, 0, 0, 90, math.Pi * EarthRadiusKm / 2, 0.001},
		{"Pole to pole", 90, 0, -90, 0, math.Pi * EarthRadiusKm, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Haversine(tt.lat1, tt.lon1, tt.lat2, tt.lon2)

			assert.InDelta(t, tt.expected, got, tt.tolerance)
		})
	}
}

func TestHaversine_SamePointIsZero(t *testing.T) {
	points := [][2]float64{
		{40.7128, -74.0060},
		{-20.1923, 150.775565},
		{90, 180},
		{0, 0},
	}

	for _, p := range points {
		assert.Equal(t, 0.0, Haversine(p[0], p[1], p[0], p[1]))
	}
}

func TestHaversine_IsSymmetric(t *testing.T) {
	pairs := [][4]float64{
		{52.5200, 13.4050, 48.8566, 2.3522},
		{-20.1823, 150.775565, -20.1900, 150.780000},
		{-89.9, -179.9, 89.9, 179.9},
		{13.7563, 100.5018, 18.7883, 98.9853},
	}

	for _, p := range pairs {
		ab := Haversine(p[0], p[1], p[2], p[3])
		ba := Haversine(p[2], p[3], p[0], p[1])

		assert.InDelta(t, ab, ba, 1e-9)
		assert.GreaterOrEqual(t, ab, 0.0)
	}
}

func TestHaversine_OutOfRangeInputStillDefined(t *testing.T) {
	assert.NotPanics(t, func() {
		d := Haversine(95, 0, -200, 400)

		assert.False(t, math.IsNaN(d))
		assert.GreaterOrEqual(t, d, 0.0)
	})
}

func BenchmarkHaversine(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Haversine(52.5200, 13.4050, 48.8566, 2.3522)
	}
}
