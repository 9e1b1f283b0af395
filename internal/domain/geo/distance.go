// Package geo holds the great-circle math used by proximity search.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius.
const EarthRadiusKm = 6371.0

// DistanceFunc returns the distance in kilometers between two points given in degrees.
type DistanceFunc func(lat1, lon1, lat2, lon2 float64) float64

// Haversine returns the great-circle distance in kilometers between
// (lat1, lon1) and (lat2, lon2). Inputs are not range checked; any finite
// input yields a finite, non-negative result.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	dPhi := toRadians(lat2 - lat1)
	dLambda := toRadians(lon2 - lon1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	// Rounding can push a a hair outside [0, 1] for antipodal or out-of-range input.
	a = math.Min(1, math.Max(0, a))

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
