package location

import "github.com/DioGolang/GoRider/internal/domain/entity"

// DefaultRadiusKm applies when a search does not carry a positive radius.
const DefaultRadiusKm = 5.0

// Input

type UpsertInput struct {
	RiderID     int64
	Coordinates entity.CoordinatesInput
}

type SearchInput struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

func (in SearchInput) radius() float64 {
	if in.RadiusKm <= 0 {
		return DefaultRadiusKm
	}
	return in.RadiusKm
}
