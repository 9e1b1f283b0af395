package entity

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// RiderLocation is the last known position of a rider. There is at most one per rider.
type RiderLocation struct {
	ID        int64     `json:"id" db:"id"`
	RiderID   int64     `json:"riderId" db:"rider_id"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	Rider     *Rider    `json:"rider,omitempty" db:"-"`
}

// Coordinates is a fully specified, range-checked position.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// CoordinatesPatch carries only the coordinates a caller supplied.
type CoordinatesPatch struct {
	Latitude  *float64
	Longitude *float64
}

// IsEmpty reports whether the patch changes nothing.
func (p CoordinatesPatch) IsEmpty() bool {
	return p.Latitude == nil && p.Longitude == nil
}

// Apply returns loc's coordinates with the patch merged in.
func (p CoordinatesPatch) Apply(loc Coordinates) Coordinates {
	if p.Latitude != nil {
		loc.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		loc.Longitude = *p.Longitude
	}
	return loc
}

// CoordinatesInput is an unparsed candidate position. A nil field was not
// supplied; otherwise it holds the raw text received (a JSON number literal,
// a JSON string or a query-string value).
type CoordinatesInput struct {
	Latitude  *string
	Longitude *string
}

type coordinateRule struct {
	field    string
	label    string
	min, max float64
}

var (
	latitudeRule  = coordinateRule{field: "latitude", label: "Latitude", min: MinLatitude, max: MaxLatitude}
	longitudeRule = coordinateRule{field: "longitude", label: "Longitude", min: MinLongitude, max: MaxLongitude}
)

// check parses raw and appends at most one message per violated rule.
func (r coordinateRule) check(raw *string, required bool, messages []string) (*float64, []string) {
	if raw == nil {
		if required {
			messages = append(messages, r.field+": "+r.label+" is required.")
		}
		return nil, messages
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, append(messages, r.field+": "+r.label+" must be a valid number.")
	}
	if v < r.min || v > r.max {
		return nil, append(messages, r.field+": "+r.label+" must be between "+
			strconv.FormatFloat(r.min, 'f', -1, 64)+" and "+strconv.FormatFloat(r.max, 'f', -1, 64)+".")
	}
	return &v, messages
}

// ValidateCoordinates is the strict variant used when a location is created:
// both fields are required. Every violation is reported, latitude first.
func ValidateCoordinates(in CoordinatesInput) (Coordinates, error) {
	var messages []string
	lat, messages := latitudeRule.check(in.Latitude, true, messages)
	lon, messages := longitudeRule.check(in.Longitude, true, messages)
	if len(messages) > 0 {
		return Coordinates{}, NewValidationError(messages...)
	}
	return Coordinates{Latitude: *lat, Longitude: *lon}, nil
}

// ValidateCoordinatesPatch is the partial variant used when a location is
// updated: absent fields are allowed, present ones follow the strict rules.
func ValidateCoordinatesPatch(in CoordinatesInput) (CoordinatesPatch, error) {
	var messages []string
	lat, messages := latitudeRule.check(in.Latitude, false, messages)
	lon, messages := longitudeRule.check(in.Longitude, false, messages)
	if len(messages) > 0 {
		return CoordinatesPatch{}, NewValidationError(messages...)
	}
	return CoordinatesPatch{Latitude: lat, Longitude: lon}, nil
}
