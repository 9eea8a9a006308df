package transit

import (
	"errors"
	"math"
)

type Location struct {
	Type        string    `json:"-" groups:"basic"`
	Coordinates []float64 `json:"coordinates" groups:"basic"`
}

var ErrInvalidCoordinate = errors.New("coordinate out of range")

// NewPointLocation builds a GeoJSON style point from a WGS84
// longitude/latitude pair.
func NewPointLocation(longitude float64, latitude float64) (*Location, error) {
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) || math.IsNaN(latitude) || math.IsInf(latitude, 0) {
		return nil, ErrInvalidCoordinate
	}

	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return nil, ErrInvalidCoordinate
	}

	return &Location{
		Type:        "Point",
		Coordinates: []float64{longitude, latitude},
	}, nil
}

type Place struct {
	Name     string   `groups:"basic"`
	Location Location `groups:"basic"`
}
