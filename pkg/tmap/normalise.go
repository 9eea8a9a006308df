package tmap

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/moduro/moduro/pkg/transit"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrLegMissingBoundary = errors.New("leg is missing its start or end place")

// NormaliseItinerary reshapes a raw provider itinerary into the internal
// model. Pure transformation; every call generates a fresh route id.
func NormaliseItinerary(raw RawItinerary) (*transit.Itinerary, error) {
	itinerary := &transit.Itinerary{
		RouteID: primitive.NewObjectID().Hex(),

		PathType: raw.PathType,
		Route:    raw.Route,

		TotalTime:         transit.FormatDuration(raw.TotalTime),
		TotalDistance:     transit.FormatDistance(raw.TotalDistance),
		TotalFare:         transit.FormatFare(raw.Fare.Regular.TotalFare),
		TotalWalkTime:     transit.FormatDuration(raw.TotalWalkTime),
		TotalWalkDistance: transit.FormatDistance(raw.TotalWalkDistance),
		TransferCount:     raw.TransferCount,
	}

	for index, rawLeg := range raw.Legs {
		leg, err := normaliseLeg(rawLeg)
		if err != nil {
			return nil, fmt.Errorf("leg %d: %w", index, err)
		}

		itinerary.Legs = append(itinerary.Legs, leg)
	}

	return itinerary, nil
}

func normaliseLeg(raw RawLeg) (*transit.Leg, error) {
	if raw.Start == nil || raw.End == nil {
		return nil, ErrLegMissingBoundary
	}

	leg := &transit.Leg{
		Mode:       transit.TransportMode(raw.Mode),
		RouteLabel: raw.Route,
		LineType:   strconv.Itoa(raw.Type),

		SectionDuration: transit.FormatDuration(raw.SectionTime),
		Distance:        transit.FormatDistance(raw.Distance),

		Start: normalisePlace(raw.Start),
		End:   normalisePlace(raw.End),

		Steps: []transit.Step{},
	}

	for _, rawStep := range raw.Steps {
		leg.Steps = append(leg.Steps, transit.Step{
			StreetName:  rawStep.StreetName,
			Distance:    transit.FormatDistance(rawStep.Distance),
			Description: rawStep.Description,
		})
	}

	return leg, nil
}

func normalisePlace(raw *RawPlace) transit.Place {
	return transit.Place{
		Name: raw.Name,
		Location: transit.Location{
			Type:        "Point",
			Coordinates: []float64{raw.Lon, raw.Lat},
		},
	}
}
