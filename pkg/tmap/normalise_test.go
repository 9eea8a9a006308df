package tmap

import (
	"errors"
	"testing"

	"github.com/moduro/moduro/pkg/transit"
)

func testRawItinerary() RawItinerary {
	raw := RawItinerary{
		TotalTime:         1865,
		TotalDistance:     12100,
		TotalWalkTime:     340,
		TotalWalkDistance: 450,
		TransferCount:     1,
	}
	raw.Fare.Regular.TotalFare = 1550

	raw.Legs = []RawLeg{
		{
			Mode:        "WALK",
			SectionTime: 340,
			Distance:    450,
			Start:       &RawPlace{Name: "출발지", Lat: 37.5, Lon: 127.0},
			End:         &RawPlace{Name: "강남", Lat: 37.497, Lon: 127.027},
			Steps: []RawStep{
				{StreetName: "강남대로", Distance: 450, Description: "강남대로 를 따라 450m 이동"},
			},
		},
		{
			Mode:        "SUBWAY",
			Route:       "수도권2호선",
			Type:        2,
			SectionTime: 1525,
			Distance:    11650,
			Start:       &RawPlace{Name: "강남", Lat: 37.497, Lon: 127.027},
			End:         &RawPlace{Name: "시청", Lat: 37.564, Lon: 126.977},
		},
	}

	return raw
}

func TestNormaliseItinerary(t *testing.T) {
	itinerary, err := NormaliseItinerary(testRawItinerary())
	if err != nil {
		t.Fatalf("normalising valid itinerary: %v", err)
	}

	if itinerary.RouteID == "" {
		t.Error("expected a generated route id")
	}

	if itinerary.TotalTime != "31분 5초" {
		t.Errorf("TotalTime = %q", itinerary.TotalTime)
	}
	if itinerary.TotalDistance != "12.10km" {
		t.Errorf("TotalDistance = %q", itinerary.TotalDistance)
	}
	if itinerary.TotalFare != "1550원" {
		t.Errorf("TotalFare = %q", itinerary.TotalFare)
	}
	if itinerary.TotalWalkTime != "5분 40초" {
		t.Errorf("TotalWalkTime = %q", itinerary.TotalWalkTime)
	}
	if itinerary.TotalWalkDistance != "450m" {
		t.Errorf("TotalWalkDistance = %q", itinerary.TotalWalkDistance)
	}

	if len(itinerary.Legs) != 2 {
		t.Fatalf("expected 2 legs, got %d", len(itinerary.Legs))
	}

	walkLeg := itinerary.Legs[0]
	if walkLeg.Mode != transit.TransportModeWalk {
		t.Errorf("first leg mode = %q", walkLeg.Mode)
	}
	if walkLeg.SectionDuration != "5분 40초" || walkLeg.Distance != "450m" {
		t.Errorf("first leg formatting: %q %q", walkLeg.SectionDuration, walkLeg.Distance)
	}
	if len(walkLeg.Steps) != 1 || walkLeg.Steps[0].Distance != "450m" {
		t.Errorf("first leg steps: %+v", walkLeg.Steps)
	}

	subwayLeg := itinerary.Legs[1]
	if subwayLeg.Mode != transit.TransportModeSubway {
		t.Errorf("second leg mode = %q", subwayLeg.Mode)
	}
	if subwayLeg.LineType != "2" {
		t.Errorf("second leg line type = %q", subwayLeg.LineType)
	}
	if subwayLeg.Steps == nil || len(subwayLeg.Steps) != 0 {
		t.Errorf("steps should default to an empty sequence, got %v", subwayLeg.Steps)
	}
	if subwayLeg.Start.Location.Coordinates[0] != 127.027 {
		t.Errorf("start location: %v", subwayLeg.Start.Location.Coordinates)
	}
}

func TestNormaliseItineraryGeneratesUniqueRouteIDs(t *testing.T) {
	first, err := NormaliseItinerary(testRawItinerary())
	if err != nil {
		t.Fatal(err)
	}
	second, err := NormaliseItinerary(testRawItinerary())
	if err != nil {
		t.Fatal(err)
	}

	if first.RouteID == second.RouteID {
		t.Errorf("route ids should differ, both were %q", first.RouteID)
	}
}

func TestNormaliseItineraryRejectsLegWithoutBoundary(t *testing.T) {
	raw := testRawItinerary()
	raw.Legs[1].End = nil

	_, err := NormaliseItinerary(raw)
	if !errors.Is(err, ErrLegMissingBoundary) {
		t.Fatalf("expected ErrLegMissingBoundary, got %v", err)
	}
}
