package stations

import (
	"errors"
	"testing"

	"github.com/moduro/moduro/pkg/transit"
)

func testRegistry() *Registry {
	return NewRegistryFromRecords([]*transit.StationRecord{
		{RailOperatorCode: "S1", LineCode: "2", StationCode: "0222", StationName: "강남"},
		{RailOperatorCode: "S1", LineCode: "2", StationCode: "0201", StationName: "시청"},
		{RailOperatorCode: "S1", LineCode: "1", StationCode: "0132", StationName: "시청"},
		{RailOperatorCode: "S1", LineCode: "9", StationCode: "0925", StationName: "삼전"},
		{RailOperatorCode: "S9", LineCode: "9", StationCode: "0925", StationName: "삼전"},
	})
}

func TestResolve(t *testing.T) {
	registry := testRegistry()

	station, err := registry.Resolve("강남", "2")
	if err != nil {
		t.Fatalf("resolving 강남: %v", err)
	}
	if station.StationCode != "0222" {
		t.Errorf("station code = %q", station.StationCode)
	}

	// Same name on two lines resolves by line code
	station, err = registry.Resolve("시청", "1")
	if err != nil {
		t.Fatalf("resolving 시청 line 1: %v", err)
	}
	if station.StationCode != "0132" {
		t.Errorf("station code = %q", station.StationCode)
	}
}

func TestResolveNotFound(t *testing.T) {
	registry := testRegistry()

	_, err := registry.Resolve("없는역", "2")
	if !errors.Is(err, ErrStationNotFound) {
		t.Fatalf("expected ErrStationNotFound, got %v", err)
	}

	// Right name, wrong line
	_, err = registry.Resolve("강남", "9")
	if !errors.Is(err, ErrStationNotFound) {
		t.Fatalf("expected ErrStationNotFound, got %v", err)
	}
}

func TestResolveAmbiguous(t *testing.T) {
	registry := testRegistry()

	_, err := registry.Resolve("삼전", "9")
	if !errors.Is(err, ErrStationAmbiguous) {
		t.Fatalf("expected ErrStationAmbiguous, got %v", err)
	}
}
