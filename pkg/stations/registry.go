package stations

import (
	"context"
	"errors"
	"fmt"

	"github.com/moduro/moduro/pkg/database"
	"github.com/moduro/moduro/pkg/transit"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

var ErrStationNotFound = errors.New("station not found")
var ErrStationAmbiguous = errors.New("station name and line match multiple operators")

type registryKey struct {
	StationName string
	LineCode    string
}

// Registry resolves a station name plus line code to its canonical station
// record. The whole stations collection is read once at startup into an
// indexed map; the reference data never changes at runtime.
type Registry struct {
	records map[registryKey][]*transit.StationRecord
}

func NewRegistry() (*Registry, error) {
	stationsCollection := database.GetCollection("stations")

	cursor, err := stationsCollection.Find(context.Background(), bson.M{})
	if err != nil {
		return nil, fmt.Errorf("loading stations collection: %w", err)
	}

	var stationRecords []*transit.StationRecord
	if err := cursor.All(context.Background(), &stationRecords); err != nil {
		return nil, fmt.Errorf("decoding stations collection: %w", err)
	}

	registry := NewRegistryFromRecords(stationRecords)

	log.Info().Int("stations", len(stationRecords)).Msg("Loaded station directory")

	return registry, nil
}

func NewRegistryFromRecords(stationRecords []*transit.StationRecord) *Registry {
	records := map[registryKey][]*transit.StationRecord{}

	for _, record := range stationRecords {
		key := registryKey{
			StationName: record.StationName,
			LineCode:    record.LineCode,
		}

		records[key] = append(records[key], record)
	}

	return &Registry{records: records}
}

// Resolve does an exact match on (name, line code). Names must be supplied
// exactly as the routing provider returns them.
func (r *Registry) Resolve(stationName string, lineCode string) (*transit.StationRecord, error) {
	matches := r.records[registryKey{
		StationName: stationName,
		LineCode:    lineCode,
	}]

	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s (line %s)", ErrStationNotFound, stationName, lineCode)
	}

	if len(matches) > 1 {
		return nil, fmt.Errorf("%w: %s (line %s)", ErrStationAmbiguous, stationName, lineCode)
	}

	return matches[0], nil
}
