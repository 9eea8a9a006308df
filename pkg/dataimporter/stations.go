package dataimporter

import (
	"context"
	"encoding/csv"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/moduro/moduro/pkg/database"
	"github.com/moduro/moduro/pkg/transit"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ImportStationsFile loads station reference data from a CSV export of the
// rail operator dataset and upserts it into the stations collection.
func ImportStationsFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	// Allow us to ignore those naughty records that have missing columns
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.FieldsPerRecord = -1
		return r
	})

	var stationRecords []*transit.StationRecord
	if err := gocsv.Unmarshal(file, &stationRecords); err != nil {
		return err
	}

	stationsCollection := database.GetCollection("stations")

	for _, record := range stationRecords {
		opts := options.Update().SetUpsert(true)
		_, err := stationsCollection.UpdateOne(context.Background(), bson.M{
			"railoperatorcode": record.RailOperatorCode,
			"linecode":         record.LineCode,
			"stationcode":      record.StationCode,
		}, bson.M{"$set": record}, opts)
		if err != nil {
			log.Error().Err(err).Str("station", record.StationName).Msg("Failed to upsert station")
		}
	}

	log.Info().Int("stations", len(stationRecords)).Str("file", path).Msg("Imported station reference data")

	return nil
}
