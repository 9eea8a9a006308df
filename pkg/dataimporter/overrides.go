package dataimporter

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/moduro/moduro/pkg/database"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gopkg.in/yaml.v3"
)

// StationOverride patches station reference records after an import, for the
// cases where the provider dataset and the routing provider disagree on a
// station name.
type StationOverride struct {
	Match map[string]string      `yaml:"Match"`
	Set   map[string]interface{} `yaml:"Set"`
}

func (o *StationOverride) Apply() {
	stationsCollection := database.GetCollection("stations")

	query, err := bson.Marshal(o.Match)
	if err != nil {
		log.Error().Err(err).Msg("Station override match marshall")
		return
	}

	opts := options.Update().SetUpsert(true)
	_, err = stationsCollection.UpdateOne(context.Background(), query, bson.M{"$set": o.Set}, opts)
	if err != nil {
		log.Error().Err(err).Msg("Station override update")
		return
	}
}

// ImportStationOverrides walks a directory of yaml override documents and
// applies each one.
func ImportStationOverrides(directory string) error {
	return filepath.Walk(directory,
		func(path string, fileInfo os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if fileInfo.IsDir() {
				return nil
			}

			log.Debug().Str("path", path).Msg("Loading station override file")

			overrideYaml, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			decoder := yaml.NewDecoder(bytes.NewReader(overrideYaml))

			for {
				var override StationOverride
				if decoder.Decode(&override) != nil {
					break
				}

				override.Apply()
			}

			return nil
		})
}
