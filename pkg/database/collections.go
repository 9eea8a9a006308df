package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Saved routes expire an hour after creation
const transitRouteExpirySeconds = 3600

func createIndexes() {
	createStationsIndexes()
	createTransitRoutesIndexes()
}

func createStationsIndexes() {
	stationsCollection := GetCollection("stations")
	stationsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "stationname", Value: 1}, {Key: "linecode", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "railoperatorcode", Value: 1}},
		},
	}

	opts := options.CreateIndexes()
	_, err := stationsCollection.Indexes().CreateMany(context.Background(), stationsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createTransitRoutesIndexes() {
	transitRoutesCollection := GetCollection("transit_routes")
	transitRoutesIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "userid", Value: 1}, {Key: "routeid", Value: 1}},
		},
		{
			Keys:    bson.D{{Key: "creationdatetime", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(transitRouteExpirySeconds),
		},
	}

	opts := options.CreateIndexes()
	_, err := transitRoutesCollection.Indexes().CreateMany(context.Background(), transitRoutesIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
