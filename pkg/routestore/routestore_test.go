package routestore

import (
	"errors"
	"testing"
	"time"

	"github.com/moduro/moduro/pkg/transit"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestDecodeRouteRecord(t *testing.T) {
	record := RouteRecord{
		UserID:  "auth0|user",
		RouteID: "68b000000000000000000001",
		Itinerary: &transit.Itinerary{
			RouteID: "68b000000000000000000001",
		},
		CreationDateTime: time.Now(),
	}

	itinerary, err := decodeRouteRecord(mongo.NewSingleResultFromDocument(record, nil, nil))
	if err != nil {
		t.Fatalf("decoding record: %v", err)
	}

	if itinerary.RouteID != record.RouteID {
		t.Errorf("RouteID = %q", itinerary.RouteID)
	}
}

func TestDecodeRouteRecordMissingDocument(t *testing.T) {
	result := mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)

	_, err := decodeRouteRecord(result)
	if !errors.Is(err, ErrRouteNotFound) {
		t.Fatalf("expected ErrRouteNotFound, got %v", err)
	}
}

func TestDecodeRouteRecordDatabaseFailure(t *testing.T) {
	databaseErr := errors.New("connection reset")
	result := mongo.NewSingleResultFromDocument(bson.D{}, databaseErr, nil)

	_, err := decodeRouteRecord(result)
	if err == nil {
		t.Fatal("expected an error")
	}

	// A database outage must not read as a missing route
	if errors.Is(err, ErrRouteNotFound) {
		t.Fatalf("expected the database error to surface, got %v", err)
	}
}

func TestDecodeRouteRecordEmptyRecord(t *testing.T) {
	result := mongo.NewSingleResultFromDocument(RouteRecord{RouteID: "r"}, nil, nil)

	_, err := decodeRouteRecord(result)
	if !errors.Is(err, ErrRouteNotFound) {
		t.Fatalf("expected ErrRouteNotFound for a record without an itinerary, got %v", err)
	}
}
