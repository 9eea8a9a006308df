package routestore

import (
	"context"
	"errors"
	"time"

	"github.com/moduro/moduro/pkg/database"
	"github.com/moduro/moduro/pkg/transit"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrRouteNotFound = errors.New("could not find a matching saved route")

// RouteRecord is the persisted form of one itinerary candidate. The TTL index
// on CreationDateTime evicts records an hour after the search that created
// them.
type RouteRecord struct {
	UserID  string `groups:"internal"`
	RouteID string `groups:"internal"`

	Itinerary *transit.Itinerary `groups:"basic"`

	CreationDateTime time.Time `groups:"internal"`
}

type Store struct {
	collection *mongo.Collection
}

func NewStore() *Store {
	return &Store{
		collection: database.GetCollection("transit_routes"),
	}
}

// Save appends every itinerary for the user. Route ids are generated by the
// normaliser and assumed unique within the retention window.
func (s *Store) Save(ctx context.Context, userID string, itineraries []*transit.Itinerary) error {
	var documents []interface{}

	now := time.Now()
	for _, itinerary := range itineraries {
		documents = append(documents, RouteRecord{
			UserID:           userID,
			RouteID:          itinerary.RouteID,
			Itinerary:        itinerary,
			CreationDateTime: now,
		})
	}

	if len(documents) == 0 {
		return nil
	}

	_, err := s.collection.InsertMany(ctx, documents)

	return err
}

// GetByID returns the saved itinerary for (user, route id). Expired records
// behave exactly like records that never existed.
func (s *Store) GetByID(ctx context.Context, userID string, routeID string) (*transit.Itinerary, error) {
	result := s.collection.FindOne(ctx, bson.M{
		"userid":  userID,
		"routeid": routeID,
	})

	return decodeRouteRecord(result)
}

// decodeRouteRecord maps a missing document to ErrRouteNotFound and keeps
// every other failure (connection loss, corrupt record) as a distinct error.
func decodeRouteRecord(result *mongo.SingleResult) (*transit.Itinerary, error) {
	var record *RouteRecord
	err := result.Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrRouteNotFound
	}
	if err != nil {
		return nil, err
	}

	if record == nil || record.Itinerary == nil {
		return nil, ErrRouteNotFound
	}

	return record.Itinerary, nil
}
