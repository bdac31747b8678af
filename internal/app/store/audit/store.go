// internal/app/store/audit/store.go
package audit

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Event categories
const (
	CategoryAdmin   = "admin"
	CategoryGeocode = "geocode"
)

// Admin event types
const (
	EventBootcampCreated = "bootcamp_created"
	EventBootcampUpdated = "bootcamp_updated"
	EventBootcampDeleted = "bootcamp_deleted"
)

// Geocode event types. Both carry the raw address in Details["address"],
// which is the only place it survives once a bootcamp has been geocoded.
const (
	EventBootcampGeocoded      = "bootcamp_geocoded"
	EventBootcampGeocodeFailed = "bootcamp_geocode_failed"
)

// Event represents an audit event.
type Event struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Timestamp time.Time          `bson:"timestamp"`

	// Event classification
	Category  string `bson:"category"`
	EventType string `bson:"event_type"`

	// Subject. Nil when a create failed before an ID was assigned.
	BootcampID *primitive.ObjectID `bson:"bootcamp_id,omitempty"`

	// Outcome
	Success       bool   `bson:"success"`
	FailureReason string `bson:"failure_reason,omitempty"`

	// Additional details (varies by event type)
	Details map[string]string `bson:"details,omitempty"`
}

// QueryFilter defines filters for querying audit events.
type QueryFilter struct {
	BootcampID *primitive.ObjectID
	Category   string
	EventType  string
	StartTime  *time.Time
	EndTime    *time.Time
	Limit      int64
	Offset     int64
}

// Store manages audit event records.
type Store struct {
	c *mongo.Collection
}

// New creates a new audit Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("audit_events")}
}

// Log records an audit event.
func (s *Store) Log(ctx context.Context, event Event) error {
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	_, err := s.c.InsertOne(ctx, event)
	return err
}

func buildQuery(filter QueryFilter) bson.M {
	query := bson.M{}
	if filter.BootcampID != nil {
		query["bootcamp_id"] = filter.BootcampID
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.EventType != "" {
		query["event_type"] = filter.EventType
	}
	if filter.StartTime != nil || filter.EndTime != nil {
		timeQuery := bson.M{}
		if filter.StartTime != nil {
			timeQuery["$gte"] = *filter.StartTime
		}
		if filter.EndTime != nil {
			timeQuery["$lte"] = *filter.EndTime
		}
		query["timestamp"] = timeQuery
	}
	return query
}

// Query retrieves audit events matching the given filter, newest first.
func (s *Store) Query(ctx context.Context, filter QueryFilter) ([]Event, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit).
		SetSkip(filter.Offset)

	cursor, err := s.c.Find(ctx, buildQuery(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// CountByFilter returns the count of events matching the filter.
func (s *Store) CountByFilter(ctx context.Context, filter QueryFilter) (int64, error) {
	return s.c.CountDocuments(ctx, buildQuery(filter))
}

// GetByBootcamp retrieves recent audit events for one bootcamp.
func (s *Store) GetByBootcamp(ctx context.Context, bootcampID primitive.ObjectID, limit int64) ([]Event, error) {
	return s.Query(ctx, QueryFilter{
		BootcampID: &bootcampID,
		Limit:      limit,
	})
}

// LastGeocodedAddress returns the raw address most recently geocoded for a
// bootcamp, so it can be re-geocoded after a provider change.
// Returns mongo.ErrNoDocuments when none was recorded.
func (s *Store) LastGeocodedAddress(ctx context.Context, bootcampID primitive.ObjectID) (string, error) {
	events, err := s.Query(ctx, QueryFilter{
		BootcampID: &bootcampID,
		Category:   CategoryGeocode,
		EventType:  EventBootcampGeocoded,
		Limit:      1,
	})
	if err != nil {
		return "", err
	}
	if len(events) == 0 {
		return "", mongo.ErrNoDocuments
	}
	return events[0].Details["address"], nil
}
