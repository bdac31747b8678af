package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/devcamper/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// Bootcamp returns a fully derived bootcamp, as the lifecycle would store
// it, without writing it. slug must be URL-safe.
func Bootcamp(name, slug string) models.Bootcamp {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return models.Bootcamp{
		ID:          primitive.NewObjectID(),
		Name:        name,
		NameCI:      text.Fold(name),
		Slug:        slug,
		Description: "A test bootcamp.",
		Website:     "https://example.com",
		Careers:     []string{models.CareerWebDevelopment},
		Photo:       models.DefaultBootcampPhoto,
		Location: &models.Location{
			Type:             models.GeoJSONPoint,
			Coordinates:      []float64{-71.104028, 42.350846},
			FormattedAddress: "233 Bay State Rd, Boston, MA 02215, US",
			Street:           "233 Bay State Rd",
			City:             "Boston",
			State:            "MA",
			Zipcode:          "02215",
			Country:          "US",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CreateBootcamp inserts a derived bootcamp directly into the collection.
func (f *Fixtures) CreateBootcamp(ctx context.Context, name, slug string) models.Bootcamp {
	f.t.Helper()

	b := Bootcamp(name, slug)
	if _, err := f.db.Collection("bootcamps").InsertOne(ctx, b); err != nil {
		f.t.Fatalf("failed to create bootcamp fixture: %v", err)
	}
	return b
}
