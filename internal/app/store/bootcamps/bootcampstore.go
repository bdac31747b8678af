// internal/app/store/bootcamps/bootcampstore.go
package bootcampstore

import (
	"context"
	"errors"

	"github.com/dalemusser/devcamper/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the MongoDB collection holding bootcamps.
const Collection = "bootcamps"

var ErrDuplicateBootcamp = errors.New("a bootcamp with this name already exists")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// Create inserts b as-is. The caller owns ID, derived fields and timestamps;
// a zero ID is replaced with a fresh ObjectID.
func (s *Store) Create(ctx context.Context, b models.Bootcamp) (models.Bootcamp, error) {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	if _, err := s.c.InsertOne(ctx, b); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Bootcamp{}, ErrDuplicateBootcamp
		}
		return models.Bootcamp{}, err
	}
	return b, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Bootcamp, error) {
	var b models.Bootcamp
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		return models.Bootcamp{}, err
	}
	return b, nil
}

// GetBySlug returns the oldest bootcamp with the given slug.
func (s *Store) GetBySlug(ctx context.Context, slug string) (models.Bootcamp, error) {
	var b models.Bootcamp
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	if err := s.c.FindOne(ctx, bson.M{"slug": slug}, opts).Decode(&b); err != nil {
		return models.Bootcamp{}, err
	}
	return b, nil
}

// Replace overwrites the stored document with b (matched on b.ID).
// Returns mongo.ErrNoDocuments when no document has that ID.
func (s *Store) Replace(ctx context.Context, b models.Bootcamp) error {
	res, err := s.c.ReplaceOne(ctx, bson.M{"_id": b.ID}, b)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateBootcamp
		}
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a bootcamp by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Find returns bootcamps matching the given filter with optional find options.
// With no options the result is sorted by folded name.
func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Bootcamp, error) {
	if filter == nil {
		filter = bson.M{}
	}
	if len(opts) == 0 {
		opts = append(opts, options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}, {Key: "_id", Value: 1}}))
	}
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Bootcamp
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of bootcamps matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	return s.c.CountDocuments(ctx, filter)
}
