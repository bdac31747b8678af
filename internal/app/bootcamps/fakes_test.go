package bootcamps_test

import (
	"context"
	"sort"
	"sync"

	"github.com/dalemusser/devcamper/internal/app/store/audit"
	bootcampstore "github.com/dalemusser/devcamper/internal/app/store/bootcamps"
	"github.com/dalemusser/devcamper/internal/app/system/events"
	"github.com/dalemusser/devcamper/internal/app/system/geocode"
	"github.com/dalemusser/devcamper/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// memRepo mirrors the store's behavior, including the unique name index.
type memRepo struct {
	mu   sync.Mutex
	docs map[primitive.ObjectID]models.Bootcamp
}

func newMemRepo() *memRepo {
	return &memRepo{docs: map[primitive.ObjectID]models.Bootcamp{}}
}

func (r *memRepo) nameTaken(name string, except primitive.ObjectID) bool {
	for id, d := range r.docs {
		if id != except && d.Name == name {
			return true
		}
	}
	return false
}

func (r *memRepo) Create(ctx context.Context, b models.Bootcamp) (models.Bootcamp, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	if r.nameTaken(b.Name, b.ID) {
		return models.Bootcamp{}, bootcampstore.ErrDuplicateBootcamp
	}
	r.docs[b.ID] = b
	return b, nil
}

func (r *memRepo) GetByID(ctx context.Context, id primitive.ObjectID) (models.Bootcamp, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.docs[id]
	if !ok {
		return models.Bootcamp{}, mongo.ErrNoDocuments
	}
	return b, nil
}

func (r *memRepo) GetBySlug(ctx context.Context, slug string) (models.Bootcamp, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.docs {
		if b.Slug == slug {
			return b, nil
		}
	}
	return models.Bootcamp{}, mongo.ErrNoDocuments
}

func (r *memRepo) Replace(ctx context.Context, b models.Bootcamp) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[b.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	if r.nameTaken(b.Name, b.ID) {
		return bootcampstore.ErrDuplicateBootcamp
	}
	r.docs[b.ID] = b
	return nil
}

func (r *memRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[id]; !ok {
		return 0, nil
	}
	delete(r.docs, id)
	return 1, nil
}

func (r *memRepo) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Bootcamp, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Bootcamp, 0, len(r.docs))
	for _, b := range r.docs {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NameCI < out[j].NameCI })
	return out, nil
}

func (r *memRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.docs)
}

// torontoGeocoder answers every address with the same downtown Toronto point.
func torontoGeocoder(calls *int) geocode.Geocoder {
	return geocode.Func(func(ctx context.Context, address string) ([]geocode.Candidate, error) {
		if calls != nil {
			*calls++
		}
		return []geocode.Candidate{{
			Longitude:        -79.3832,
			Latitude:         43.6532,
			FormattedAddress: "233 Bay St, Toronto, ON M5J 2R2, CA",
			StreetName:       "233 Bay St",
			City:             "Toronto",
			StateCode:        "ON",
			Zipcode:          "M5J 2R2",
			CountryCode:      "CA",
		}}, nil
	})
}

type recordingAuditStore struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recordingAuditStore) Log(ctx context.Context, e audit.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recordingAuditStore) ofType(eventType string) []audit.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []audit.Event
	for _, e := range r.events {
		if e.EventType == eventType {
			out = append(out, e)
		}
	}
	return out
}

type recordingPublisher struct {
	mu      sync.Mutex
	changes []events.Change
	err     error
}

func (p *recordingPublisher) Publish(ctx context.Context, c events.Change) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.changes = append(p.changes, c)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func validBootcamp() models.Bootcamp {
	return models.Bootcamp{
		Name:        "Devcentral Bootcamp",
		Description: "Is coding your passion? Devcentral will give you the skills you need.",
		Website:     "https://devcentral.com",
		Phone:       "(444) 444-4444",
		Email:       "enroll@devcentral.com",
		Address:     "233 Bay St, Toronto, ON",
		Careers:     []string{models.CareerMobileDevelopment, models.CareerWebDevelopment},
		Housing:     false,
		AcceptGi:    true,
	}
}
