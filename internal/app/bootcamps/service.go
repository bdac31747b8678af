// internal/app/bootcamps/service.go

// Package bootcamps runs the save pipeline for bootcamp records:
// validation, slug derivation, address geocoding and persistence, in that
// order. A save that fails at any step writes nothing.
package bootcamps

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/devcamper/internal/app/system/auditlog"
	"github.com/dalemusser/devcamper/internal/app/system/events"
	"github.com/dalemusser/devcamper/internal/app/system/geocode"
	"github.com/dalemusser/devcamper/internal/app/system/timeouts"
	"github.com/dalemusser/devcamper/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Repository is the persistence used by Service. *bootcampstore.Store
// satisfies it.
type Repository interface {
	Create(ctx context.Context, b models.Bootcamp) (models.Bootcamp, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Bootcamp, error)
	GetBySlug(ctx context.Context, slug string) (models.Bootcamp, error)
	Replace(ctx context.Context, b models.Bootcamp) error
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Bootcamp, error)
}

// Service owns the bootcamp record lifecycle.
type Service struct {
	repo  Repository
	geo   geocode.Geocoder
	audit *auditlog.Logger
	pub   events.Publisher
	log   *zap.Logger
	now   func() time.Time
}

// New builds a Service. auditLog may be nil; pub defaults to events.Nop.
func New(repo Repository, geo geocode.Geocoder, auditLog *auditlog.Logger, pub events.Publisher, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if pub == nil {
		pub = events.Nop{}
	}
	return &Service{
		repo:  repo,
		geo:   geo,
		audit: auditLog,
		pub:   pub,
		log:   logger,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Create validates, slugs, geocodes and stores a new bootcamp. Any Slug,
// Location, ID or timestamps on in are ignored.
func (s *Service) Create(ctx context.Context, in models.Bootcamp) (models.Bootcamp, error) {
	tr := newTrace("create")
	b, err := s.create(ctx, in, tr)
	tr.log(s.log, b.Name)
	return b, err
}

func (s *Service) create(ctx context.Context, b models.Bootcamp, tr *SaveTrace) (models.Bootcamp, error) {
	b.ID = primitive.NilObjectID
	b.Slug = ""
	b.Location = nil

	if err := Validate(&b, true); err != nil {
		return b, tr.fail(err)
	}
	tr.advance(StageValidated)

	if err := s.derive(&b); err != nil {
		return b, tr.fail(err)
	}
	tr.advance(StageSluggified)

	address := b.Address
	if err := s.Geocode(ctx, &b); err != nil {
		s.audit.GeocodeFailed(ctx, nil, b.Name, address, err.Error())
		return b, tr.fail(err)
	}
	tr.advance(StageGeocoded)

	now := s.now()
	b.ID = primitive.NewObjectID()
	b.CreatedAt = now
	b.UpdatedAt = now

	saved, err := s.repo.Create(ctx, b)
	if err != nil {
		return b, tr.fail(uniquenessError(b.Name, err))
	}
	tr.advance(StagePersisted)

	s.audit.Geocoded(ctx, saved.ID, address, saved.Location.FormattedAddress)
	s.audit.BootcampCreated(ctx, saved.ID, saved.Name, saved.Slug)
	s.publish(ctx, events.BootcampCreated, saved)
	return saved, nil
}

// Update replaces the editable fields of bootcamp id with those of in and
// runs the full pipeline again. The slug always follows the new name. The
// address is geocoded only when in carries one; otherwise the stored
// location is kept. CreatedAt never changes.
func (s *Service) Update(ctx context.Context, id primitive.ObjectID, in models.Bootcamp) (models.Bootcamp, error) {
	tr := newTrace("update")
	b, err := s.update(ctx, id, in, tr)
	tr.log(s.log, b.Name)
	return b, err
}

func (s *Service) update(ctx context.Context, id primitive.ObjectID, b models.Bootcamp, tr *SaveTrace) (models.Bootcamp, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return b, tr.fail(notFound(err))
	}

	b.ID = existing.ID
	b.CreatedAt = existing.CreatedAt
	b.Slug = ""
	b.Location = nil

	if err := Validate(&b, existing.Location == nil); err != nil {
		return b, tr.fail(err)
	}
	tr.advance(StageValidated)

	if err := s.derive(&b); err != nil {
		return b, tr.fail(err)
	}
	tr.advance(StageSluggified)

	address := b.Address
	if address != "" {
		if err := s.Geocode(ctx, &b); err != nil {
			s.audit.GeocodeFailed(ctx, &id, b.Name, address, err.Error())
			return b, tr.fail(err)
		}
	} else {
		b.Location = existing.Location
	}
	tr.advance(StageGeocoded)

	b.UpdatedAt = s.now()
	if err := s.repo.Replace(ctx, b); err != nil {
		return b, tr.fail(uniquenessError(b.Name, notFound(err)))
	}
	tr.advance(StagePersisted)

	if address != "" {
		s.audit.Geocoded(ctx, b.ID, address, b.Location.FormattedAddress)
	}
	s.audit.BootcampUpdated(ctx, b.ID, b.Name, b.Slug)
	s.publish(ctx, events.BootcampUpdated, b)
	return b, nil
}

// derive fills the fields computed from the validated name.
func (s *Service) derive(b *models.Bootcamp) error {
	slug, err := Slugify(b.Name)
	if err != nil {
		return err
	}
	b.Slug = slug
	b.NameCI = text.Fold(b.Name)
	return nil
}

// Geocode resolves b.Address into b.Location using the first candidate the
// provider returns, then clears b.Address. On any failure b is left
// unchanged and a *GeocodingError is returned.
func (s *Service) Geocode(ctx context.Context, b *models.Bootcamp) error {
	address := strings.TrimSpace(b.Address)
	if address == "" {
		return &GeocodingError{Address: address, Err: geocode.ErrNoAddress}
	}

	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Geocode(), s.log, "geocode bootcamp address")
	defer cancel()

	candidates, err := s.geo.Geocode(ctx, address)
	if err != nil {
		return &GeocodingError{Address: address, Err: err}
	}
	if len(candidates) == 0 {
		return &GeocodingError{Address: address, Err: ErrNoCandidates}
	}

	c := candidates[0]
	b.Location = &models.Location{
		Type:             models.GeoJSONPoint,
		Coordinates:      []float64{c.Longitude, c.Latitude},
		FormattedAddress: c.FormattedAddress,
		Street:           c.StreetName,
		City:             c.City,
		State:            c.StateCode,
		Zipcode:          c.Zipcode,
		Country:          c.CountryCode,
	}
	b.Address = ""
	return nil
}

// Get returns the bootcamp with the given id.
func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (models.Bootcamp, error) {
	b, err := s.repo.GetByID(ctx, id)
	return b, notFound(err)
}

// GetBySlug returns the bootcamp with the given slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (models.Bootcamp, error) {
	b, err := s.repo.GetBySlug(ctx, slug)
	return b, notFound(err)
}

// List returns every bootcamp ordered by name.
func (s *Service) List(ctx context.Context) ([]models.Bootcamp, error) {
	return s.repo.Find(ctx, bson.M{})
}

// Delete removes the bootcamp with the given id.
func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	s.audit.BootcampDeleted(ctx, id)
	s.publish(ctx, events.BootcampDeleted, models.Bootcamp{ID: id})
	return nil
}

// publish sends a change after a successful write. The write already
// happened, so a failure is only logged.
func (s *Service) publish(ctx context.Context, typ string, b models.Bootcamp) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()
	err := s.pub.Publish(ctx, events.Change{
		Type: typ,
		ID:   b.ID.Hex(),
		Name: b.Name,
		Slug: b.Slug,
		At:   s.now(),
	})
	if err != nil {
		s.log.Warn("publish bootcamp change failed",
			zap.String("type", typ),
			zap.String("bootcamp_id", b.ID.Hex()),
			zap.Error(err))
	}
}

func isDeadline(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
