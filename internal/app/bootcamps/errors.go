package bootcamps

import (
	"errors"
	"fmt"
	"strings"

	bootcampstore "github.com/dalemusser/devcamper/internal/app/store/bootcamps"
	"github.com/dalemusser/devcamper/internal/app/system/inputval"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrEmptyName is returned by Slugify when there is nothing to derive a slug from.
	ErrEmptyName = errors.New("bootcamp name is empty")

	// ErrNoCandidates is the cause of a GeocodingError when the provider
	// returned no result for the address.
	ErrNoCandidates = errors.New("geocoder returned no candidates")

	// ErrNotFound is returned when no bootcamp matches the id or slug.
	ErrNotFound = errors.New("bootcamp not found")
)

// ValidationError lists every field that failed the validation gate.
type ValidationError struct {
	Errors []inputval.FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Fields returns the names of the offending fields in the order reported.
func (e *ValidationError) Fields() []string {
	seen := make(map[string]bool, len(e.Errors))
	var out []string
	for _, fe := range e.Errors {
		if !seen[fe.Field] {
			seen[fe.Field] = true
			out = append(out, fe.Field)
		}
	}
	return out
}

// Has reports whether field is among the offending fields.
func (e *ValidationError) Has(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// UniquenessError is returned when a save would duplicate another
// bootcamp's unique field.
type UniquenessError struct {
	Field string
	Value string
	Err   error
}

func (e *UniquenessError) Error() string {
	return fmt.Sprintf("a bootcamp with %s %q already exists", e.Field, e.Value)
}

func (e *UniquenessError) Unwrap() error { return e.Err }

// GeocodingError is returned when the address could not be resolved to a
// location. Nothing is persisted when it occurs.
type GeocodingError struct {
	Address string
	Err     error
}

func (e *GeocodingError) Error() string {
	return fmt.Sprintf("geocoding %q: %v", e.Address, e.Err)
}

func (e *GeocodingError) Unwrap() error { return e.Err }

// Timeout reports whether the provider call ran out of time.
func (e *GeocodingError) Timeout() bool {
	return isDeadline(e.Err)
}

func uniquenessError(name string, err error) error {
	if errors.Is(err, bootcampstore.ErrDuplicateBootcamp) {
		return &UniquenessError{Field: "Name", Value: name, Err: err}
	}
	return err
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
