package bootcamps

import (
	"errors"
	"strings"

	"github.com/dalemusser/devcamper/internal/app/system/htmlsanitize"
	"github.com/dalemusser/devcamper/internal/app/system/inputval"
	"github.com/dalemusser/devcamper/internal/domain/models"
)

// Validate normalizes b in place and checks it against the field rules.
// Name is only trimmed; markup in it is rejected rather than stripped.
// requireAddress is set when the save has no stored location to fall back
// on, which is always the case on create.
//
// On failure the returned *ValidationError names every offending field.
// Nothing is derived (slug, location) before Validate succeeds.
func Validate(b *models.Bootcamp, requireAddress bool) error {
	normalize(b)

	res := inputval.Validate(b)
	errs := append([]inputval.FieldError(nil), res.Errors...)
	errs = append(errs, nameErrors(b.Name)...)

	if requireAddress && b.Address == "" {
		errs = append(errs, inputval.FieldError{
			Field:   "Address",
			Tag:     "required",
			Message: "Please add an address.",
		})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// nameErrors rejects names that carry markup or that have no ASCII letter
// or digit to build a slug from. An empty name is left to the required rule.
func nameErrors(name string) []inputval.FieldError {
	if name == "" {
		return nil
	}
	if htmlsanitize.HasMarkup(name) {
		return []inputval.FieldError{{
			Field:   "Name",
			Tag:     "nohtml",
			Message: "Name cannot contain HTML.",
		}}
	}
	if _, err := Slugify(name); errors.Is(err, ErrEmptyName) {
		return []inputval.FieldError{{
			Field:   "Name",
			Tag:     "slug",
			Message: "Name must contain at least one letter or digit.",
		}}
	}
	return nil
}

func normalize(b *models.Bootcamp) {
	b.Name = strings.TrimSpace(b.Name)
	b.Description = htmlsanitize.StripTags(b.Description)
	b.Website = strings.TrimSpace(b.Website)
	b.Phone = strings.TrimSpace(b.Phone)
	b.Email = strings.TrimSpace(b.Email)
	b.Address = strings.TrimSpace(b.Address)
	if strings.TrimSpace(b.Photo) == "" {
		b.Photo = models.DefaultBootcampPhoto
	}
	b.Careers = append([]string(nil), b.Careers...)
	for i, c := range b.Careers {
		b.Careers[i] = strings.TrimSpace(c)
	}
}
