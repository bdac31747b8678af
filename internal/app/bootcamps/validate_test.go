package bootcamps_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/dalemusser/devcamper/internal/app/bootcamps"
	"github.com/dalemusser/devcamper/internal/domain/models"
)

func TestValidate_Normalizes(t *testing.T) {
	b := validBootcamp()
	b.Name = "  Devcentral Bootcamp  "
	b.Description = "Learn <script>alert(1)</script>R&D skills"
	b.Website = " https://devcentral.com "
	b.Careers = []string{" Web Development "}

	if err := bootcamps.Validate(&b, true); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if b.Name != "Devcentral Bootcamp" {
		t.Errorf("Name = %q", b.Name)
	}
	if b.Description != "Learn R&D skills" {
		t.Errorf("Description = %q", b.Description)
	}
	if b.Website != "https://devcentral.com" {
		t.Errorf("Website = %q", b.Website)
	}
	if b.Careers[0] != models.CareerWebDevelopment {
		t.Errorf("Careers[0] = %q", b.Careers[0])
	}
	if b.Photo != models.DefaultBootcampPhoto {
		t.Errorf("Photo = %q", b.Photo)
	}
}

func TestValidate_Name(t *testing.T) {
	tests := []struct {
		name string
		in   string
		tag  string
	}{
		{"plain", "Devcentral Bootcamp", ""},
		{"punctuation", "UI/UX Academy", ""},
		{"ampersand", "Code & Coffee", ""},
		{"accented", "Café Codeurs", ""},
		{"tags", "<b>Devcentral</b>", "nohtml"},
		{"unclosed tag", "A<B Academy", "nohtml"},
		{"entity", "R&amp;D", "nohtml"},
		{"cyrillic only", "Школа кода", "slug"},
		{"punctuation only", "!!!", "slug"},
		{"blank", "   ", "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBootcamp()
			b.Name = tt.in
			err := bootcamps.Validate(&b, true)
			if tt.tag == "" {
				if err != nil {
					t.Fatalf("Validate(%q) failed: %v", tt.in, err)
				}
				if b.Name != tt.in {
					t.Errorf("Name rewritten to %q", b.Name)
				}
				return
			}
			var ve *bootcamps.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Validate(%q) = %v, want *ValidationError", tt.in, err)
			}
			found := false
			for _, fe := range ve.Errors {
				if fe.Field == "Name" && fe.Tag == tt.tag {
					found = true
				}
			}
			if !found {
				t.Errorf("Validate(%q) errors = %+v, want Name/%s", tt.in, ve.Errors, tt.tag)
			}
		})
	}
}

func TestValidate_DoesNotWriteCallerCareers(t *testing.T) {
	careers := []string{" Web Development ", "Other"}
	b := validBootcamp()
	b.Careers = careers

	if err := bootcamps.Validate(&b, true); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if careers[0] != " Web Development " {
		t.Errorf("caller slice changed to %q", careers[0])
	}
	if b.Careers[0] != models.CareerWebDevelopment {
		t.Errorf("Careers[0] = %q", b.Careers[0])
	}
}

func TestValidate_KeepsExplicitPhoto(t *testing.T) {
	b := validBootcamp()
	b.Photo = "photo_5d725a1b7b292f5f8ceff788.jpg"
	if err := bootcamps.Validate(&b, true); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if b.Photo != "photo_5d725a1b7b292f5f8ceff788.jpg" {
		t.Errorf("Photo = %q", b.Photo)
	}
}

func TestValidate_AddressRequirement(t *testing.T) {
	b := validBootcamp()
	b.Address = ""

	err := bootcamps.Validate(&b, true)
	var ve *bootcamps.ValidationError
	if !errors.As(err, &ve) || !ve.Has("Address") {
		t.Fatalf("expected Address error, got %v", err)
	}

	b = validBootcamp()
	b.Address = ""
	if err := bootcamps.Validate(&b, false); err != nil {
		t.Errorf("address not required: %v", err)
	}
}

func TestValidate_Rating(t *testing.T) {
	rating := func(v float64) *float64 { return &v }
	tests := []struct {
		name  string
		value *float64
		ok    bool
	}{
		{"unset", nil, true},
		{"lower bound", rating(1), true},
		{"upper bound", rating(10), true},
		{"below", rating(0.5), false},
		{"above", rating(11), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBootcamp()
			b.AverageRating = tt.value
			err := bootcamps.Validate(&b, true)
			if (err == nil) != tt.ok {
				t.Errorf("Validate() error = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	b := validBootcamp()
	b.Name = ""
	b.Careers = nil

	err := bootcamps.Validate(&b, true)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "validation failed: ") {
		t.Errorf("Error() = %q", msg)
	}
	if !strings.Contains(msg, "Name") || !strings.Contains(msg, "Careers") {
		t.Errorf("Error() = %q, want both fields named", msg)
	}
}
