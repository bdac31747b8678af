// internal/app/system/geocode/geocode.go

// Package geocode resolves free-text addresses into coordinates and
// normalized address parts using an external provider.
package geocode

import (
	"context"
	"errors"
)

// ErrNoAddress is returned when Geocode is called with a blank address.
var ErrNoAddress = errors.New("geocode: address is required")

// Candidate is one match returned by a provider, best match first.
type Candidate struct {
	Longitude        float64 `json:"longitude"`
	Latitude         float64 `json:"latitude"`
	FormattedAddress string  `json:"formattedAddress"`
	StreetName       string  `json:"streetName"`
	City             string  `json:"city"`
	StateCode        string  `json:"stateCode"`
	Zipcode          string  `json:"zipcode"`
	CountryCode      string  `json:"countryCode"`
}

// Geocoder turns an address into an ordered list of candidates.
// An empty list with a nil error means the provider found nothing.
type Geocoder interface {
	Geocode(ctx context.Context, address string) ([]Candidate, error)
}

// Func adapts a plain function to the Geocoder interface.
type Func func(ctx context.Context, address string) ([]Candidate, error)

// Geocode calls f.
func (f Func) Geocode(ctx context.Context, address string) ([]Candidate, error) {
	return f(ctx, address)
}
