// internal/app/system/geocode/mapquest.go
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultMapQuestURL is the public MapQuest API host.
const DefaultMapQuestURL = "https://www.mapquestapi.com"

// MapQuest calls the MapQuest Geocoding API v1 "address" endpoint.
type MapQuest struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewMapQuest builds a client. A blank baseURL uses DefaultMapQuestURL and a
// nil client uses http.DefaultClient; request deadlines come from ctx.
func NewMapQuest(baseURL, apiKey string, client *http.Client) *MapQuest {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultMapQuestURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &MapQuest{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Client:  client,
	}
}

type mqResponse struct {
	Info struct {
		StatusCode int      `json:"statuscode"`
		Messages   []string `json:"messages"`
	} `json:"info"`
	Results []struct {
		Locations []mqLocation `json:"locations"`
	} `json:"results"`
}

type mqLocation struct {
	Street     string `json:"street"`
	AdminArea5 string `json:"adminArea5"` // city
	AdminArea3 string `json:"adminArea3"` // state / province code
	AdminArea1 string `json:"adminArea1"` // country code
	PostalCode string `json:"postalCode"`
	LatLng     struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"latLng"`
}

// Geocode implements Geocoder.
func (m *MapQuest) Geocode(ctx context.Context, address string) ([]Candidate, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrNoAddress
	}

	q := url.Values{}
	q.Set("key", m.APIKey)
	q.Set("location", address)
	endpoint := m.BaseURL + "/geocoding/v1/address?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("mapquest: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := m.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mapquest: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("mapquest: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out mqResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("mapquest: decode response: %w", err)
	}
	if out.Info.StatusCode != 0 {
		return nil, fmt.Errorf("mapquest: status %d: %s", out.Info.StatusCode, strings.Join(out.Info.Messages, "; "))
	}

	var cands []Candidate
	for _, r := range out.Results {
		for _, l := range r.Locations {
			cands = append(cands, Candidate{
				Longitude:        l.LatLng.Lng,
				Latitude:         l.LatLng.Lat,
				FormattedAddress: formatAddress(l),
				StreetName:       l.Street,
				City:             l.AdminArea5,
				StateCode:        l.AdminArea3,
				Zipcode:          l.PostalCode,
				CountryCode:      l.AdminArea1,
			})
		}
	}
	return cands, nil
}

// formatAddress renders "street, city, state zip, country", skipping blanks.
func formatAddress(l mqLocation) string {
	stateZip := strings.TrimSpace(l.AdminArea3 + " " + l.PostalCode)
	parts := make([]string, 0, 4)
	for _, p := range []string{l.Street, l.AdminArea5, stateZip, l.AdminArea1} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
