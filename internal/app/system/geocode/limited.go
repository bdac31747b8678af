package geocode

import (
	"context"
	"errors"
)

// ErrRateLimited is returned when the provider quota for the current window
// is used up. The provider is not called.
var ErrRateLimited = errors.New("geocode: provider rate limit reached")

// Allower decides whether one more call for key may proceed.
// *ratelimit.Limiter satisfies it.
type Allower interface {
	Allow(key string) bool
}

// Limited guards a provider with a call quota. Wrap it inside Cached so
// cache hits do not count against the quota.
type Limited struct {
	Next    Geocoder
	Limiter Allower
	Key     string
}

// NewLimited returns next guarded by limiter under key.
func NewLimited(next Geocoder, limiter Allower, key string) *Limited {
	return &Limited{Next: next, Limiter: limiter, Key: key}
}

func (l *Limited) Geocode(ctx context.Context, address string) ([]Candidate, error) {
	if !l.Limiter.Allow(l.Key) {
		return nil, ErrRateLimited
	}
	return l.Next.Geocode(ctx, address)
}
