package geocode_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/dalemusser/devcamper/internal/app/system/geocode"
	"go.uber.org/zap"
)

type memCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	getErr  error
	setErr  error
	setKeys []string
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (m *memCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	b, ok := m.data[key]
	return b, ok, nil
}

func (m *memCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	m.setKeys = append(m.setKeys, key)
	return nil
}

type countingGeocoder struct {
	calls int
	cands []geocode.Candidate
	err   error
}

func (c *countingGeocoder) Geocode(ctx context.Context, address string) ([]geocode.Candidate, error) {
	c.calls++
	return c.cands, c.err
}

var toronto = geocode.Candidate{
	Longitude: -79.37924, Latitude: 43.64726,
	FormattedAddress: "233 Bay St, Toronto, ON M5J 2S1, CA",
	StreetName:       "233 Bay St", City: "Toronto", StateCode: "ON", Zipcode: "M5J 2S1", CountryCode: "CA",
}

func TestCacheKey_Normalizes(t *testing.T) {
	a := geocode.CacheKey("233 Bay St, Toronto, ON")
	b := geocode.CacheKey("  233  BAY st,   Toronto, ON ")
	if a != b {
		t.Errorf("keys differ: %q vs %q", a, b)
	}
}

func TestCached_HitSkipsProvider(t *testing.T) {
	next := &countingGeocoder{cands: []geocode.Candidate{toronto}}
	cache := newMemCache()
	c := geocode.NewCached(next, cache, time.Hour, zap.NewNop())
	ctx := context.Background()

	first, err := c.Geocode(ctx, "233 Bay St, Toronto, ON")
	if err != nil {
		t.Fatalf("first Geocode failed: %v", err)
	}
	second, err := c.Geocode(ctx, "233 bay st, toronto, on")
	if err != nil {
		t.Fatalf("second Geocode failed: %v", err)
	}

	if next.calls != 1 {
		t.Errorf("provider calls: got %d, want 1", next.calls)
	}
	if len(second) != 1 || second[0] != first[0] {
		t.Errorf("cached candidate mismatch: %+v vs %+v", second, first)
	}
}

func TestCached_EmptyResultNotCached(t *testing.T) {
	next := &countingGeocoder{}
	cache := newMemCache()
	c := geocode.NewCached(next, cache, time.Hour, nil)

	for i := 0; i < 2; i++ {
		cands, err := c.Geocode(context.Background(), "nowhere")
		if err != nil || len(cands) != 0 {
			t.Fatalf("Geocode: cands=%v err=%v", cands, err)
		}
	}
	if next.calls != 2 {
		t.Errorf("provider calls: got %d, want 2", next.calls)
	}
	if len(cache.setKeys) != 0 {
		t.Errorf("expected nothing cached, got %v", cache.setKeys)
	}
}

func TestCached_ProviderErrorPassesThrough(t *testing.T) {
	boom := errors.New("boom")
	c := geocode.NewCached(&countingGeocoder{err: boom}, newMemCache(), time.Hour, nil)
	if _, err := c.Geocode(context.Background(), "x"); !errors.Is(err, boom) {
		t.Errorf("expected provider error, got %v", err)
	}
}

func TestCached_CacheFailuresFallThrough(t *testing.T) {
	next := &countingGeocoder{cands: []geocode.Candidate{toronto}}
	cache := newMemCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	c := geocode.NewCached(next, cache, time.Hour, zap.NewNop())

	cands, err := c.Geocode(context.Background(), "233 Bay St")
	if err != nil {
		t.Fatalf("Geocode failed: %v", err)
	}
	if len(cands) != 1 || next.calls != 1 {
		t.Errorf("expected provider result, got %v (calls=%d)", cands, next.calls)
	}
}

func TestRedisCache_RoundTrip(t *testing.T) {
	url := os.Getenv("DEVCAMPER_TEST_REDIS_URL")
	if url == "" {
		t.Skip("DEVCAMPER_TEST_REDIS_URL not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rc, err := geocode.NewRedisCache(ctx, url)
	if err != nil {
		t.Fatalf("NewRedisCache failed: %v", err)
	}
	defer rc.Close()

	key := "geocode:test:" + time.Now().Format(time.RFC3339Nano)
	if _, ok, err := rc.Get(ctx, key); err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}
	if err := rc.Set(ctx, key, []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	b, ok, err := rc.Get(ctx, key)
	if err != nil || !ok || string(b) != "v" {
		t.Errorf("Get: b=%q ok=%v err=%v", b, ok, err)
	}
}
