// Package timeouts provides centralized timeout values for database and
// provider calls.
//
// Timeouts can be configured at startup using Configure() or
// ConfigureFromEnv(). If not configured, the defaults below are used.
//
// Guidelines for choosing a timeout:
//   - Ping: health checks and connectivity verification
//   - Short: single-document reads and deletes
//   - Medium: list queries and single-document writes
//   - Geocode: one call to the external geocoding provider
package timeouts

import (
	"context"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing    = 2 * time.Second
	DefaultShort   = 5 * time.Second
	DefaultMedium  = 10 * time.Second
	DefaultGeocode = 10 * time.Second
)

var mu sync.RWMutex

var (
	ping    = DefaultPing
	short   = DefaultShort
	medium  = DefaultMedium
	geocode = DefaultGeocode
)

// Ping returns the timeout for health checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Short returns the timeout for single-document reads and deletes.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Medium returns the timeout for list queries and writes.
func Medium() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return medium
}

// Geocode returns the upper bound for one geocoding provider call.
// A save that exceeds it fails with a geocoding error.
func Geocode() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return geocode
}

// Config holds timeout configuration values.
// Zero values are ignored (current values are kept).
type Config struct {
	Ping    time.Duration
	Short   time.Duration
	Medium  time.Duration
	Geocode time.Duration
}

// Configure sets custom timeout values. Call during startup.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Short > 0 {
		short = cfg.Short
	}
	if cfg.Medium > 0 {
		medium = cfg.Medium
	}
	if cfg.Geocode > 0 {
		geocode = cfg.Geocode
	}
}

// Reset restores all timeouts to their default values.
// Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	short = DefaultShort
	medium = DefaultMedium
	geocode = DefaultGeocode
}

// ConfigureFromEnv reads TIMEOUT_PING, TIMEOUT_SHORT, TIMEOUT_MEDIUM and
// TIMEOUT_GEOCODE (Go duration strings such as "5s" or "500ms"). Unset or
// invalid values are ignored. Returns how many values were applied.
func ConfigureFromEnv() int {
	mu.Lock()
	defer mu.Unlock()
	configured := 0
	for _, e := range []struct {
		name string
		dst  *time.Duration
	}{
		{"TIMEOUT_PING", &ping},
		{"TIMEOUT_SHORT", &short},
		{"TIMEOUT_MEDIUM", &medium},
		{"TIMEOUT_GEOCODE", &geocode},
	} {
		v := os.Getenv(e.name)
		if v == "" {
			continue
		}
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			*e.dst = d
			configured++
		}
	}
	return configured
}

// Current returns the current timeout configuration.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{
		Ping:    ping,
		Short:   short,
		Medium:  medium,
		Geocode: geocode,
	}
}

// WithTimeout creates a context with timeout and returns a cancel function
// that logs a warning if the deadline was hit before cancel ran.
//
//	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Geocode(), s.log, "geocode bootcamp address")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
