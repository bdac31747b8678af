// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/devcamper/internal/app/bootcamps"
	"github.com/dalemusser/devcamper/internal/app/system/events"
	"github.com/dalemusser/devcamper/internal/app/system/geocode"
	"github.com/dalemusser/devcamper/internal/app/system/ratelimit"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// GeocodeLimiter is nil when geocode_rate_limit is 0.
	GeocodeLimiter *ratelimit.Limiter
	// GeocodeCache is nil when no redis_url is configured.
	GeocodeCache *geocode.RedisCache
	// Events is events.Nop when no kafka_brokers are configured.
	Events events.Publisher

	// Bootcamps runs every bootcamp save.
	Bootcamps *bootcamps.Service
}
