// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers the
// framework-level settings (ports, TLS, logging level, CORS); everything
// specific to the bootcamp directory lives here.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Geocoding provider (MapQuest-compatible)
	GeocoderBaseURL  string        // e.g., https://www.mapquestapi.com
	GeocoderAPIKey   string        // provider key; required outside dev
	GeocodeTimeout   time.Duration // upper bound for one provider call
	GeocodeRateLimit int           // provider calls per minute; 0 disables the limit

	// Optional geocode result cache
	RedisURL        string        // redis://host:6379/0; blank disables the cache
	GeocodeCacheTTL time.Duration // how long a resolved address is reused

	// Optional change events
	KafkaBrokers string // comma-separated host:port list; blank disables publishing
	KafkaTopic   string

	// Audit logging ("all", "db", "log", "off")
	AuditLogAdmin   string
	AuditLogGeocode string

	// SeedFile is a JSON array of bootcamps imported at startup (blank skips).
	SeedFile string
}
