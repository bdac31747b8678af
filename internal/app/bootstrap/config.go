// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for DevCamper.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, geocoder_api_key, etc.
//   - Environment variables: DEVCAMPER_MONGO_URI, DEVCAMPER_GEOCODER_API_KEY, etc.
//   - Command-line flags: --mongo_uri, --geocoder_api_key, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "devcamper", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Geocoding
	{Name: "geocoder_base_url", Default: "https://www.mapquestapi.com", Desc: "Geocoding provider base URL (MapQuest-compatible)"},
	{Name: "geocoder_api_key", Default: "", Desc: "Geocoding provider API key"},
	{Name: "geocode_timeout", Default: "10s", Desc: "Upper bound for one geocoding call (e.g., 10s, 500ms)"},
	{Name: "geocode_rate_limit", Default: 60, Desc: "Geocoding provider calls allowed per minute (0 disables the limit)"},

	// Geocode cache
	{Name: "redis_url", Default: "", Desc: "Redis URL for the geocode cache (blank disables caching)"},
	{Name: "geocode_cache_ttl", Default: "720h", Desc: "How long a geocoded address is cached"},

	// Change events
	{Name: "kafka_brokers", Default: "", Desc: "Comma-separated Kafka brokers for change events (blank disables publishing)"},
	{Name: "kafka_topic", Default: "devcamper.bootcamps", Desc: "Kafka topic for bootcamp change events"},

	// Audit logging settings
	{Name: "audit_log_admin", Default: "all", Desc: "Bootcamp change logging: 'all' (db+log), 'db', 'log', or 'off'"},
	{Name: "audit_log_geocode", Default: "all", Desc: "Geocoding outcome logging: 'all' (db+log), 'db', 'log', or 'off'"},

	// Seeding
	{Name: "seed_file", Default: "", Desc: "JSON file of bootcamps to import at startup (blank skips)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, DEVCAMPER_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "DEVCAMPER", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		// Geocoding
		GeocoderBaseURL:  appValues.String("geocoder_base_url"),
		GeocoderAPIKey:   appValues.String("geocoder_api_key"),
		GeocodeTimeout:   appValues.Duration("geocode_timeout", 10*time.Second),
		GeocodeRateLimit: appValues.Int("geocode_rate_limit"),

		// Cache
		RedisURL:        appValues.String("redis_url"),
		GeocodeCacheTTL: appValues.Duration("geocode_cache_ttl", 30*24*time.Hour),

		// Events
		KafkaBrokers: appValues.String("kafka_brokers"),
		KafkaTopic:   appValues.String("kafka_topic"),

		// Audit logging
		AuditLogAdmin:   appValues.String("audit_log_admin"),
		AuditLogGeocode: appValues.String("audit_log_geocode"),

		SeedFile: appValues.String("seed_file"),
	}

	return coreCfg, appCfg, nil
}

var validAuditSettings = map[string]bool{"": true, "all": true, "db": true, "log": true, "off": true}

// ValidateConfig performs app-specific config validation.
//
// DevCamper validates the MongoDB URI format to catch configuration errors
// early, before attempting to connect, and requires a geocoder key outside
// dev since every create depends on the provider.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	return validateAppConfig(coreCfg.Env, appCfg)
}

func validateAppConfig(env string, appCfg AppConfig) error {
	var errs []error
	if appCfg.GeocoderAPIKey == "" && env != "dev" {
		errs = append(errs, errors.New("geocoder_api_key is required outside dev"))
	}
	if appCfg.GeocodeTimeout <= 0 {
		errs = append(errs, fmt.Errorf("geocode_timeout must be positive, got %s", appCfg.GeocodeTimeout))
	}
	if appCfg.GeocodeRateLimit < 0 {
		errs = append(errs, fmt.Errorf("geocode_rate_limit must not be negative, got %d", appCfg.GeocodeRateLimit))
	}
	if appCfg.KafkaBrokers != "" && appCfg.KafkaTopic == "" {
		errs = append(errs, errors.New("kafka_topic is required when kafka_brokers is set"))
	}
	for name, v := range map[string]string{
		"audit_log_admin":   appCfg.AuditLogAdmin,
		"audit_log_geocode": appCfg.AuditLogGeocode,
	} {
		if !validAuditSettings[v] {
			errs = append(errs, fmt.Errorf("%s must be one of all, db, log, off; got %q", name, v))
		}
	}
	return errors.Join(errs...)
}
