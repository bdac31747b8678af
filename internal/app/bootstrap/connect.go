// internal/app/bootstrap/connect.go
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dalemusser/devcamper/internal/app/bootcamps"
	"github.com/dalemusser/devcamper/internal/app/store/audit"
	bootcampstore "github.com/dalemusser/devcamper/internal/app/store/bootcamps"
	"github.com/dalemusser/devcamper/internal/app/system/auditlog"
	"github.com/dalemusser/devcamper/internal/app/system/events"
	"github.com/dalemusser/devcamper/internal/app/system/geocode"
	"github.com/dalemusser/devcamper/internal/app/system/ratelimit"
	"github.com/dalemusser/devcamper/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB connects MongoDB and the optional Redis cache and Kafka writer,
// then assembles the bootcamp lifecycle service on top of them.
// MongoDB is required; a Redis cache that cannot be reached is logged and
// skipped so saves fall through to the provider.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Medium())
	defer cancel()

	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)
	client, err := mongo.Connect(pingCtx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return DBDeps{}, fmt.Errorf("ping mongo: %w", err)
	}
	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))

	deps := DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
		Events:        events.Nop{},
	}

	if appCfg.RedisURL != "" {
		rc, err := geocode.NewRedisCache(pingCtx, appCfg.RedisURL)
		if err != nil {
			logger.Warn("geocode cache unavailable, continuing without it", zap.Error(err))
		} else {
			deps.GeocodeCache = rc
			logger.Info("geocode cache enabled", zap.Duration("ttl", appCfg.GeocodeCacheTTL))
		}
	}

	if appCfg.KafkaBrokers != "" {
		deps.Events = events.NewKafkaPublisher(appCfg.KafkaBrokers, appCfg.KafkaTopic, logger)
		logger.Info("bootcamp change events enabled",
			zap.String("brokers", appCfg.KafkaBrokers),
			zap.String("topic", appCfg.KafkaTopic))
	}

	if appCfg.GeocodeRateLimit > 0 {
		deps.GeocodeLimiter = ratelimit.New(appCfg.GeocodeRateLimit, time.Minute)
	}

	deps.Bootcamps = newBootcampService(appCfg, deps, logger)
	return deps, nil
}

func newBootcampService(appCfg AppConfig, deps DBDeps, logger *zap.Logger) *bootcamps.Service {
	var geo geocode.Geocoder = geocode.NewMapQuest(appCfg.GeocoderBaseURL, appCfg.GeocoderAPIKey, http.DefaultClient)
	if deps.GeocodeLimiter != nil {
		geo = geocode.NewLimited(geo, deps.GeocodeLimiter, "mapquest")
	}
	if deps.GeocodeCache != nil {
		geo = geocode.NewCached(geo, deps.GeocodeCache, appCfg.GeocodeCacheTTL, logger)
	}

	auditLog := auditlog.New(audit.New(deps.MongoDatabase), logger, auditlog.Config{
		Admin:   appCfg.AuditLogAdmin,
		Geocode: appCfg.AuditLogGeocode,
	})

	return bootcamps.New(bootcampstore.New(deps.MongoDatabase), geo, auditLog, deps.Events, logger)
}
