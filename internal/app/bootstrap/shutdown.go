// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"
	"errors"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown cleanly tears down DB connections and other resources.
// Every backend is closed even if an earlier one fails.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	var errs []error

	if deps.Events != nil {
		if err := deps.Events.Close(); err != nil {
			logger.Error("event publisher close failed", zap.Error(err))
			errs = append(errs, err)
		}
	}
	if deps.GeocodeLimiter != nil {
		deps.GeocodeLimiter.Stop()
	}
	if deps.GeocodeCache != nil {
		if err := deps.GeocodeCache.Close(); err != nil {
			logger.Error("geocode cache close failed", zap.Error(err))
			errs = append(errs, err)
		}
	}
	if deps.MongoClient != nil {
		logger.Info("disconnecting MongoDB client")
		if err := deps.MongoClient.Disconnect(ctx); err != nil {
			logger.Error("MongoDB disconnect failed", zap.Error(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
