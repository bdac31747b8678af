// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/devcamper/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. It applies
// the configured timeouts and, when seed_file is set, imports bootcamps.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{Geocode: appCfg.GeocodeTimeout})
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeouts overridden from environment", zap.Int("count", n))
	}
	logger.Info("bootcamp service ready",
		zap.Duration("geocode_timeout", timeouts.Geocode()),
		zap.Bool("geocode_cache", deps.GeocodeCache != nil))

	if appCfg.SeedFile != "" {
		if _, err := seedBootcamps(ctx, deps.Bootcamps, appCfg.SeedFile, logger); err != nil {
			logger.Error("bootcamp seed failed", zap.String("file", appCfg.SeedFile), zap.Error(err))
			return err
		}
	}
	return nil
}
