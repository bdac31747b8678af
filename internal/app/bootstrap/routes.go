// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	healthfeature "github.com/dalemusser/devcamper/internal/app/features/health"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. Bootcamp records are managed through
// bootcamps.Service; the only route served here is the health check for
// load balancers and orchestrators.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	var cache healthfeature.Pinger
	if deps.GeocodeCache != nil {
		cache = deps.GeocodeCache
	}
	healthHandler := healthfeature.NewHandler(healthfeature.MongoPinger(deps.MongoClient), cache, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	return r, nil
}
