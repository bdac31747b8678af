// internal/app/bootstrap/seed.go
package bootstrap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dalemusser/devcamper/internal/app/bootcamps"
	"github.com/dalemusser/devcamper/internal/domain/models"
	"go.uber.org/zap"
)

// seedResult counts the outcome of one import.
type seedResult struct {
	Created int
	Skipped int // name already taken
	Failed  int
}

// bootcampCreator is the part of *bootcamps.Service the seeder needs.
type bootcampCreator interface {
	Create(ctx context.Context, b models.Bootcamp) (models.Bootcamp, error)
}

// seedBootcamps imports a JSON array of bootcamps through the full save
// pipeline. Bootcamps whose name already exists are skipped, so running the
// import twice is harmless. Individual failures are logged and counted;
// only an unreadable file is an error.
func seedBootcamps(ctx context.Context, svc bootcampCreator, path string, logger *zap.Logger) (seedResult, error) {
	var res seedResult

	data, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("read seed file: %w", err)
	}
	var items []models.Bootcamp
	if err := json.Unmarshal(data, &items); err != nil {
		return res, fmt.Errorf("parse seed file: %w", err)
	}

	for _, in := range items {
		_, err := svc.Create(ctx, in)
		var ue *bootcamps.UniquenessError
		switch {
		case err == nil:
			res.Created++
		case errors.As(err, &ue):
			res.Skipped++
		default:
			res.Failed++
			logger.Warn("seed bootcamp failed", zap.String("name", in.Name), zap.Error(err))
		}
	}

	logger.Info("bootcamp seed complete",
		zap.String("file", path),
		zap.Int("created", res.Created),
		zap.Int("skipped", res.Skipped),
		zap.Int("failed", res.Failed))
	return res, nil
}
