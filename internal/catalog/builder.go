package catalog

import (
	"context"

	"github.com/quocvuong92/archie/internal/logging"
)

// Build gathers lines from every source and returns them as a Catalog.
// Source failures are logged and contribute nothing; Build always succeeds.
func Build(ctx context.Context, logger *logging.FieldLogger, sources ...Source) *Catalog {
	if logger == nil {
		logger = logging.Nop()
	}

	var names []string
	for _, src := range sources {
		lines, err := src.Lines(ctx)
		if err != nil {
			logger.Debug("Catalog source unavailable", logging.Fields{
				"source": src.Name(),
				"error":  err.Error(),
			})
			continue
		}
		logger.Debug("Catalog source read", logging.Fields{
			"source": src.Name(),
			"lines":  len(lines),
		})
		names = append(names, lines...)
	}

	c := New(names)
	logger.Info("Catalog built", logging.Fields{"entries": c.Len()})
	return c
}
