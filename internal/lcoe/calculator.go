package lcoe

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/michael-k-goff/lcoe-graphic/internal/dataset"
)

// Calculator orchestrates the LCOE comparison pipeline
type Calculator struct {
	excluded  map[string]bool
	overrides map[string]string
	logger    *slog.Logger
}

// Result holds the outcome of one pipeline run
type Result struct {
	// Rows is the filtered, recategorized and imputed dataset.
	Rows []dataset.Observation
	// Series is the per-category pooled sample, ranked by descending mean.
	Series []CategorySeries
}

// NewCalculator creates a calculator with the standard exclusion set and
// category overrides
func NewCalculator(logger *slog.Logger) *Calculator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Calculator{
		excluded:  ExcludedTypes,
		overrides: CategoryOverrides,
		logger:    logger,
	}
}

// Run executes the pipeline over the loaded dataset
func (c *Calculator) Run(ctx context.Context, rows []dataset.Observation) (*Result, error) {
	start := time.Now()

	c.logger.InfoContext(ctx, "starting LCOE pipeline", "rows", len(rows))

	if len(rows) == 0 {
		return nil, fmt.Errorf("no observations to process")
	}

	kept := Filter(rows, c.excluded)
	c.logger.DebugContext(ctx, "filtered excluded types",
		"kept", len(kept),
		"dropped", len(rows)-len(kept),
	)
	if len(kept) == 0 {
		return nil, fmt.Errorf("all %d observations were filtered out", len(rows))
	}

	kept = Recategorize(kept, c.overrides)
	kept = ImputeAll(kept)

	series := Aggregate(kept)
	Rank(series)

	c.logger.InfoContext(ctx, "LCOE pipeline completed",
		"duration", time.Since(start),
		"observations", len(kept),
		"categories", len(series),
	)

	return &Result{Rows: kept, Series: series}, nil
}
