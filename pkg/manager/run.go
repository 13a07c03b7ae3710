package manager

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wversluys/fetcharr/pkg/catalog"
	"github.com/wversluys/fetcharr/pkg/logger"
)

// RunSummary aggregates what a full pass over the catalog did.
type RunSummary struct {
	RunID    string
	Started  time.Time
	Entries  []EntryResult
	Grabbed  int
	NotFound int
	Failed   int
	// EntryFailures counts entries that could not be processed at all.
	EntryFailures int
}

// Run walks the catalog once. A failing entry is logged and skipped; the
// run itself always finishes.
func (m MediaManager) Run(ctx context.Context, cat catalog.Catalog) RunSummary {
	runID := uuid.New().String()
	log := logger.FromCtx(ctx, "run", runID)
	ctx = logger.WithCtx(ctx, log)

	summary := RunSummary{
		RunID:   runID,
		Started: m.now(),
	}

	for _, item := range cat.Items() {
		var result EntryResult
		switch item.Kind {
		case catalog.KindFilm:
			result = m.acquireFilm(ctx, item)
		default:
			result = m.acquireSeries(ctx, item)
		}

		if result.Err != nil {
			summary.EntryFailures++
			log.Errorw("entry failed", "title", item.Title, "error", result.Err)
		}

		for _, unit := range result.Units {
			switch unit.Outcome {
			case OutcomeGrabbed:
				summary.Grabbed++
			case OutcomeNotFound:
				summary.NotFound++
			case OutcomeFailed:
				summary.Failed++
				log.Warnw("unit failed", "title", item.Title, "error", unit.Err)
			}
		}

		summary.Entries = append(summary.Entries, result)
	}

	log.Infow("run finished",
		"entries", len(summary.Entries),
		"grabbed", summary.Grabbed,
		"not_found", summary.NotFound,
		"failed", summary.Failed,
		"entry_failures", summary.EntryFailures,
	)

	return summary
}
