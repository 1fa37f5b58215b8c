package port

import (
	"context"

	"training-courses/internal/core/domain"
)

// RunJournal persists generation runs for operators. Implementations must be
// safe for concurrent use.
type RunJournal interface {
	// Record stores a run and its per-campaign outcome.
	Record(ctx context.Context, run domain.TrainingRun) error
	// ListRuns returns the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]domain.TrainingRun, error)
}
