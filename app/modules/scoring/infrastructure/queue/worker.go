package scoringqueue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/riverqueue/river"

	scoringservice "github.com/sandlot-league/scorebook/app/modules/scoring/application"
	"github.com/sandlot-league/scorebook/app/shared/attr"
)

// InningRecomputeWorker runs queued recompute jobs against the scoring
// service. The operation is idempotent, so River's at-least-once delivery
// needs no extra guarding.
type InningRecomputeWorker struct {
	river.WorkerDefaults[InningRecomputeJob]
	service scoringservice.Service
	logger  *slog.Logger
}

// NewInningRecomputeWorker creates a new InningRecomputeWorker.
func NewInningRecomputeWorker(service scoringservice.Service, logger *slog.Logger) *InningRecomputeWorker {
	return &InningRecomputeWorker{
		service: service,
		logger:  logger,
	}
}

func (w *InningRecomputeWorker) Work(ctx context.Context, job *river.Job[InningRecomputeJob]) error {
	w.logger.InfoContext(ctx, "Running inning recompute job",
		attr.GameID("game_id", job.Args.GameID),
		attr.Inning(job.Args.Inning),
		attr.Int64("job_id", job.ID),
	)

	result, err := w.service.RecomputeInning(ctx, job.Args.GameID, job.Args.Inning, job.Args.BattingFirst)
	if err != nil {
		return fmt.Errorf("inning recompute job: %w", err)
	}
	if result.IsFailure() {
		// A handled failure will not improve on retry; drop the job.
		w.logger.WarnContext(ctx, "Inning recompute rejected",
			attr.GameID("game_id", job.Args.GameID),
			attr.Inning(job.Args.Inning),
			attr.String("reason", result.Failure.Reason),
		)
		return river.JobCancel(fmt.Errorf("recompute rejected: %s", result.Failure.Reason))
	}

	return nil
}
