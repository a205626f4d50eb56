package worker

import (
	"context"
	"drills/internal/evaluator"
	"drills/pkg/domain"
	"drills/pkg/logger"
	"drills/pkg/serrors"
	"errors"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// EvaluationWorker is a River worker that processes queued evaluations.
//
// An evaluation that no longer exists, for example because the user deleted
// it while queued, cancels the job. Any other error is returned so river
// retries the job until its attempts run out.
type EvaluationWorker struct {
	river.WorkerDefaults[evaluator.JobArgs]

	evaluator evaluator.Evaluator
}

// Work processes the evaluation referenced by the job.
func (w *EvaluationWorker) Work(ctx context.Context, job *river.Job[evaluator.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.Stringer("evaluationID", job.Args.EvaluationID))

	if err := w.evaluator.Process(ctx, domain.EvaluationID(job.Args.EvaluationID)); err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			logger.Warn(ctx, "evaluation not found, cancelling job", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in processing evaluation", zap.Error(err))

		return fmt.Errorf("could not process evaluation: %w", err)
	}

	logger.Info(ctx, "evaluation processed")

	return nil
}

// NewEvaluationWorker creates a worker backed by ev.
func NewEvaluationWorker(ev evaluator.Evaluator) *EvaluationWorker {
	return &EvaluationWorker{evaluator: ev}
}
