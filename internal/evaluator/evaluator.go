package evaluator

import (
	"context"
	"drills/internal/config"
	"drills/pkg/domain"
	"drills/pkg/logger"
	"drills/pkg/metrics"
	"drills/pkg/serrors"
	"drills/pkg/storage"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	// DefaultLimit is the page size used when the caller asks for none.
	DefaultLimit uint = 20
	// MaxLimit caps the page size of UserEvaluations.
	MaxLimit uint = 100

	// UnknownOperation labels measurements of unsupported operations.
	UnknownOperation = "unknown"

	tracerName = "drills/internal/evaluator"
)

// Options configure how evaluations are computed and retried. These settings
// are typically derived from application configuration.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker
	// makes on an evaluation job.
	MaxAttempts int
	// MaxExactResultBits bounds the bit length of exact exponentiation results.
	MaxExactResultBits int
	// Recorder receives one measurement per computation. It may be nil.
	Recorder *metrics.EvaluationRecorder
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config, recorder *metrics.EvaluationRecorder) Options {
	return Options{
		MaxAttempts:        cfg.Evaluator.MaxAttempts,
		MaxExactResultBits: cfg.Evaluator.MaxExactResultBits,
		Recorder:           recorder,
	}
}

type evaluator struct {
	options Options
	storage storage.Storage
	tracer  trace.Tracer
}

// Compute runs input without touching storage.
func (e evaluator) Compute(ctx context.Context, input domain.EvaluationInput) (domain.EvaluationResult, error) {
	ctx, span := e.tracer.Start(ctx, "evaluator.Compute", trace.WithAttributes(operationAttr(input)))
	defer span.End()

	res, err := e.compute(ctx, input)
	endSpan(span, err)

	return res, err
}

func (e evaluator) compute(ctx context.Context, input domain.EvaluationInput) (domain.EvaluationResult, error) {
	start := time.Now()
	res, err := Compute(input, e.options.MaxExactResultBits)

	outcome := "ok"
	if k := serrors.KindOf(err); k != nil {
		outcome = strings.ToLower(k.Error())
	} else if err != nil {
		outcome = "error"
	}
	e.options.Recorder.Record(ctx, operationLabel(input.Operation), outcome, time.Since(start))

	return res, err
}

// Evaluate computes input and stores the completed evaluation. Inputs that
// fail to compute are not stored.
func (e evaluator) Evaluate(ctx context.Context,
	userID domain.UserID,
	input domain.EvaluationInput) (*domain.Evaluation, error) {
	ctx, span := e.tracer.Start(ctx, "evaluator.Evaluate", trace.WithAttributes(operationAttr(input)))
	defer span.End()

	res, err := e.compute(ctx, input)
	if err != nil {
		endSpan(span, err)

		return nil, err
	}

	evaluation, err := e.storage.StoreEvaluation(ctx, domain.Evaluation{
		UserID: userID,
		Input:  input,
		Status: domain.EvaluationStatusCompleted,
		Result: res,
	})
	if err != nil {
		err = fmt.Errorf("could not store evaluation: %w", err)
		endSpan(span, err)

		return nil, err
	}

	return evaluation, nil
}

// Enqueue validates input, stores it as a pending evaluation and adds a job
// for the worker in the same transaction.
func (e evaluator) Enqueue(ctx context.Context,
	userID domain.UserID,
	input domain.EvaluationInput) (*domain.Evaluation, error) {
	ctx, span := e.tracer.Start(ctx, "evaluator.Enqueue", trace.WithAttributes(operationAttr(input)))
	defer span.End()

	if err := Validate(input); err != nil {
		endSpan(span, err)

		return nil, err
	}

	var evaluation *domain.Evaluation
	if err := e.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		evaluation, err = tx.StoreEvaluation(ctx, domain.Evaluation{
			UserID: userID,
			Input:  input,
			Status: domain.EvaluationStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store evaluation: %w", err)
		}

		added, err := tx.AddJob(ctx, NewJobArgs(uuid.UUID(evaluation.ID), e.options.MaxAttempts), nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}
		// jobs are unique per evaluation, and this evaluation was just created.
		if !added {
			return serrors.With(serrors.ErrConflict, "evaluation %s is already queued", evaluation.ID)
		}

		return nil
	}); err != nil {
		err = fmt.Errorf("could not enqueue evaluation: %w", err)
		endSpan(span, err)

		return nil, err
	}

	span.SetAttributes(attribute.String("evaluation.id", evaluation.ID.String()))

	return evaluation, nil
}

// Process computes a pending evaluation while holding its row lock. An input
// that cannot be evaluated marks the evaluation failed and is not retried.
func (e evaluator) Process(ctx context.Context, ID domain.EvaluationID) error {
	ctx, span := e.tracer.Start(ctx, "evaluator.Process",
		trace.WithAttributes(attribute.String("evaluation.id", ID.String())))
	defer span.End()

	ctx = logger.WithFields(ctx, zap.Stringer("evaluationId", ID))

	err := e.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		evaluation, err := tx.LockEvaluationByID(ctx, ID)
		if err != nil {
			return fmt.Errorf("could not lock evaluation: %w", err)
		}
		if evaluation == nil {
			return serrors.With(serrors.ErrNotFound, "evaluation not found")
		}
		if evaluation.Status != domain.EvaluationStatusPending {
			logger.Debug(ctx, "evaluation is not pending anymore, skipping",
				zap.String("status", string(evaluation.Status)))

			return nil
		}

		var noError string
		updates := storage.EvaluationUpdates{
			Status:            domain.EvaluationStatusCompleted,
			LastError:         &noError,
			IncrementAttempts: true,
		}

		res, err := e.compute(ctx, evaluation.Input)
		switch {
		case err == nil:
			updates.Result = &res
		case serrors.KindOf(err) != nil:
			msg := err.Error()
			updates.Status = domain.EvaluationStatusFailed
			updates.LastError = &msg
			logger.Info(ctx, "evaluation failed", zap.Error(err))
		default:
			return fmt.Errorf("could not compute evaluation: %w", err)
		}

		if _, err := tx.UpdateEvaluationByID(ctx, ID, updates); err != nil {
			return fmt.Errorf("could not update evaluation: %w", err)
		}

		return nil
	})
	endSpan(span, err)

	return err
}

// UserEvaluations returns a page of evaluations for the given user filtered by
// status. The cursor is the opaque token returned with the previous page; the
// returned cursor is empty on the last page.
func (e evaluator) UserEvaluations(ctx context.Context,
	userID domain.UserID,
	status domain.EvaluationStatus,
	cursor string,
	limit uint) ([]domain.Evaluation, string, error) {
	if status != "" && !status.Valid() {
		return nil, "", serrors.With(serrors.ErrBadRequest, "invalid status %q", status)
	}

	var after storage.EvaluationCursor
	if cursor != "" {
		c, err := decodeCursor(cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		after = c
	}

	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	page, err := e.storage.UserEvaluations(ctx, userID, status, after, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user evaluations: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = encodeCursor(*page.NextCursor)
	}

	return page.Evaluations, next, nil
}

// Result fetches a single evaluation of the given user.
func (e evaluator) Result(ctx context.Context,
	userID domain.UserID,
	ID domain.EvaluationID) (*domain.Evaluation, error) {
	res, err := e.storage.EvaluationByID(ctx, userID, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get evaluation: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "evaluation not found")
	}

	return res, nil
}

// Delete soft-deletes an evaluation of the given user. A queued job for it
// becomes a no-op because the worker cannot find the row anymore.
func (e evaluator) Delete(ctx context.Context, userID domain.UserID, ID domain.EvaluationID) error {
	res, err := e.storage.DeleteEvaluation(ctx, userID, ID)
	if err != nil {
		return fmt.Errorf("could not delete evaluation: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "evaluation not found")
	}

	return nil
}

// operationLabel keeps caller supplied operation names out of metric and span
// attributes so they cannot grow the number of series.
func operationLabel(op domain.Operation) string {
	if !op.Valid() {
		return UnknownOperation
	}

	return string(op)
}

func operationAttr(input domain.EvaluationInput) attribute.KeyValue {
	return attribute.String("evaluation.operation", operationLabel(input.Operation))
}

func endSpan(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// New creates an Evaluator backed by the provided storage.
func New(storage storage.Storage, options Options) Evaluator {
	return &evaluator{
		options: options,
		storage: storage,
		tracer:  otel.Tracer(tracerName),
	}
}
