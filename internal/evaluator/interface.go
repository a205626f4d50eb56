package evaluator

import (
	"context"
	"drills/pkg/domain"
)

// Evaluator runs the arithmetic drills and manages the evaluations users
// request.
//
//go:generate mockgen -package mockevaluator -source=interface.go -destination=mock/mockevaluator.go *
type Evaluator interface {
	// Compute evaluates input without persisting anything.
	Compute(ctx context.Context, input domain.EvaluationInput) (domain.EvaluationResult, error)
	// Evaluate computes input synchronously and stores the completed evaluation.
	Evaluate(ctx context.Context, userID domain.UserID, input domain.EvaluationInput) (*domain.Evaluation, error)
	// Enqueue stores a pending evaluation and schedules it for the worker.
	Enqueue(ctx context.Context, userID domain.UserID, input domain.EvaluationInput) (*domain.Evaluation, error)
	// Process evaluates a pending evaluation; it is called by the worker.
	Process(ctx context.Context, ID domain.EvaluationID) error
	// UserEvaluations returns a page of the user's evaluations and the cursor of the next page.
	UserEvaluations(ctx context.Context,
		userID domain.UserID,
		status domain.EvaluationStatus,
		cursor string,
		limit uint) ([]domain.Evaluation, string, error)
	// Result returns a single evaluation of the user.
	Result(ctx context.Context, userID domain.UserID, ID domain.EvaluationID) (*domain.Evaluation, error)
	// Delete soft-deletes an evaluation of the user.
	Delete(ctx context.Context, userID domain.UserID, ID domain.EvaluationID) error
}
