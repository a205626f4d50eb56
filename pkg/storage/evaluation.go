package storage

import (
	"context"
	"drills/pkg/domain"
	"time"
)

// EvaluationUpdates describes the fields to change on an evaluation. Nil
// pointers leave the column untouched.
type EvaluationUpdates struct {
	// Status is always written.
	Status domain.EvaluationStatus
	// Result replaces the stored result.
	Result *domain.EvaluationResult
	// LastError sets the last error text; an empty string clears it.
	LastError *string
	// IncrementAttempts bumps the attempts counter by one.
	IncrementAttempts bool
}

// EvaluationCursor points at the last evaluation of a page. Pages are ordered
// by (CreatedAt, ID) descending, so both are needed to resume after rows that
// share a timestamp.
type EvaluationCursor struct {
	CreatedAt time.Time
	ID        domain.EvaluationID
}

// IsZero reports whether the cursor points at the first page.
func (c EvaluationCursor) IsZero() bool { return c.CreatedAt.IsZero() }

// UserEvaluations is a page of evaluations plus the cursor of the next page.
type UserEvaluations struct {
	Evaluations []domain.Evaluation
	// NextCursor is nil when there is no next page.
	NextCursor *EvaluationCursor
}

// EvaluationStorage defines the persistence operations on evaluations.
// Soft-deleted rows are invisible to every method.
type EvaluationStorage interface {
	// StoreEvaluation inserts an evaluation and returns the stored row,
	// including generated ID and timestamps.
	StoreEvaluation(ctx context.Context, evaluation domain.Evaluation) (*domain.Evaluation, error)
	// UpdateEvaluationByID applies updates and returns the updated row, or nil
	// when no such evaluation exists.
	UpdateEvaluationByID(ctx context.Context,
		ID domain.EvaluationID,
		updates EvaluationUpdates) (*domain.Evaluation, error)
	// EvaluationByID fetches an evaluation owned by userID, or nil.
	EvaluationByID(ctx context.Context, userID domain.UserID, ID domain.EvaluationID) (*domain.Evaluation, error)
	// LockEvaluationByID fetches an evaluation regardless of owner and locks the
	// row until the surrounding transaction ends. Returns nil when not found.
	LockEvaluationByID(ctx context.Context, ID domain.EvaluationID) (*domain.Evaluation, error)
	// DeleteEvaluation soft-deletes an evaluation owned by userID and returns
	// it, or nil when not found.
	DeleteEvaluation(ctx context.Context, userID domain.UserID, ID domain.EvaluationID) (*domain.Evaluation, error)
	// UserEvaluations returns up to limit evaluations of userID created before
	// cursor (when non-zero) in (created_at, id) order, newest first. A non-empty status filters results.
	UserEvaluations(ctx context.Context,
		userID domain.UserID,
		status domain.EvaluationStatus,
		cursor EvaluationCursor,
		limit uint) (UserEvaluations, error)
}
