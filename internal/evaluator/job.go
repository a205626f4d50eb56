package evaluator

import (
	"github.com/google/uuid"
	"github.com/riverqueue/river"
)

// JobArgs are the arguments of the river job that processes a queued
// evaluation.
type JobArgs struct {
	// EvaluationID is the evaluation to process. Only one job per evaluation
	// may exist.
	EvaluationID uuid.UUID `json:"evaluationId" river:"unique"`

	maxAttempts int
}

// NewJobArgs returns job arguments for id retried at most maxAttempts times.
func NewJobArgs(id uuid.UUID, maxAttempts int) JobArgs {
	return JobArgs{EvaluationID: id, maxAttempts: maxAttempts}
}

// Kind returns the river job kind the evaluation worker is registered under.
func (args JobArgs) Kind() string { return "EvaluateJob" }

// InsertOpts returns the retry budget and uniqueness rule of the job.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
		},
	}
}
