package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. When the handle is transactional the
// job only becomes visible once the transaction commits.
type JobStorage interface {
	// AddJob inserts a job and reports whether it was actually added; false
	// means a unique job with the same arguments already exists.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
