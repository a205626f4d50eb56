package storage

import "errors"

var (
	// ErrAlreadyInTx is returned by Begin on a handle that is already transactional.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit, Rollback and row-locking reads on a
	// non-transactional handle.
	ErrNotInTx = errors.New("not in tx")
)
