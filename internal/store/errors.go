package store

import "errors"

// Sentinel errors returned by store implementations. Callers match them with
// [errors.Is].
var (
	// ErrEntryNotFound is returned by QueueStore.Get when no entry exists for
	// the requested (kind, aggregate id) key.
	ErrEntryNotFound = errors.New("queue entry not found")

	// ErrAggregateNotFound is returned by AggregateRepository getters when no
	// document exists for the requested id.
	ErrAggregateNotFound = errors.New("aggregate not found")
)

// Low-level database operation errors, wrapped around driver errors so the
// failing stage stays visible in logs.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to execute statement")
	ErrScanningRow        = errors.New("failed to scan row")
	ErrScanningRows       = errors.New("failed to scan rows")
)
