package ports

import (
	"context"
)

// UnitOfWorkFactory creates one UnitOfWork per operation.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Writes made through its repositories become visible to other units of work
// only after Commit; Rollback discards them.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit publishes the writes. It fails without an active transaction.
	Commit(ctx context.Context) error

	// Rollback discards the writes. It fails without an active transaction.
	Rollback(ctx context.Context) error

	// RocketRepository returns a RocketRepository bound to the current transaction.
	RocketRepository() RocketRepository

	// MissionRepository returns a MissionRepository bound to the current transaction.
	MissionRepository() MissionRepository
}
