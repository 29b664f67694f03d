package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"spacefleet/internal/core/ports"
)

// ErrNoTransaction is returned by Commit and Rollback outside of a transaction.
var ErrNoTransaction = errors.New("sqlite: no active transaction")

// UnitOfWorkFactory creates units of work on one database handle.
type UnitOfWorkFactory struct {
	db *sql.DB
}

// NewUnitOfWorkFactory creates a factory for units of work on db.
func NewUnitOfWorkFactory(db *sql.DB) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work with no active transaction.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{db: f.db}
}

// UnitOfWork wraps one database transaction.
type UnitOfWork struct {
	db *sql.DB
	tx *sql.Tx
}

// Begin starts a transaction. Calling Begin on an active transaction is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}
	tx, err := uow.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	uow.tx = tx
	return nil
}

// Commit makes the transaction's writes durable.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoTransaction
	}
	err := uow.tx.Commit()
	uow.tx = nil
	return err
}

// Rollback discards the transaction's writes.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoTransaction
	}
	err := uow.tx.Rollback()
	uow.tx = nil
	return err
}

// RocketRepository returns a repository bound to the current transaction, or
// to the database when none is active.
func (uow *UnitOfWork) RocketRepository() ports.RocketRepository {
	return &RocketRepository{q: uow.querier()}
}

// MissionRepository returns a repository bound to the current transaction, or
// to the database when none is active.
func (uow *UnitOfWork) MissionRepository() ports.MissionRepository {
	return &MissionRepository{q: uow.querier()}
}

func (uow *UnitOfWork) querier() querier {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
