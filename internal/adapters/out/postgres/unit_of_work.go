// Package postgres persists rockets and missions in PostgreSQL through GORM.
//
// A GormUnitOfWork wraps one database transaction. Repositories taken from it
// after Begin share that transaction and lock every row they read with
// SELECT ... FOR UPDATE, so two units of work touching the same rocket or
// mission are serialized by the database. Repositories taken before Begin
// read the plain connection without locks, which is what the queries use.
//
//	uow := NewGormUnitOfWorkFactory(db).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	m, err := uow.MissionRepository().Get(ctx, name)
//	// ... change m and save it
//	return uow.Commit(ctx)
//
// A unit of work belongs to one goroutine; concurrent callers each create
// their own.
package postgres

import (
	"context"

	"spacefleet/internal/adapters/out/postgres/missionrepo"
	"spacefleet/internal/adapters/out/postgres/rocketrepo"
	"spacefleet/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory hands out units of work over one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory on db, usually the result of
// OpenGormDB.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a unit of work with no open transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates database transactions for business operations.
// Repositories obtained before Begin run on the plain connection; repositories
// obtained after Begin run inside the transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin opens the transaction. A second Begin reuses the open one.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit commits and forgets the transaction. Without one it returns
// gorm.ErrInvalidTransaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback aborts and forgets the transaction. Without one it returns
// gorm.ErrInvalidTransaction, so a deferred Rollback after Commit does nothing.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// RocketRepository returns a locking repository inside a transaction and a plain one outside.
func (uow *GormUnitOfWork) RocketRepository() ports.RocketRepository {
	if uow.tx != nil {
		return rocketrepo.NewGormRocketRepository(uow.tx, true)
	}
	return rocketrepo.NewGormRocketRepository(uow.db, false)
}

// MissionRepository returns a locking repository inside a transaction and a plain one outside.
func (uow *GormUnitOfWork) MissionRepository() ports.MissionRepository {
	if uow.tx != nil {
		return missionrepo.NewGormMissionRepository(uow.tx, true)
	}
	return missionrepo.NewGormMissionRepository(uow.db, false)
}
