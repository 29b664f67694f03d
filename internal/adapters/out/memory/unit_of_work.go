package memory

import (
	"context"
	"errors"

	"spacefleet/internal/core/ports"
)

// ErrNoTransaction is returned by Commit and Rollback outside of a transaction.
var ErrNoTransaction = errors.New("memory: no active transaction")

// UnitOfWorkFactory creates units of work over one shared Store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory for units of work on store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a fresh unit of work with no active transaction.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork buffers writes until Commit. While a transaction is active it
// holds the store's write lock, so it must be used by one goroutine and always
// be finished with Commit or Rollback.
type UnitOfWork struct {
	store   *Store
	pending *changeSet
}

// Begin takes the store lock and starts buffering writes. Calling Begin on an
// active transaction is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.pending != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	uow.store.mu.Lock()
	uow.pending = newChangeSet()
	return nil
}

// Commit publishes the buffered writes and releases the store lock.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.pending == nil {
		return ErrNoTransaction
	}
	uow.pending.applyTo(uow.store)
	uow.pending = nil
	uow.store.mu.Unlock()
	return nil
}

// Rollback drops the buffered writes and releases the store lock.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.pending == nil {
		return ErrNoTransaction
	}
	uow.pending = nil
	uow.store.mu.Unlock()
	return nil
}

// RocketRepository returns a repository bound to this unit of work.
func (uow *UnitOfWork) RocketRepository() ports.RocketRepository {
	return &rocketRepository{uow: uow}
}

// MissionRepository returns a repository bound to this unit of work.
func (uow *UnitOfWork) MissionRepository() ports.MissionRepository {
	return &missionRepository{uow: uow}
}

func (uow *UnitOfWork) read(fn func(v view)) {
	if uow.pending != nil {
		fn(view{store: uow.store, pending: uow.pending})
		return
	}
	uow.store.mu.RLock()
	defer uow.store.mu.RUnlock()
	fn(view{store: uow.store})
}

func (uow *UnitOfWork) write(fn func(w writer)) {
	if uow.pending != nil {
		fn(uow.pending)
		return
	}
	uow.store.mu.Lock()
	defer uow.store.mu.Unlock()
	fn(uow.store)
}
