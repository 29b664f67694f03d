package cmd

import (
	"context"
	"fmt"

	"spacefleet/internal/adapters/out/memory"
	"spacefleet/internal/adapters/out/postgres"
	"spacefleet/internal/adapters/out/sqlite"
	"spacefleet/internal/core/ports"
)

// Store is an opened storage backend.
type Store struct {
	Factory ports.UnitOfWorkFactory
	Close   func() error
}

// OpenStore opens the backend selected by config.StoreDriver. PostgreSQL
// tables are migrated on open; SQLite creates its schema itself.
func OpenStore(ctx context.Context, config Config) (Store, error) {
	switch config.StoreDriver {
	case StoreMemory:
		return Store{
			Factory: memory.NewUnitOfWorkFactory(memory.NewStore()),
			Close:   func() error { return nil },
		}, nil

	case StorePostgres:
		dsn := postgres.MakeDSN(config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)
		driverName := ""
		if config.DBDriver == postgres.DriverLibPQ {
			driverName = postgres.DriverLibPQ
		}
		gormDB, err := postgres.OpenGormDB(dsn, driverName)
		if err != nil {
			return Store{}, err
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return Store{}, fmt.Errorf("postgres pool: %w", err)
		}
		if err = postgres.Migrate(gormDB.WithContext(ctx)); err != nil {
			_ = sqlDB.Close()
			return Store{}, fmt.Errorf("migrate postgres: %w", err)
		}
		return Store{
			Factory: postgres.NewGormUnitOfWorkFactory(gormDB),
			Close:   sqlDB.Close,
		}, nil

	case StoreSQLite:
		db, err := sqlite.Open(ctx, config.SQLitePath)
		if err != nil {
			return Store{}, err
		}
		return Store{
			Factory: sqlite.NewUnitOfWorkFactory(db),
			Close:   db.Close,
		}, nil

	default:
		return Store{}, fmt.Errorf("unknown store driver %q", config.StoreDriver)
	}
}
