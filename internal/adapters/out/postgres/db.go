package postgres

import (
	"fmt"

	"spacefleet/internal/adapters/out/postgres/missionrepo"
	"spacefleet/internal/adapters/out/postgres/rocketrepo"

	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DriverLibPQ selects github.com/lib/pq instead of the default pgx driver.
const DriverLibPQ = "postgres"

// MakeDSN builds a key/value connection string.
func MakeDSN(host, port, user, password, dbName, sslMode string) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode,
	)
}

// OpenGormDB connects to PostgreSQL. An empty driverName uses pgx; DriverLibPQ
// uses lib/pq.
func OpenGormDB(dsn, driverName string) (*gorm.DB, error) {
	dialector := gormpostgres.New(gormpostgres.Config{
		DriverName: driverName,
		DSN:        dsn,
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the rockets and missions tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&rocketrepo.RocketDTO{}, &missionrepo.MissionDTO{})
}
