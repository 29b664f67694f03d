// Package ports defines the storage contracts of the fleet domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// so the transition rules run unchanged against in-memory, SQLite or PostgreSQL storage.
package ports

import (
	"context"

	"spacefleet/internal/core/domain/model/kernel"
	"spacefleet/internal/core/domain/model/rocket"
)

// RocketRepository stores rockets keyed by name.
type RocketRepository interface {
	// Save inserts the rocket or fully overwrites the stored record with the same name.
	Save(ctx context.Context, aggregate *rocket.Rocket) error

	// Get returns the rocket with the given name.
	// A missing rocket is reported as errs.ObjectNotFoundError.
	Get(ctx context.Context, name kernel.Name) (*rocket.Rocket, error)

	// FindByMission returns the rockets attached to the mission in insertion
	// order. It returns an empty slice when none match.
	FindByMission(ctx context.Context, mission kernel.Name) ([]*rocket.Rocket, error)
}
