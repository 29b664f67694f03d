package ports

import (
	"context"

	"spacefleet/internal/core/domain/model/kernel"
	"spacefleet/internal/core/domain/model/mission"
)

// MissionRepository stores missions keyed by name.
type MissionRepository interface {
	// Save inserts the mission or fully overwrites the stored record with the same name.
	Save(ctx context.Context, aggregate *mission.Mission) error

	// Get returns the mission with the given name.
	// A missing mission is reported as errs.ObjectNotFoundError.
	Get(ctx context.Context, name kernel.Name) (*mission.Mission, error)

	// GetAllSorted returns every mission ordered by rocket count descending,
	// ties broken by name descending.
	GetAllSorted(ctx context.Context) ([]*mission.Mission, error)
}
