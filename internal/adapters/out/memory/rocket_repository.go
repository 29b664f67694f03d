package memory

import (
	"context"

	"spacefleet/internal/core/domain/model/kernel"
	"spacefleet/internal/core/domain/model/rocket"
	"spacefleet/internal/pkg/errs"
)

type rocketRepository struct {
	uow *UnitOfWork
}

func (r *rocketRepository) Save(_ context.Context, aggregate *rocket.Rocket) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	r.uow.write(func(w writer) {
		w.putRocket(aggregate)
	})
	return nil
}

func (r *rocketRepository) Get(_ context.Context, name kernel.Name) (*rocket.Rocket, error) {
	var (
		found *rocket.Rocket
		ok    bool
	)
	r.uow.read(func(v view) {
		found, ok = v.rocket(name.String())
	})
	if !ok {
		return nil, errs.NewObjectNotFoundError("name", name.String())
	}
	return found, nil
}

func (r *rocketRepository) FindByMission(_ context.Context, missionName kernel.Name) ([]*rocket.Rocket, error) {
	result := make([]*rocket.Rocket, 0)
	r.uow.read(func(v view) {
		for _, key := range v.rocketKeys() {
			if candidate, _ := v.rocket(key); candidate.BelongsTo(missionName) {
				result = append(result, candidate)
			}
		}
	})
	return result, nil
}
