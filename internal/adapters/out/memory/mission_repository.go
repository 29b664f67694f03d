package memory

import (
	"context"
	"slices"

	"spacefleet/internal/core/domain/model/kernel"
	"spacefleet/internal/core/domain/model/mission"
	"spacefleet/internal/pkg/errs"
)

type missionRepository struct {
	uow *UnitOfWork
}

func (r *missionRepository) Save(_ context.Context, aggregate *mission.Mission) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	r.uow.write(func(w writer) {
		w.putMission(aggregate)
	})
	return nil
}

func (r *missionRepository) Get(_ context.Context, name kernel.Name) (*mission.Mission, error) {
	var (
		found *mission.Mission
		ok    bool
	)
	r.uow.read(func(v view) {
		found, ok = v.mission(name.String())
	})
	if !ok {
		return nil, errs.NewObjectNotFoundError("name", name.String())
	}
	return found, nil
}

func (r *missionRepository) GetAllSorted(_ context.Context) ([]*mission.Mission, error) {
	result := make([]*mission.Mission, 0)
	r.uow.read(func(v view) {
		for _, key := range v.missionKeys() {
			m, _ := v.mission(key)
			result = append(result, m)
		}
	})
	slices.SortStableFunc(result, compareMissions)
	return result, nil
}
