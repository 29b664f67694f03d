package queries

import (
	"errors"

	"spacefleet/internal/core/domain/model/kernel"
	"spacefleet/internal/core/domain/model/mission"
	"spacefleet/internal/core/domain/model/rocket"
	"spacefleet/internal/pkg/guard"
)

var ErrGetMissionQueryIsNotConstructed = errors.New(
	"GetMissionQuery must be created via NewGetMissionQuery constructor",
)

// GetMissionQuery looks up one mission together with its rockets.
type GetMissionQuery struct {
	name kernel.Name

	guard guard.ConstructorGuard
}

// NewGetMissionQuery validates the mission name.
func NewGetMissionQuery(name string) (GetMissionQuery, error) {
	n, err := kernel.NewName(name)
	if err != nil {
		return GetMissionQuery{}, err
	}
	return GetMissionQuery{name: n, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMissionQuery) Validate() error {
	return q.guard.Validate(ErrGetMissionQueryIsNotConstructed)
}

// MissionName returns the mission to look up.
func (q GetMissionQuery) MissionName() kernel.Name {
	return q.name
}

// MissionView is the read model of a mission and the rockets attached to it,
// in store order.
type MissionView struct {
	Name            string
	Status          mission.Status
	AllRocketsCount int
	InSpaceCount    int
	InRepairCount   int
	Rockets         []RocketView
}

func newMissionView(m *mission.Mission, crew []*rocket.Rocket) MissionView {
	view := MissionView{
		Name:            m.Name().String(),
		Status:          m.Status(),
		AllRocketsCount: m.AllRocketsCount(),
		InSpaceCount:    m.InSpaceCount(),
		InRepairCount:   m.InRepairCount(),
		Rockets:         make([]RocketView, 0, len(crew)),
	}
	for _, r := range crew {
		view.Rockets = append(view.Rockets, newRocketView(r))
	}
	return view
}
