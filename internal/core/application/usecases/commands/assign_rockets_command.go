package commands

import (
	"errors"

	"spacefleet/internal/core/domain/model/kernel"
	"spacefleet/internal/pkg/guard"
)

var ErrAssignRocketsCommandIsNotConstructed = errors.New(
	"AssignRocketsCommand must be created via NewAssignRocketsCommand constructor",
)

// AssignRocketsCommand attaches several rockets to one mission, in order.
//
// Rocket names are kept as given. A name that is not a valid Name cannot
// belong to a stored rocket, so the handler skips it like any missing rocket.
type AssignRocketsCommand struct {
	rocketNames []string
	missionName kernel.Name

	guard guard.ConstructorGuard
}

// NewAssignRocketsCommand validates the mission name.
// An empty rocket list is valid and assigns nothing.
func NewAssignRocketsCommand(rocketNames []string, missionName string) (AssignRocketsCommand, error) {
	m, err := kernel.NewName(missionName)
	if err != nil {
		return AssignRocketsCommand{}, err
	}
	return AssignRocketsCommand{
		rocketNames: append([]string(nil), rocketNames...),
		missionName: m,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRocketsCommand) Validate() error {
	return c.guard.Validate(ErrAssignRocketsCommandIsNotConstructed)
}

// RocketNames returns the rockets in processing order.
func (c AssignRocketsCommand) RocketNames() []string {
	return append([]string(nil), c.rocketNames...)
}

// MissionName returns the target mission.
func (c AssignRocketsCommand) MissionName() kernel.Name {
	return c.missionName
}
