package commands

import (
	"errors"

	"spacefleet/internal/core/domain/model/kernel"
	"spacefleet/internal/pkg/guard"
)

var ErrCreateMissionCommandIsNotConstructed = errors.New(
	"CreateMissionCommand must be created via NewCreateMissionCommand constructor",
)

// CreateMissionCommand registers a new, scheduled mission with no rockets.
type CreateMissionCommand struct {
	missionName kernel.Name

	guard guard.ConstructorGuard
}

// NewCreateMissionCommand validates the mission name.
func NewCreateMissionCommand(missionName string) (CreateMissionCommand, error) {
	name, err := kernel.NewName(missionName)
	if err != nil {
		return CreateMissionCommand{}, err
	}
	return CreateMissionCommand{
		missionName: name,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMissionCommand) Validate() error {
	return c.guard.Validate(ErrCreateMissionCommandIsNotConstructed)
}

// MissionName returns the name of the mission to create.
func (c CreateMissionCommand) MissionName() kernel.Name {
	return c.missionName
}
