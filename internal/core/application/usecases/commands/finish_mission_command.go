package commands

import (
	"errors"

	"spacefleet/internal/core/domain/model/kernel"
	"spacefleet/internal/pkg/guard"
)

var ErrFinishMissionCommandIsNotConstructed = errors.New(
	"FinishMissionCommand must be created via NewFinishMissionCommand constructor",
)

// FinishMissionCommand ends a mission and brings its rockets home.
type FinishMissionCommand struct {
	missionName kernel.Name

	guard guard.ConstructorGuard
}

// NewFinishMissionCommand validates the mission name.
func NewFinishMissionCommand(missionName string) (FinishMissionCommand, error) {
	name, err := kernel.NewName(missionName)
	if err != nil {
		return FinishMissionCommand{}, err
	}
	return FinishMissionCommand{
		missionName: name,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishMissionCommand) Validate() error {
	return c.guard.Validate(ErrFinishMissionCommandIsNotConstructed)
}

// MissionName returns the mission to finish.
func (c FinishMissionCommand) MissionName() kernel.Name {
	return c.missionName
}
