package commands

import (
	"errors"

	"spacefleet/internal/core/domain/model/kernel"
	"spacefleet/internal/pkg/guard"
)

var ErrAssignRocketCommandIsNotConstructed = errors.New(
	"AssignRocketCommand must be created via NewAssignRocketCommand constructor",
)

// AssignRocketCommand attaches one rocket to a mission.
//
// Example:
//
//	cmd, err := NewAssignRocketCommand("Red Dragon", "Mars")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, mission.ErrCannotAssignToEndedMission):
//	    log.Println("Mars is over")
//	case errors.Is(err, rocket.ErrRocketAlreadyAssigned):
//	    log.Println("Red Dragon is busy")
//	}
type AssignRocketCommand struct {
	rocketName  kernel.Name
	missionName kernel.Name

	guard guard.ConstructorGuard
}

// NewAssignRocketCommand validates both names.
func NewAssignRocketCommand(rocketName, missionName string) (AssignRocketCommand, error) {
	r, rocketErr := kernel.NewName(rocketName)
	m, missionErr := kernel.NewName(missionName)
	if err := errors.Join(rocketErr, missionErr); err != nil {
		return AssignRocketCommand{}, err
	}
	return newAssignRocketCommand(r, m), nil
}

func newAssignRocketCommand(rocketName, missionName kernel.Name) AssignRocketCommand {
	return AssignRocketCommand{
		rocketName:  rocketName,
		missionName: missionName,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c AssignRocketCommand) Validate() error {
	return c.guard.Validate(ErrAssignRocketCommandIsNotConstructed)
}

// RocketName returns the rocket to assign.
func (c AssignRocketCommand) RocketName() kernel.Name {
	return c.rocketName
}

// MissionName returns the target mission.
func (c AssignRocketCommand) MissionName() kernel.Name {
	return c.missionName
}
