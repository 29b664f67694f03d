package commands

import (
	"errors"

	"spacefleet/internal/core/domain/model/kernel"
	"spacefleet/internal/core/domain/model/rocket"
	"spacefleet/internal/pkg/errs"
	"spacefleet/internal/pkg/guard"
)

var ErrChangeRocketStatusCommandIsNotConstructed = errors.New(
	"ChangeRocketStatusCommand must be created via NewChangeRocketStatusCommand constructor",
)

// ChangeRocketStatusCommand moves a rocket to a new status.
type ChangeRocketStatusCommand struct {
	rocketName kernel.Name
	status     rocket.Status

	guard guard.ConstructorGuard
}

// NewChangeRocketStatusCommand validates the rocket name and the requested status.
func NewChangeRocketStatusCommand(rocketName string, status rocket.Status) (ChangeRocketStatusCommand, error) {
	name, err := kernel.NewName(rocketName)
	if err != nil {
		return ChangeRocketStatusCommand{}, err
	}
	if err = status.Validate(); err != nil {
		return ChangeRocketStatusCommand{}, errs.NewValueIsInvalidErrorWithCause("status", err)
	}
	return ChangeRocketStatusCommand{
		rocketName: name,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeRocketStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeRocketStatusCommandIsNotConstructed)
}

// RocketName returns the rocket to update.
func (c ChangeRocketStatusCommand) RocketName() kernel.Name {
	return c.rocketName
}

// Status returns the requested status.
func (c ChangeRocketStatusCommand) Status() rocket.Status {
	return c.status
}
