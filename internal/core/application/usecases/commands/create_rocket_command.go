package commands

import (
	"errors"

	"spacefleet/internal/core/domain/model/kernel"
	"spacefleet/internal/pkg/guard"
)

var ErrCreateRocketCommandIsNotConstructed = errors.New(
	"CreateRocketCommand must be created via NewCreateRocketCommand constructor",
)

// CreateRocketCommand registers a new rocket. The rocket starts on the
// ground with no mission.
//
// Example:
//
//	cmd, err := NewCreateRocketCommand("Red Dragon")
//	if err != nil {
//	    return fmt.Errorf("invalid rocket data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create rocket: %w", err)
//	}
type CreateRocketCommand struct {
	rocketName kernel.Name

	guard guard.ConstructorGuard
}

// NewCreateRocketCommand validates the rocket name.
func NewCreateRocketCommand(rocketName string) (CreateRocketCommand, error) {
	name, err := kernel.NewName(rocketName)
	if err != nil {
		return CreateRocketCommand{}, err
	}
	return CreateRocketCommand{
		rocketName: name,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRocketCommand) Validate() error {
	return c.guard.Validate(ErrCreateRocketCommandIsNotConstructed)
}

// RocketName returns the name of the rocket to create.
func (c CreateRocketCommand) RocketName() kernel.Name {
	return c.rocketName
}
