package commands

import (
	"context"
	"errors"
	"fmt"

	"spacefleet/internal/core/domain/model/kernel"
	"spacefleet/internal/core/domain/model/rocket"
)

// SkippedRocket is a rocket the batch left untouched.
type SkippedRocket struct {
	Name   string
	Reason error
}

// AssignRocketsResult lists the outcome per rocket, in processing order.
type AssignRocketsResult struct {
	Assigned []kernel.Name
	Skipped  []SkippedRocket
}

// AssignRocketsCommandHandler runs one assignment per rocket, each in its own
// transaction.
//
// Missing and already assigned rockets are skipped, and so are names that no
// rocket could carry. Any other failure, such
// as a missing or ended mission, stops the batch and is returned together
// with the rockets processed so far; those stay assigned.
type AssignRocketsCommandHandler struct {
	assign AssignRocketCommandHandler
}

// NewAssignRocketsCommandHandler creates a batch handler on top of the single
// assignment handler.
func NewAssignRocketsCommandHandler(assign AssignRocketCommandHandler) AssignRocketsCommandHandler {
	return AssignRocketsCommandHandler{assign: assign}
}

// Handle processes the rockets in the order given by the command.
func (h AssignRocketsCommandHandler) Handle(ctx context.Context, cmd AssignRocketsCommand) (AssignRocketsResult, error) {
	result := AssignRocketsResult{
		Assigned: make([]kernel.Name, 0),
		Skipped:  make([]SkippedRocket, 0),
	}
	if err := cmd.Validate(); err != nil {
		return result, err
	}

	for _, raw := range cmd.RocketNames() {
		rocketName, err := kernel.NewName(raw)
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedRocket{
				Name:   raw,
				Reason: fmt.Errorf("%w %q: %w", ErrRocketNotFound, raw, err),
			})
			continue
		}

		err = h.assign.Handle(ctx, newAssignRocketCommand(rocketName, cmd.MissionName()))
		switch {
		case err == nil:
			result.Assigned = append(result.Assigned, rocketName)
		case isSkippable(err):
			result.Skipped = append(result.Skipped, SkippedRocket{Name: raw, Reason: err})
		default:
			return result, err
		}
	}

	return result, nil
}

func isSkippable(err error) bool {
	return errors.Is(err, ErrRocketNotFound) || errors.Is(err, rocket.ErrRocketAlreadyAssigned)
}
