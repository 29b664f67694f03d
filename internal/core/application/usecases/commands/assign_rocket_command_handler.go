package commands

import (
	"context"

	"spacefleet/internal/core/domain/services"
)

// AssignRocketCommandHandler attaches a rocket to a mission and updates the
// mission's counters in the same transaction. Nothing is written when any
// check fails.
//
// Errors, checked in this order:
//   - ErrMissionNotFound
//   - ErrRocketNotFound
//   - mission.ErrCannotAssignToEndedMission
//   - rocket.ErrRocketAlreadyAssigned
type AssignRocketCommandHandler struct {
	uowFactory UoWFactory
	engine     services.TransitionEngine
}

// NewAssignRocketCommandHandler creates a handler for single rocket assignment.
func NewAssignRocketCommandHandler(uowFactory UoWFactory) AssignRocketCommandHandler {
	return AssignRocketCommandHandler{
		uowFactory: uowFactory,
		engine:     services.NewTransitionEngine(),
	}
}

// Handle processes the assignment.
func (h AssignRocketCommandHandler) Handle(ctx context.Context, cmd AssignRocketCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rocketRepo := uow.RocketRepository()
	missionRepo := uow.MissionRepository()

	target, err := missionRepo.Get(ctx, cmd.MissionName())
	if err != nil {
		return notFound(err, ErrMissionNotFound, cmd.MissionName())
	}

	candidate, err := rocketRepo.Get(ctx, cmd.RocketName())
	if err != nil {
		return notFound(err, ErrRocketNotFound, cmd.RocketName())
	}

	assigned, updated, err := h.engine.Assign(candidate, target)
	if err != nil {
		return err
	}

	if err = rocketRepo.Save(ctx, assigned); err != nil {
		return err
	}

	if err = missionRepo.Save(ctx, updated); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
