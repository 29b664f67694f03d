package commands

import (
	"context"

	"spacefleet/internal/core/domain/model/kernel"
	"spacefleet/internal/core/domain/services"
)

// ChangeRocketStatusCommandHandler updates a rocket's status together with the
// counters of the mission it belongs to.
//
// Requesting the current status succeeds without any writes.
//
// Errors:
//   - ErrRocketNotFound
//   - errs.ErrOperationNotAllowed for launches outside of an assignment
//   - ErrMissionNotFound if the rocket points at a mission that is gone
type ChangeRocketStatusCommandHandler struct {
	uowFactory UoWFactory
	engine     services.TransitionEngine
}

// NewChangeRocketStatusCommandHandler creates a handler for status changes.
func NewChangeRocketStatusCommandHandler(uowFactory UoWFactory) ChangeRocketStatusCommandHandler {
	return ChangeRocketStatusCommandHandler{
		uowFactory: uowFactory,
		engine:     services.NewTransitionEngine(),
	}
}

// Handle processes the status change.
func (h ChangeRocketStatusCommandHandler) Handle(ctx context.Context, cmd ChangeRocketStatusCommand) error {
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

	current, err := rocketRepo.Get(ctx, cmd.RocketName())
	if err != nil {
		return notFound(err, ErrRocketNotFound, cmd.RocketName())
	}

	change, err := h.engine.ChangeStatus(current, cmd.Status())
	if err != nil {
		return err
	}

	if !change.Changed {
		return nil
	}

	if change.Mission != nil {
		if err = h.moveMissionCounters(ctx, uow, *change.Mission, change); err != nil {
			return err
		}
	}

	if err = rocketRepo.Save(ctx, change.Rocket); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h ChangeRocketStatusCommandHandler) moveMissionCounters(
	ctx context.Context,
	uow UoW,
	missionName kernel.Name,
	change services.StatusChange,
) error {
	missionRepo := uow.MissionRepository()

	owner, err := missionRepo.Get(ctx, missionName)
	if err != nil {
		return notFound(err, ErrMissionNotFound, missionName)
	}

	updated, err := h.engine.ApplyStatusChange(owner, change)
	if err != nil {
		return err
	}

	return missionRepo.Save(ctx, updated)
}
