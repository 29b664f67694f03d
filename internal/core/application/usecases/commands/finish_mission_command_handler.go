package commands

import (
	"context"

	"spacefleet/internal/core/domain/services"
)

// FinishMissionCommandHandler ends a mission. Every rocket of the mission is
// set ON_GROUND with no mission, the counters drop to zero and the mission
// becomes ENDED. Finishing an ended mission again leaves it unchanged.
//
// Errors:
//   - ErrMissionNotFound
type FinishMissionCommandHandler struct {
	uowFactory UoWFactory
	engine     services.TransitionEngine
}

// NewFinishMissionCommandHandler creates a handler for finishing missions.
func NewFinishMissionCommandHandler(uowFactory UoWFactory) FinishMissionCommandHandler {
	return FinishMissionCommandHandler{
		uowFactory: uowFactory,
		engine:     services.NewTransitionEngine(),
	}
}

// Handle processes the command.
func (h FinishMissionCommandHandler) Handle(ctx context.Context, cmd FinishMissionCommand) error {
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

	crew, err := rocketRepo.FindByMission(ctx, target.Name())
	if err != nil {
		return err
	}

	ended, grounded, err := h.engine.Finish(target, crew)
	if err != nil {
		return err
	}

	for _, r := range grounded {
		if err = rocketRepo.Save(ctx, r); err != nil {
			return err
		}
	}

	if err = missionRepo.Save(ctx, ended); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
