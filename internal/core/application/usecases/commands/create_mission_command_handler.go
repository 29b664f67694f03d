package commands

import (
	"context"
	"errors"

	"spacefleet/internal/core/domain/model/mission"
	"spacefleet/internal/pkg/errs"
)

// CreateMissionCommandHandler persists new missions.
// Fails with ErrMissionAlreadyExists if the name is taken.
type CreateMissionCommandHandler struct {
	uowFactory MissionUoWFactory
}

// NewCreateMissionCommandHandler creates a handler for mission registration.
func NewCreateMissionCommandHandler(uowFactory MissionUoWFactory) CreateMissionCommandHandler {
	return CreateMissionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the mission and persists it within a transaction.
func (h CreateMissionCommandHandler) Handle(ctx context.Context, cmd CreateMissionCommand) error {
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

	missionRepo := uow.MissionRepository()

	_, err := missionRepo.Get(ctx, cmd.MissionName())
	if err == nil {
		return alreadyExists(ErrMissionAlreadyExists, cmd.MissionName())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := mission.NewMission(cmd.MissionName())
	if err != nil {
		return err
	}

	if err = missionRepo.Save(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
