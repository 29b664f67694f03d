package commands

import (
	"context"
	"errors"

	"spacefleet/internal/core/domain/model/rocket"
	"spacefleet/internal/pkg/errs"
)

// CreateRocketCommandHandler persists new rockets.
// Fails with ErrRocketAlreadyExists if the name is taken.
type CreateRocketCommandHandler struct {
	uowFactory RocketUoWFactory
}

// NewCreateRocketCommandHandler creates a handler for rocket registration.
func NewCreateRocketCommandHandler(uowFactory RocketUoWFactory) CreateRocketCommandHandler {
	return CreateRocketCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the rocket and persists it within a transaction.
func (h CreateRocketCommandHandler) Handle(ctx context.Context, cmd CreateRocketCommand) error {
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

	_, err := rocketRepo.Get(ctx, cmd.RocketName())
	if err == nil {
		return alreadyExists(ErrRocketAlreadyExists, cmd.RocketName())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := rocket.NewRocket(cmd.RocketName())
	if err != nil {
		return err
	}

	if err = rocketRepo.Save(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
