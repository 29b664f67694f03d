package queries

import (
	"context"

	"spacefleet/internal/core/ports"
)

// GetMissionQueryHandler reads a mission and its rockets.
// A missing mission is reported as errs.ObjectNotFoundError.
type GetMissionQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetMissionQueryHandler creates a handler for mission lookups.
func NewGetMissionQueryHandler(uowFactory ports.UnitOfWorkFactory) GetMissionQueryHandler {
	return GetMissionQueryHandler{uowFactory: uowFactory}
}

// Handle executes the lookup.
func (h GetMissionQueryHandler) Handle(ctx context.Context, query GetMissionQuery) (MissionView, error) {
	if err := query.Validate(); err != nil {
		return MissionView{}, err
	}

	uow := h.uowFactory.Create()

	found, err := uow.MissionRepository().Get(ctx, query.MissionName())
	if err != nil {
		return MissionView{}, err
	}

	crew, err := uow.RocketRepository().FindByMission(ctx, found.Name())
	if err != nil {
		return MissionView{}, err
	}

	return newMissionView(found, crew), nil
}
