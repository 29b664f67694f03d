package queries

import (
	"context"

	"spacefleet/internal/core/ports"
)

// GetRocketQueryHandler reads a rocket outside of any transaction.
// A missing rocket is reported as errs.ObjectNotFoundError.
type GetRocketQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetRocketQueryHandler creates a handler for rocket lookups.
func NewGetRocketQueryHandler(uowFactory ports.UnitOfWorkFactory) GetRocketQueryHandler {
	return GetRocketQueryHandler{uowFactory: uowFactory}
}

// Handle executes the lookup.
func (h GetRocketQueryHandler) Handle(ctx context.Context, query GetRocketQuery) (RocketView, error) {
	if err := query.Validate(); err != nil {
		return RocketView{}, err
	}

	found, err := h.uowFactory.Create().RocketRepository().Get(ctx, query.RocketName())
	if err != nil {
		return RocketView{}, err
	}

	return newRocketView(found), nil
}
