package queries

import (
	"context"

	"spacefleet/internal/core/ports"
)

// GetMissionsReportQueryHandler builds the fleet report from committed state.
type GetMissionsReportQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetMissionsReportQueryHandler creates a handler for the fleet report.
func NewGetMissionsReportQueryHandler(uowFactory ports.UnitOfWorkFactory) GetMissionsReportQueryHandler {
	return GetMissionsReportQueryHandler{uowFactory: uowFactory}
}

// Handle collects every mission and its rockets.
func (h GetMissionsReportQueryHandler) Handle(ctx context.Context, query GetMissionsReportQuery) (MissionsReport, error) {
	if err := query.Validate(); err != nil {
		return MissionsReport{}, err
	}

	uow := h.uowFactory.Create()

	missions, err := uow.MissionRepository().GetAllSorted(ctx)
	if err != nil {
		return MissionsReport{}, err
	}

	report := MissionsReport{Missions: make([]MissionView, 0, len(missions))}
	rocketRepo := uow.RocketRepository()
	for _, m := range missions {
		crew, err := rocketRepo.FindByMission(ctx, m.Name())
		if err != nil {
			return MissionsReport{}, err
		}
		report.Missions = append(report.Missions, newMissionView(m, crew))
	}

	return report, nil
}
