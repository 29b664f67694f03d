package http

import (
	"spacefleet/internal/core/application/usecases/commands"
	"spacefleet/internal/core/application/usecases/queries"
	"spacefleet/internal/generated/servers"
)

func toRocket(view queries.RocketView) servers.Rocket {
	out := servers.Rocket{
		Name:   view.Name,
		Status: servers.RocketStatus(view.Status.String()),
	}
	if view.Mission != "" {
		mission := view.Mission
		out.Mission = &mission
	}
	return out
}

func toMission(view queries.MissionView) servers.Mission {
	rockets := make([]servers.Rocket, len(view.Rockets))
	for i, r := range view.Rockets {
		rockets[i] = toRocket(r)
	}
	return servers.Mission{
		Name:            view.Name,
		Status:          servers.MissionStatus(view.Status.String()),
		AllRocketsCount: view.AllRocketsCount,
		InSpaceCount:    view.InSpaceCount,
		InRepairCount:   view.InRepairCount,
		Rockets:         rockets,
	}
}

func toAssignmentResult(result commands.AssignRocketsResult) servers.AssignmentResult {
	out := servers.AssignmentResult{
		Assigned: make([]string, len(result.Assigned)),
		Skipped:  make([]servers.SkippedRocket, len(result.Skipped)),
	}
	for i, name := range result.Assigned {
		out.Assigned[i] = name.String()
	}
	for i, skipped := range result.Skipped {
		out.Skipped[i] = servers.SkippedRocket{
			Name:   skipped.Name,
			Reason: skipped.Reason.Error(),
		}
	}
	return out
}
