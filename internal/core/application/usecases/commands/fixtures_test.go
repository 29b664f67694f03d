package commands_test

import (
	"testing"

	"spacefleet/internal/core/domain/model/kernel"
	"spacefleet/internal/core/domain/model/mission"
	"spacefleet/internal/core/domain/model/rocket"

	"github.com/stretchr/testify/require"
)

func restoreRocket(t *testing.T, name string, status rocket.Status, missionName string) *rocket.Rocket {
	t.Helper()
	var owner *kernel.Name
	if missionName != "" {
		n := kernel.MustNewName(missionName)
		owner = &n
	}
	r, err := rocket.RestoreRocket(kernel.MustNewName(name), status, owner)
	require.NoError(t, err)
	return r
}

func restoreMission(t *testing.T, name string, status mission.Status, counters mission.Counters) *mission.Mission {
	t.Helper()
	m, err := mission.RestoreMission(kernel.MustNewName(name), status, counters)
	require.NoError(t, err)
	return m
}
