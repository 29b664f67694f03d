package memory_test

import (
	"testing"

	"spacefleet/internal/adapters/out/memory"
	"spacefleet/internal/core/domain/model/kernel"
	"spacefleet/internal/core/domain/model/mission"
	"spacefleet/internal/core/domain/model/rocket"
	"spacefleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRocketRepository_GetMissing(t *testing.T) {
	repo := memory.NewUnitOfWorkFactory(memory.NewStore()).Create().RocketRepository()

	got, err := repo.Get(t.Context(), kernel.MustNewName("Ghost"))

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, got)
}

func TestRocketRepository_SaveOverwritesAndKeepsOrder(t *testing.T) {
	// Arrange
	ctx := t.Context()
	repo := memory.NewUnitOfWorkFactory(memory.NewStore()).Create().RocketRepository()
	mars := kernel.MustNewName("Mars")
	for _, name := range []string{"C", "A", "B"} {
		require.NoError(t, repo.Save(ctx, newRocket(t, name).WithMission(mars).WithStatus(rocket.InSpace)))
	}

	// Act
	require.NoError(t, repo.Save(ctx, newRocket(t, "C").WithMission(mars).WithStatus(rocket.InRepair)))
	found, err := repo.FindByMission(ctx, mars)

	// Assert
	require.NoError(t, err)
	require.Len(t, found, 3)
	assert.Equal(t, "C", found[0].Name().String())
	assert.Equal(t, rocket.InRepair, found[0].Status())
	assert.Equal(t, "A", found[1].Name().String())
	assert.Equal(t, "B", found[2].Name().String())
}

func TestRocketRepository_FindByMissionFilters(t *testing.T) {
	// Arrange
	ctx := t.Context()
	repo := memory.NewUnitOfWorkFactory(memory.NewStore()).Create().RocketRepository()
	require.NoError(t, repo.Save(ctx, newRocket(t, "Mine").WithMission(kernel.MustNewName("Mars")).WithStatus(rocket.InSpace)))
	require.NoError(t, repo.Save(ctx, newRocket(t, "Other").WithMission(kernel.MustNewName("Luna")).WithStatus(rocket.InSpace)))
	require.NoError(t, repo.Save(ctx, newRocket(t, "Idle")))

	// Act
	found, err := repo.FindByMission(ctx, kernel.MustNewName("Mars"))
	none, noneErr := repo.FindByMission(ctx, kernel.MustNewName("Venus"))

	// Assert
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Mine", found[0].Name().String())
	require.NoError(t, noneErr)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestRocketRepository_SaveRejectsZeroValue(t *testing.T) {
	repo := memory.NewUnitOfWorkFactory(memory.NewStore()).Create().RocketRepository()

	err := repo.Save(t.Context(), &rocket.Rocket{})

	require.ErrorIs(t, err, rocket.ErrRocketIsNotConstructed)
}

func TestMissionRepository_GetAllSorted(t *testing.T) {
	// Arrange
	ctx := t.Context()
	repo := memory.NewUnitOfWorkFactory(memory.NewStore()).Create().MissionRepository()
	require.NoError(t, repo.Save(ctx, newMission(t, "Alpha", mission.Counters{AllRockets: 1, InSpace: 1})))
	require.NoError(t, repo.Save(ctx, newMission(t, "Beta", mission.Counters{AllRockets: 3, InSpace: 3})))
	require.NoError(t, repo.Save(ctx, newMission(t, "Gamma", mission.Counters{AllRockets: 1, InRepair: 1})))
	require.NoError(t, repo.Save(ctx, newMission(t, "Delta", mission.Counters{})))

	// Act
	sorted, err := repo.GetAllSorted(ctx)

	// Assert
	require.NoError(t, err)
	names := make([]string, 0, len(sorted))
	for _, m := range sorted {
		names = append(names, m.Name().String())
	}
	assert.Equal(t, []string{"Beta", "Gamma", "Alpha", "Delta"}, names)
}

func TestMissionRepository_GetAllSortedEmpty(t *testing.T) {
	repo := memory.NewUnitOfWorkFactory(memory.NewStore()).Create().MissionRepository()

	sorted, err := repo.GetAllSorted(t.Context())

	require.NoError(t, err)
	assert.NotNil(t, sorted)
	assert.Empty(t, sorted)
}

func TestMissionRepository_PendingMissionsAreListedInsideTransaction(t *testing.T) {
	// Arrange
	ctx := t.Context()
	uow := memory.NewUnitOfWorkFactory(memory.NewStore()).Create()
	require.NoError(t, uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	// Act
	require.NoError(t, uow.MissionRepository().Save(ctx, newMission(t, "Mars", mission.Counters{})))
	sorted, err := uow.MissionRepository().GetAllSorted(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, sorted, 1)
	assert.Equal(t, "Mars", sorted[0].Name().String())
}
