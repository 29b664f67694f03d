package seed_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spacefleet/cmd"
	"spacefleet/internal/adapters/in/seed"
	"spacefleet/internal/adapters/out/memory"
	"spacefleet/internal/core/application/usecases/queries"
	"spacefleet/internal/core/domain/model/mission"
	"spacefleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fleetFixture = `
missions: [Mars, Luna, Transit]
rockets: [Dragon 1, Dragon 2, Dragon 3, Dragon 4]
assignments:
  Luna: [Dragon 1, Dragon 2]
  Mars: [Dragon 3, Dragon 1, Ghost]
statuses:
  Dragon 2: IN_REPAIR
finished: [Mars]
`

func newRoot(t *testing.T) *cmd.CompositionRoot {
	t.Helper()
	return cmd.NewCompositionRoot(
		cmd.Config{StoreDriver: cmd.StoreMemory},
		memory.NewUnitOfWorkFactory(memory.NewStore()),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func report(t *testing.T, root *cmd.CompositionRoot) string {
	t.Helper()
	r, err := root.CreateGetMissionsReportQueryHandler().Handle(t.Context(), queries.NewGetMissionsReportQuery())
	require.NoError(t, err)
	return r.String()
}

func TestParse_KeepsMappingOrder(t *testing.T) {
	f, err := seed.Parse(strings.NewReader(fleetFixture))
	require.NoError(t, err)

	assert.Equal(t, []string{"Mars", "Luna", "Transit"}, f.Missions)
	assert.Equal(t, seed.Assignments{
		{Mission: "Luna", Rockets: []string{"Dragon 1", "Dragon 2"}},
		{Mission: "Mars", Rockets: []string{"Dragon 3", "Dragon 1", "Ghost"}},
	}, f.Assignments)
	assert.Equal(t, seed.StatusChanges{{Rocket: "Dragon 2", Status: "IN_REPAIR"}}, f.Statuses)
	assert.Equal(t, []string{"Mars"}, f.Finished)
}

func TestParse_Empty(t *testing.T) {
	f, err := seed.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Missions)
}

func TestParse_UnknownSection(t *testing.T) {
	_, err := seed.Parse(strings.NewReader("planets: [Earth]\n"))
	require.Error(t, err)
}

func TestParse_AssignmentsMustBeMapping(t *testing.T) {
	_, err := seed.Parse(strings.NewReader("assignments: [Mars]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assignments must be a mapping")
}

func TestLoader_Apply(t *testing.T) {
	root := newRoot(t)
	f, err := seed.Parse(strings.NewReader(fleetFixture))
	require.NoError(t, err)

	summary, err := root.CreateSeedLoader().Apply(t.Context(), f)
	require.NoError(t, err)

	assert.Equal(t, seed.Summary{
		Missions:      3,
		Rockets:       4,
		Assigned:      3,
		Skipped:       2,
		StatusChanges: 1,
		Finished:      1,
	}, summary)
	assert.Equal(t,
		"Luna - PENDING - 2 dragons\n"+
			"  Dragon 1 - In Space\n"+
			"  Dragon 2 - In Repair\n"+
			"Transit - SCHEDULED - 0 dragons\n"+
			"Mars - ENDED - 0 dragons\n",
		report(t, root))
}

func TestLoader_KeepsExistingRocketsAndMissions(t *testing.T) {
	root := newRoot(t)
	loader := root.CreateSeedLoader()
	f := seed.Fixture{Missions: []string{"Luna"}, Rockets: []string{"Dragon 1"}}

	_, err := loader.Apply(t.Context(), f)
	require.NoError(t, err)
	summary, err := loader.Apply(t.Context(), f)
	require.NoError(t, err)

	assert.Zero(t, summary.Missions)
	assert.Zero(t, summary.Rockets)
}

func TestLoader_StopsOnUnknownMission(t *testing.T) {
	root := newRoot(t)
	f := seed.Fixture{
		Rockets:     []string{"Dragon 1"},
		Assignments: seed.Assignments{{Mission: "Pluto", Rockets: []string{"Dragon 1"}}},
	}

	_, err := root.CreateSeedLoader().Apply(t.Context(), f)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestLoader_RejectsUnknownStatus(t *testing.T) {
	root := newRoot(t)
	f := seed.Fixture{
		Rockets:  []string{"Dragon 1"},
		Statuses: seed.StatusChanges{{Rocket: "Dragon 1", Status: "ON_FIRE"}},
	}

	_, err := root.CreateSeedLoader().Apply(t.Context(), f)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestLoader_LoadFile(t *testing.T) {
	root := newRoot(t)
	path := filepath.Join(t.TempDir(), "fleet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fleetFixture), 0o600))

	summary, err := root.CreateSeedLoader().LoadFile(t.Context(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Finished)

	query, err := queries.NewGetMissionQuery("Mars")
	require.NoError(t, err)
	view, err := root.CreateGetMissionQueryHandler().Handle(t.Context(), query)
	require.NoError(t, err)
	assert.Equal(t, mission.Ended, view.Status)
}

func TestLoader_LoadFileMissing(t *testing.T) {
	_, err := newRoot(t).CreateSeedLoader().LoadFile(t.Context(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
