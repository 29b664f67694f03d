package cmd

import (
	"log/slog"

	"spacefleet/internal/adapters/in/http"
	"spacefleet/internal/adapters/in/seed"
	"spacefleet/internal/core/application/usecases/commands"
	"spacefleet/internal/core/application/usecases/queries"
	"spacefleet/internal/core/ports"
	"spacefleet/internal/jobs"
	"spacefleet/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

type CompositionRoot struct {
	config     Config
	uowFactory ports.UnitOfWorkFactory
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

func NewCompositionRoot(config Config, uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *CompositionRoot {
	return &CompositionRoot{
		config:     config,
		uowFactory: uowFactory,
		logger:     logger,
		metrics:    metrics.New(),
	}
}

func (c *CompositionRoot) CreateCreateRocketCommandHandler() commands.CreateRocketCommandHandler {
	var f commands.RocketUoWFactory = FuncRocketUoWFactory(func() commands.RocketUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRocketCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMissionCommandHandler() commands.CreateMissionCommandHandler {
	var f commands.MissionUoWFactory = FuncMissionUoWFactory(func() commands.MissionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMissionCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignRocketCommandHandler() commands.AssignRocketCommandHandler {
	return commands.NewAssignRocketCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateAssignRocketsCommandHandler() commands.AssignRocketsCommandHandler {
	return commands.NewAssignRocketsCommandHandler(c.CreateAssignRocketCommandHandler())
}

func (c *CompositionRoot) CreateChangeRocketStatusCommandHandler() commands.ChangeRocketStatusCommandHandler {
	return commands.NewChangeRocketStatusCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateFinishMissionCommandHandler() commands.FinishMissionCommandHandler {
	return commands.NewFinishMissionCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateGetRocketQueryHandler() queries.GetRocketQueryHandler {
	return queries.NewGetRocketQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetMissionQueryHandler() queries.GetMissionQueryHandler {
	return queries.NewGetMissionQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetMissionsReportQueryHandler() queries.GetMissionsReportQueryHandler {
	return queries.NewGetMissionsReportQueryHandler(c.uowFactory)
}

// CreateHTTPRouter wires the HTTP server and its middleware.
func (c *CompositionRoot) CreateHTTPRouter() (*echo.Echo, error) {
	server := http.NewServer(http.Handlers{
		CreateRocket:       c.CreateCreateRocketCommandHandler(),
		CreateMission:      c.CreateCreateMissionCommandHandler(),
		AssignRocket:       c.CreateAssignRocketCommandHandler(),
		AssignRockets:      c.CreateAssignRocketsCommandHandler(),
		ChangeRocketStatus: c.CreateChangeRocketStatusCommandHandler(),
		FinishMission:      c.CreateFinishMissionCommandHandler(),
		GetRocket:          c.CreateGetRocketQueryHandler(),
		GetMission:         c.CreateGetMissionQueryHandler(),
		MissionsReport:     c.CreateGetMissionsReportQueryHandler(),
	}, c.logger, c.metrics)
	return http.NewRouter(server, c.logger, c.metrics)
}

func (c *CompositionRoot) CreateSeedLoader() *seed.Loader {
	return seed.NewLoader(seed.Handlers{
		CreateRocket:       c.CreateCreateRocketCommandHandler(),
		CreateMission:      c.CreateCreateMissionCommandHandler(),
		AssignRockets:      c.CreateAssignRocketsCommandHandler(),
		ChangeRocketStatus: c.CreateChangeRocketStatusCommandHandler(),
		FinishMission:      c.CreateFinishMissionCommandHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetMissionsReportQueryHandler(), c.config.ReportSchedule, c.logger)
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncRocketUoWFactory func() commands.RocketUoW

func (f FuncRocketUoWFactory) Create() commands.RocketUoW {
	return f()
}

type FuncMissionUoWFactory func() commands.MissionUoW

func (f FuncMissionUoWFactory) Create() commands.MissionUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
