package http

import (
	"log/slog"
	"net/http"

	"spacefleet/internal/core/application/usecases/commands"
	"spacefleet/internal/core/application/usecases/queries"
	"spacefleet/internal/core/domain/model/rocket"
	"spacefleet/internal/generated/servers"
	"spacefleet/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Operation names reported to metrics.
const (
	opCreateRocket       = "create_rocket"
	opCreateMission      = "create_mission"
	opAssignRocket       = "assign_rocket"
	opAssignRockets      = "assign_rockets"
	opChangeRocketStatus = "change_rocket_status"
	opFinishMission      = "finish_mission"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreateRocket       commands.CreateRocketCommandHandler
	CreateMission      commands.CreateMissionCommandHandler
	AssignRocket       commands.AssignRocketCommandHandler
	AssignRockets      commands.AssignRocketsCommandHandler
	ChangeRocketStatus commands.ChangeRocketStatusCommandHandler
	FinishMission      commands.FinishMissionCommandHandler

	// Query handlers
	GetRocket      queries.GetRocketQueryHandler
	GetMission     queries.GetMissionQueryHandler
	MissionsReport queries.GetMissionsReportQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server on top of the use case handlers.
func NewServer(handlers Handlers, logger *slog.Logger, m *metrics.Metrics) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
		metrics:  m,
	}
}

// CreateRocket handles POST /api/v1/rockets - registers a rocket on the ground.
func (s *Server) CreateRocket(ctx echo.Context) error {
	var body servers.CreateRocketJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateRocketCommand(body.Name)
	if err != nil {
		return s.fail(ctx, err)
	}

	err = s.handlers.CreateRocket.Handle(ctx.Request().Context(), cmd)
	s.metrics.ObserveOperation(opCreateRocket, err)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondRocket(ctx, http.StatusCreated, body.Name)
}

// GetRocket handles GET /api/v1/rockets/{name}.
func (s *Server) GetRocket(ctx echo.Context, name servers.Name) error {
	return s.respondRocket(ctx, http.StatusOK, name)
}

// ChangeRocketStatus handles PUT /api/v1/rockets/{name}/status.
func (s *Server) ChangeRocketStatus(ctx echo.Context, name servers.Name) error {
	var body servers.ChangeRocketStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := rocket.ParseStatus(string(body.Status))
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewChangeRocketStatusCommand(name, status)
	if err != nil {
		return s.fail(ctx, err)
	}

	err = s.handlers.ChangeRocketStatus.Handle(ctx.Request().Context(), cmd)
	s.metrics.ObserveOperation(opChangeRocketStatus, err)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondRocket(ctx, http.StatusOK, name)
}

// GetMissions handles GET /api/v1/missions - missions in report order.
func (s *Server) GetMissions(ctx echo.Context) error {
	report, err := s.handlers.MissionsReport.Handle(ctx.Request().Context(), queries.NewGetMissionsReportQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Mission, len(report.Missions))
	for i, view := range report.Missions {
		response[i] = toMission(view)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateMission handles POST /api/v1/missions - schedules a mission.
func (s *Server) CreateMission(ctx echo.Context) error {
	var body servers.CreateMissionJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateMissionCommand(body.Name)
	if err != nil {
		return s.fail(ctx, err)
	}

	err = s.handlers.CreateMission.Handle(ctx.Request().Context(), cmd)
	s.metrics.ObserveOperation(opCreateMission, err)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondMission(ctx, http.StatusCreated, body.Name)
}

// GetMission handles GET /api/v1/missions/{name}.
func (s *Server) GetMission(ctx echo.Context, name servers.Name) error {
	return s.respondMission(ctx, http.StatusOK, name)
}

// AssignRocket handles POST /api/v1/missions/{name}/rockets/{rocket}.
func (s *Server) AssignRocket(ctx echo.Context, name servers.Name, rocketName string) error {
	cmd, err := commands.NewAssignRocketCommand(rocketName, name)
	if err != nil {
		return s.fail(ctx, err)
	}

	err = s.handlers.AssignRocket.Handle(ctx.Request().Context(), cmd)
	s.metrics.ObserveOperation(opAssignRocket, err)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondMission(ctx, http.StatusOK, name)
}

// AssignRockets handles POST /api/v1/missions/{name}/rockets. Unknown and
// already assigned rockets are reported as skipped, not as errors.
func (s *Server) AssignRockets(ctx echo.Context, name servers.Name) error {
	var body servers.AssignRocketsJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignRocketsCommand(body.Rockets, name)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.AssignRockets.Handle(ctx.Request().Context(), cmd)
	s.metrics.ObserveOperation(opAssignRockets, err)
	if err != nil {
		return s.fail(ctx, err)
	}

	for _, skipped := range result.Skipped {
		s.logger.InfoContext(ctx.Request().Context(), "Rocket skipped",
			"mission", name, "rocket", skipped.Name, "reason", skipped.Reason)
	}

	return ctx.JSON(http.StatusOK, toAssignmentResult(result))
}

// FinishMission handles POST /api/v1/missions/{name}/finish.
func (s *Server) FinishMission(ctx echo.Context, name servers.Name) error {
	cmd, err := commands.NewFinishMissionCommand(name)
	if err != nil {
		return s.fail(ctx, err)
	}

	err = s.handlers.FinishMission.Handle(ctx.Request().Context(), cmd)
	s.metrics.ObserveOperation(opFinishMission, err)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondMission(ctx, http.StatusOK, name)
}

// GetReport handles GET /api/v1/report - the fleet report as plain text.
func (s *Server) GetReport(ctx echo.Context) error {
	report, err := s.handlers.MissionsReport.Handle(ctx.Request().Context(), queries.NewGetMissionsReportQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.String(http.StatusOK, report.String())
}

func (s *Server) respondRocket(ctx echo.Context, code int, name string) error {
	query, err := queries.NewGetRocketQuery(name)
	if err != nil {
		return s.fail(ctx, err)
	}
	view, err := s.handlers.GetRocket.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(code, toRocket(view))
}

func (s *Server) respondMission(ctx echo.Context, code int, name string) error {
	query, err := queries.NewGetMissionQuery(name)
	if err != nil {
		return s.fail(ctx, err)
	}
	view, err := s.handlers.GetMission.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(code, toMission(view))
}
