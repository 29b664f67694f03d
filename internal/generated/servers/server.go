package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List missions by rocket count and name, both descending
	// (GET /api/v1/missions)
	GetMissions(ctx echo.Context) error
	// Schedule a mission
	// (POST /api/v1/missions)
	CreateMission(ctx echo.Context) error
	// Look up a mission and its rockets
	// (GET /api/v1/missions/{name})
	GetMission(ctx echo.Context, name Name) error
	// End a mission and ground its rockets
	// (POST /api/v1/missions/{name}/finish)
	FinishMission(ctx echo.Context, name Name) error
	// Assign several rockets, skipping unknown and busy ones
	// (POST /api/v1/missions/{name}/rockets)
	AssignRockets(ctx echo.Context, name Name) error
	// Assign one rocket
	// (POST /api/v1/missions/{name}/rockets/{rocket})
	AssignRocket(ctx echo.Context, name Name, rocket string) error
	// Fleet report as text
	// (GET /api/v1/report)
	GetReport(ctx echo.Context) error
	// Register a rocket on the ground
	// (POST /api/v1/rockets)
	CreateRocket(ctx echo.Context) error
	// Look up a rocket
	// (GET /api/v1/rockets/{name})
	GetRocket(ctx echo.Context, name Name) error
	// Move a rocket to another status
	// (PUT /api/v1/rockets/{name}/status)
	ChangeRocketStatus(ctx echo.Context, name Name) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetMissions converts echo context to params.
func (w *ServerInterfaceWrapper) GetMissions(ctx echo.Context) error {
	return w.Handler.GetMissions(ctx)
}

// CreateMission converts echo context to params.
func (w *ServerInterfaceWrapper) CreateMission(ctx echo.Context) error {
	return w.Handler.CreateMission(ctx)
}

// GetMission converts echo context to params.
func (w *ServerInterfaceWrapper) GetMission(ctx echo.Context) error {
	name, err := bindName(ctx, "name")
	if err != nil {
		return err
	}
	return w.Handler.GetMission(ctx, name)
}

// FinishMission converts echo context to params.
func (w *ServerInterfaceWrapper) FinishMission(ctx echo.Context) error {
	name, err := bindName(ctx, "name")
	if err != nil {
		return err
	}
	return w.Handler.FinishMission(ctx, name)
}

// AssignRockets converts echo context to params.
func (w *ServerInterfaceWrapper) AssignRockets(ctx echo.Context) error {
	name, err := bindName(ctx, "name")
	if err != nil {
		return err
	}
	return w.Handler.AssignRockets(ctx, name)
}

// AssignRocket converts echo context to params.
func (w *ServerInterfaceWrapper) AssignRocket(ctx echo.Context) error {
	name, err := bindName(ctx, "name")
	if err != nil {
		return err
	}
	rocket, err := bindName(ctx, "rocket")
	if err != nil {
		return err
	}
	return w.Handler.AssignRocket(ctx, name, rocket)
}

// GetReport converts echo context to params.
func (w *ServerInterfaceWrapper) GetReport(ctx echo.Context) error {
	return w.Handler.GetReport(ctx)
}

// CreateRocket converts echo context to params.
func (w *ServerInterfaceWrapper) CreateRocket(ctx echo.Context) error {
	return w.Handler.CreateRocket(ctx)
}

// GetRocket converts echo context to params.
func (w *ServerInterfaceWrapper) GetRocket(ctx echo.Context) error {
	name, err := bindName(ctx, "name")
	if err != nil {
		return err
	}
	return w.Handler.GetRocket(ctx, name)
}

// ChangeRocketStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeRocketStatus(ctx echo.Context) error {
	name, err := bindName(ctx, "name")
	if err != nil {
		return err
	}
	return w.Handler.ChangeRocketStatus(ctx, name)
}

func bindName(ctx echo.Context, param string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", param, ctx.Param(param), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", param, err))
	}
	return value, nil
}

// EchoRouter is an interface that wraps the methods of echo.Echo and echo.Group
// used by RegisterHandlers.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/missions", wrapper.GetMissions)
	router.POST(baseURL+"/api/v1/missions", wrapper.CreateMission)
	router.GET(baseURL+"/api/v1/missions/:name", wrapper.GetMission)
	router.POST(baseURL+"/api/v1/missions/:name/finish", wrapper.FinishMission)
	router.POST(baseURL+"/api/v1/missions/:name/rockets", wrapper.AssignRockets)
	router.POST(baseURL+"/api/v1/missions/:name/rockets/:rocket", wrapper.AssignRocket)
	router.GET(baseURL+"/api/v1/report", wrapper.GetReport)
	router.POST(baseURL+"/api/v1/rockets", wrapper.CreateRocket)
	router.GET(baseURL+"/api/v1/rockets/:name", wrapper.GetRocket)
	router.PUT(baseURL+"/api/v1/rockets/:name/status", wrapper.ChangeRocketStatus)
}
