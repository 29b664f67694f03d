package http

import (
	"errors"
	"net/http"

	"spacefleet/internal/core/domain/model/mission"
	"spacefleet/internal/core/domain/model/rocket"
	"spacefleet/internal/generated/servers"
	"spacefleet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusCode maps use case errors onto HTTP status codes.
func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, rocket.ErrRocketAlreadyAssigned),
		errors.Is(err, mission.ErrCannotAssignToEndedMission):
		return http.StatusConflict
	case errors.Is(err, errs.ErrOperationNotAllowed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusCode(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		message = http.StatusText(code)
	}
	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}
