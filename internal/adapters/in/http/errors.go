package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"fleetdispatch/internal/generated/servers"
	"fleetdispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// StatusFor maps an application error onto its HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthenticated), errors.Is(err, errs.ErrNoOrganization):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrExternalService):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	code := StatusFor(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
		message = http.StatusText(code)
	}

	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

// ErrorHandler renders errors that escaped the handlers (routing, binding and
// validation failures) in the API error shape.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = fmt.Sprint(he.Message)
		} else {
			logger.ErrorContext(ctx.Request().Context(), "unhandled error", "path", ctx.Path(), "error", err)
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(code)
		} else {
			err = ctx.JSON(code, servers.Error{Code: code, Message: message})
		}
		if err != nil {
			logger.ErrorContext(ctx.Request().Context(), "write error response", "error", err)
		}
	}
}
