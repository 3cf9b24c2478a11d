package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/realto/plots-api/internal/core/domain"
	"github.com/realto/plots-api/internal/core/query"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// A collection that could not be read must not be overwritten.
	var se *domain.StorageError
	if errors.As(err, &se) {
		log.Warn().Err(se.Err).Str("op", se.Op).Str("key", se.Key).Msg("storage unavailable")
		return http.StatusServiceUnavailable, "storage temporarily unavailable"
	}

	switch {
	case errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, query.ErrUnknownFilter):
		return http.StatusBadRequest, err.Error()

	case errors.Is(err, domain.ErrNoSession),
		errors.Is(err, domain.ErrSessionRevoked):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"

	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"

	case errors.Is(err, domain.ErrUnknownCollection),
		errors.Is(err, domain.ErrRecordNotFound),
		errors.Is(err, domain.ErrPlotNotFound),
		errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrVisitNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, err.Error()

	case errors.Is(err, domain.ErrDuplicateRecord),
		errors.Is(err, domain.ErrUserExists),
		errors.Is(err, domain.ErrAttendanceMarked):
		return http.StatusConflict, err.Error()

	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrFeedbackNotAllowed),
		errors.Is(err, domain.ErrOutsideSite):
		return http.StatusUnprocessableEntity, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
