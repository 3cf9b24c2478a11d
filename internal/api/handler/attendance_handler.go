package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/realto/plots-api/internal/api/metrics"
	"github.com/realto/plots-api/internal/core/domain"
	"github.com/realto/plots-api/internal/core/ports"
)

type AttendanceHandler struct {
	attendance ports.AttendanceService
}

func NewAttendanceHandler(attendance ports.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

// Mark handles POST /v1/attendance.
//
// @Summary      Mark today's attendance at a project site
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      attendanceRequest  true  "Current position"
// @Success      201   {object}  domain.Attendance
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/attendance [post]
func (h *AttendanceHandler) Mark(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req attendanceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	a, err := h.attendance.Mark(c.Request().Context(), sess, domain.Coordinates{Lat: *req.Lat, Lng: *req.Lng})
	switch {
	case errors.Is(err, domain.ErrOutsideSite):
		metrics.AttendanceTotal.WithLabelValues("outside_site").Inc()
	case errors.Is(err, domain.ErrAttendanceMarked):
		metrics.AttendanceTotal.WithLabelValues("duplicate").Inc()
	}
	if err != nil {
		return err
	}
	metrics.AttendanceTotal.WithLabelValues("marked").Inc()
	return c.JSON(http.StatusCreated, a)
}
