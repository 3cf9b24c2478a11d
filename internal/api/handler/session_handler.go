package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/realto/plots-api/internal/api/middleware"
	"github.com/realto/plots-api/internal/core/domain"
	"github.com/realto/plots-api/internal/core/ports"
)

// SessionHandler exposes the Session lifecycle of an app instance.
type SessionHandler struct {
	sessions ports.SessionService
}

func NewSessionHandler(sessions ports.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// SelectRole handles POST /v1/session/role.
//
// @Summary      Select a role and open a demo Session
// @Description  Replaces the instance's Session. A new instance id is issued when X-Instance-ID is absent.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        X-Instance-ID  header    string             false  "App instance id"
// @Param        body           body      selectRoleRequest  true   "Role to select"
// @Success      200            {object}  sessionGrantResponse
// @Failure      400            {object}  errorResponse
// @Failure      500            {object}  errorResponse
// @Router       /v1/session/role [post]
func (h *SessionHandler) SelectRole(c echo.Context) error {
	var req selectRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	iid := strings.TrimSpace(c.Request().Header.Get(middleware.HeaderInstanceID))
	if iid == "" {
		iid = uuid.NewString()
	}

	grant, err := h.sessions.SelectRole(c.Request().Context(), iid, req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toGrantResponse(grant))
}

// Current handles GET /v1/session.
//
// @Summary      Current Session of the instance
// @Tags         session
// @Produce      json
// @Param        X-Instance-ID  header    string  true  "App instance id"
// @Success      200            {object}  sessionStateResponse
// @Failure      400            {object}  errorResponse
// @Router       /v1/session [get]
func (h *SessionHandler) Current(c echo.Context) error {
	iid, err := ctxInstance(c)
	if err != nil {
		return err
	}

	sess, err := h.sessions.Current(c.Request().Context(), iid)
	if errors.Is(err, domain.ErrNoSession) {
		return c.JSON(http.StatusOK, sessionStateResponse{Route: domain.RouteRoleSelect})
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionStateResponse{
		Authenticated: true,
		Session:       sess,
		Route:         sess.Role.HomeRoute(),
	})
}

// Logout handles POST /v1/session/logout. It succeeds with or without a Session.
//
// @Summary      Clear the instance's Session
// @Tags         session
// @Produce      json
// @Param        X-Instance-ID  header    string  true  "App instance id"
// @Success      200            {object}  routeResponse
// @Failure      400            {object}  errorResponse
// @Router       /v1/session/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	iid, err := ctxInstance(c)
	if err != nil {
		return err
	}

	route, err := h.sessions.Logout(c.Request().Context(), iid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, routeResponse{Route: route})
}
