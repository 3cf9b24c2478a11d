package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Instance requires the X-Instance-ID header and stores it under
// KeyInstanceID.
func Instance() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			iid := strings.TrimSpace(c.Request().Header.Get(HeaderInstanceID))
			if iid == "" {
				return echo.NewHTTPError(http.StatusBadRequest, "missing "+HeaderInstanceID+" header")
			}
			c.Set(KeyInstanceID, iid)
			return next(c)
		}
	}
}
