package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/realto/plots-api/internal/core/domain"
	"github.com/realto/plots-api/internal/core/service"
)

// Context keys set by the middlewares in this package.
const (
	KeySession    = "session"
	KeyRole       = "role"
	KeyInstanceID = "instance_id"
)

// HeaderInstanceID identifies the calling app instance.
const HeaderInstanceID = "X-Instance-ID"

// SessionVerifier reports whether a session is still the current one for
// its instance.
type SessionVerifier interface {
	Verify(ctx context.Context, instanceID, sessionID string) error
}

// Auth validates the bearer token, checks that its Session has not been
// replaced or cleared, and injects the Session into the context.
func Auth(jwtSecret string, sessions SessionVerifier) echo.MiddlewareFunc {
	secret := []byte(jwtSecret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := service.ParseToken(secret, parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			sess := claims.Session()

			if iid := c.Request().Header.Get(HeaderInstanceID); iid != "" && iid != sess.InstanceID {
				return echo.NewHTTPError(http.StatusUnauthorized, "token belongs to another instance")
			}

			if err := sessions.Verify(c.Request().Context(), sess.InstanceID, sess.ID); err != nil {
				if errors.Is(err, domain.ErrSessionRevoked) {
					return echo.NewHTTPError(http.StatusUnauthorized, "session ended")
				}
				return err
			}

			c.Set(KeySession, sess)
			c.Set(KeyRole, sess.Role.String())
			c.Set(KeyInstanceID, sess.InstanceID)

			return next(c)
		}
	}
}
