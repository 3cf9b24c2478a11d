package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/realto/plots-api/internal/api/middleware"
	"github.com/realto/plots-api/internal/core/domain"
	"github.com/realto/plots-api/internal/core/query"
)

// ctxSession returns the Session injected by the Auth middleware. A missing
// Session means the route was wired without Auth; reject with 401.
func ctxSession(c echo.Context) (*domain.Session, error) {
	sess, ok := c.Get(middleware.KeySession).(*domain.Session)
	if !ok || sess == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return sess, nil
}

// ctxInstance returns the instance id set by the Instance or Auth middleware.
func ctxInstance(c echo.Context) (string, error) {
	iid, _ := c.Get(middleware.KeyInstanceID).(string)
	if iid == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "missing "+middleware.HeaderInstanceID+" header")
	}
	return iid, nil
}

// listQuery reads the search term from ?q= and the filter from ?<filterParam>=.
func listQuery(c echo.Context, filterParam string) query.Query {
	q := query.Query{Term: c.QueryParam("q")}
	if filterParam != "" {
		q.Filter = strings.TrimSpace(c.QueryParam(filterParam))
	}
	return q
}

// bindAndValidate decodes the request body into req and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
