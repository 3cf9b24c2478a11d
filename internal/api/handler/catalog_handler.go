package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/realto/plots-api/internal/core/domain"
	"github.com/realto/plots-api/internal/core/ports"
)

// CatalogHandler serves projects and plots.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListProjects handles GET /v1/projects.
//
// @Summary      List projects
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        q     query     string  false  "Search term (name, description)"
// @Param        city  query     string  false  "City filter"  Enums(All, Chennai, Bangalore, Hyderabad, Kochi, Coimbatore)
// @Success      200   {object}  listResponse{items=[]domain.Project}
// @Failure      400   {object}  errorResponse
// @Router       /v1/projects [get]
func (h *CatalogHandler) ListProjects(c echo.Context) error {
	projects, err := h.catalog.ListProjects(c.Request().Context(), listQuery(c, "city"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newList(projects))
}

// ListProjectPlots handles GET /v1/projects/:id/plots.
//
// @Summary      List the plots of a project
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string  true   "Project id"
// @Param        q       query     string  false  "Search term (title, location, plot number)"
// @Param        filter  query     string  false  "Plot type filter"  Enums(All, Residential, Commercial, Farm Land)
// @Success      200     {object}  listResponse{items=[]domain.Plot}
// @Failure      404     {object}  errorResponse
// @Router       /v1/projects/{id}/plots [get]
func (h *CatalogHandler) ListProjectPlots(c echo.Context) error {
	plots, err := h.catalog.ListProjectPlots(c.Request().Context(), c.Param("id"), listQuery(c, "filter"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newList(plots))
}

// ListOwnedPlots handles GET /v1/plots, the client's MyPlot screen.
//
// @Summary      List the caller's plots
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        q       query     string  false  "Search term (title, location, plot number)"
// @Param        filter  query     string  false  "Plot type filter"  Enums(All, Residential, Commercial, Farm Land)
// @Success      200     {object}  listResponse{items=[]domain.Plot}
// @Failure      400     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Router       /v1/plots [get]
func (h *CatalogHandler) ListOwnedPlots(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	plots, err := h.catalog.ListOwnedPlots(c.Request().Context(), sess.ActorID, listQuery(c, "filter"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newList(plots))
}

// GetPlot handles GET /v1/plots/:id.
//
// @Summary      Get a plot
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Plot id"
// @Success      200  {object}  domain.Plot
// @Failure      404  {object}  errorResponse
// @Router       /v1/plots/{id} [get]
func (h *CatalogHandler) GetPlot(c echo.Context) error {
	plot, err := h.catalog.GetPlot(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plot)
}

// Filters handles GET /v1/filters.
//
// @Summary      Enumerated filter sets
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  filtersResponse
// @Router       /v1/filters [get]
func (h *CatalogHandler) Filters(c echo.Context) error {
	return c.JSON(http.StatusOK, filtersResponse{
		Plots:    domain.PlotFilters,
		Cities:   domain.ProjectCities,
		Statuses: domain.VisitStatusSet,
	})
}
