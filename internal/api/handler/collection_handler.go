package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/realto/plots-api/internal/api/metrics"
	"github.com/realto/plots-api/internal/core/domain"
	"github.com/realto/plots-api/internal/core/ports"
)

const maxRecordBytes = 64 << 10

// CollectionHandler serves the device-local Persisted Collections. The
// owner of a collection is the calling instance.
type CollectionHandler struct {
	collections map[domain.CollectionName]ports.CollectionService
}

func NewCollectionHandler(collections ...ports.CollectionService) *CollectionHandler {
	m := make(map[domain.CollectionName]ports.CollectionService, len(collections))
	for _, col := range collections {
		m[col.Name()] = col
	}
	return &CollectionHandler{collections: m}
}

func (h *CollectionHandler) lookup(c echo.Context) (ports.CollectionService, string, error) {
	iid, err := ctxInstance(c)
	if err != nil {
		return nil, "", err
	}
	name, err := domain.ParseCollection(c.Param("name"))
	if err != nil {
		return nil, "", err
	}
	col, ok := h.collections[name]
	if !ok {
		return nil, "", domain.ErrUnknownCollection
	}
	return col, iid, nil
}

func (h *CollectionHandler) respond(c echo.Context, status int, v *ports.CollectionView) error {
	if v.Notice != "" {
		metrics.CollectionNoticesTotal.WithLabelValues(string(v.Name)).Inc()
	}
	return c.JSON(status, v)
}

// List handles GET /v1/collections/:name.
//
// @Summary      Load a collection
// @Description  A collection that was never written starts from its defaults. Storage problems are reported in notice.
// @Tags         collections
// @Produce      json
// @Param        X-Instance-ID  header    string  true   "App instance id"
// @Param        name           path      string  true   "Collection"  Enums(wishlist, savedLocations)
// @Param        q              query     string  false  "Search term (name, address)"
// @Success      200            {object}  ports.CollectionView
// @Failure      404            {object}  errorResponse
// @Router       /v1/collections/{name} [get]
func (h *CollectionHandler) List(c echo.Context) error {
	col, iid, err := h.lookup(c)
	if err != nil {
		return err
	}
	v, err := col.Search(c.Request().Context(), iid, listQuery(c, ""))
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusOK, v)
}

// Add handles POST /v1/collections/:name.
//
// @Summary      Add a record to a collection
// @Tags         collections
// @Accept       json
// @Produce      json
// @Param        X-Instance-ID  header    string  true  "App instance id"
// @Param        name           path      string  true  "Collection"  Enums(wishlist, savedLocations)
// @Param        body           body      domain.SavedLocation  true  "Record"
// @Success      201            {object}  ports.CollectionView
// @Failure      400            {object}  errorResponse
// @Failure      409            {object}  errorResponse
// @Failure      503            {object}  errorResponse
// @Router       /v1/collections/{name} [post]
func (h *CollectionHandler) Add(c echo.Context) error {
	col, iid, err := h.lookup(c)
	if err != nil {
		return err
	}
	raw, err := io.ReadAll(io.LimitReader(c.Request().Body, maxRecordBytes))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	v, err := col.Add(c.Request().Context(), iid, raw)
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusCreated, v)
}

// Remove handles DELETE /v1/collections/:name/:id.
//
// @Summary      Remove a record from a collection
// @Tags         collections
// @Produce      json
// @Param        X-Instance-ID  header    string  true  "App instance id"
// @Param        name           path      string  true  "Collection"  Enums(wishlist, savedLocations)
// @Param        id             path      string  true  "Record id"
// @Success      200            {object}  ports.CollectionView
// @Failure      404            {object}  errorResponse
// @Failure      503            {object}  errorResponse
// @Router       /v1/collections/{name}/{id} [delete]
func (h *CollectionHandler) Remove(c echo.Context) error {
	col, iid, err := h.lookup(c)
	if err != nil {
		return err
	}
	v, err := col.Remove(c.Request().Context(), iid, c.Param("id"))
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusOK, v)
}
