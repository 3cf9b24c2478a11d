package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/realto/plots-api/internal/api/metrics"
	"github.com/realto/plots-api/internal/core/domain"
	"github.com/realto/plots-api/internal/core/ports"
)

// VisitHandler handles site visit booking and follow-up.
type VisitHandler struct {
	visits ports.VisitService
}

func NewVisitHandler(visits ports.VisitService) *VisitHandler {
	return &VisitHandler{visits: visits}
}

// Book handles POST /v1/site-visits.
//
// @Summary      Book a site visit
// @Tags         site-visits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bookVisitRequest  true  "Booking form"
// @Success      201   {object}  visitResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/site-visits [post]
func (h *VisitHandler) Book(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req bookVisitRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	v, err := h.visits.Book(c.Request().Context(), sess, ports.BookVisitInput{
		PlotID:   req.PlotID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Date:     req.Date,
		TimeSlot: req.TimeSlot,
		Message:  req.Message,
	})
	if err != nil {
		return err
	}

	metrics.SiteVisitsTotal.WithLabelValues("booked").Inc()
	c.Response().Header().Set(echo.HeaderLocation, "/v1/site-visits/"+v.ID)
	return c.JSON(http.StatusCreated, toVisitResponse(v))
}

// List handles GET /v1/site-visits.
//
// @Summary      List site visits
// @Description  Managers see every visit; other roles see their own.
// @Tags         site-visits
// @Produce      json
// @Security     BearerAuth
// @Param        q       query     string  false  "Search term (project name, plot number)"
// @Param        status  query     string  false  "Status filter"  Enums(All, Upcoming, Completed, Cancelled)
// @Success      200     {object}  listResponse{items=[]visitResponse}
// @Failure      400     {object}  errorResponse
// @Router       /v1/site-visits [get]
func (h *VisitHandler) List(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	visits, err := h.visits.List(c.Request().Context(), sess, listQuery(c, "status"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newList(toVisitResponses(visits)))
}

// Approve handles PUT /v1/site-visits/:id/approve.
//
// @Summary      Approve an upcoming visit
// @Tags         site-visits
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Visit id"
// @Success      200  {object}  visitResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/site-visits/{id}/approve [put]
func (h *VisitHandler) Approve(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	v, err := h.visits.Approve(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return err
	}
	metrics.SiteVisitsTotal.WithLabelValues("approved").Inc()
	return c.JSON(http.StatusOK, toVisitResponse(v))
}

// UpdateStatus handles PUT /v1/site-visits/:id/status.
//
// @Summary      Complete or cancel a visit
// @Tags         site-visits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Visit id"
// @Param        body  body      visitStatusRequest  true  "New status"
// @Success      200   {object}  visitResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/site-visits/{id}/status [put]
func (h *VisitHandler) UpdateStatus(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req visitStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	status := domain.VisitStatus(req.Status)
	v, err := h.visits.UpdateStatus(c.Request().Context(), sess, c.Param("id"), status)
	if err != nil {
		return err
	}
	if status == domain.VisitCompleted {
		metrics.SiteVisitsTotal.WithLabelValues("completed").Inc()
	} else {
		metrics.SiteVisitsTotal.WithLabelValues("cancelled").Inc()
	}
	return c.JSON(http.StatusOK, toVisitResponse(v))
}

// SubmitFeedback handles POST /v1/site-visits/:id/feedback.
//
// @Summary      Leave feedback on a completed visit
// @Tags         site-visits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Visit id"
// @Param        body  body      feedbackRequest  true  "Feedback form"
// @Success      200   {object}  visitResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/site-visits/{id}/feedback [post]
func (h *VisitHandler) SubmitFeedback(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req feedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Rating == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Please provide a rating")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	v, err := h.visits.SubmitFeedback(c.Request().Context(), sess, c.Param("id"), ports.FeedbackInput{
		Rating:               req.Rating,
		Experience:           req.Experience,
		Suggestions:          req.Suggestions,
		InterestedInPurchase: req.InterestedInPurchase,
	})
	if err != nil {
		return err
	}
	metrics.SiteVisitsTotal.WithLabelValues("feedback").Inc()
	return c.JSON(http.StatusOK, toVisitResponse(v))
}
