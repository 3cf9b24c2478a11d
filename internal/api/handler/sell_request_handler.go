package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/realto/plots-api/internal/api/metrics"
	"github.com/realto/plots-api/internal/core/ports"
)

type SellRequestHandler struct {
	requests ports.SellRequestService
}

func NewSellRequestHandler(requests ports.SellRequestService) *SellRequestHandler {
	return &SellRequestHandler{requests: requests}
}

// Submit handles POST /v1/sell-requests.
//
// @Summary      Ask the agency to resell an owned plot
// @Tags         sell-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sellRequestRequest  true  "Sell form"
// @Success      201   {object}  domain.SellRequest
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/sell-requests [post]
func (h *SellRequestHandler) Submit(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req sellRequestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	r, err := h.requests.Submit(c.Request().Context(), sess, ports.SellRequestInput{
		PlotID:          req.PlotID,
		AskingPrice:     req.AskingPrice,
		Reason:          req.Reason,
		Urgency:         req.Urgency,
		AgentAssistance: req.AgentAssistance,
		TermsAccepted:   req.TermsAccepted,
	})
	if err != nil {
		return err
	}
	metrics.SellRequestsTotal.WithLabelValues(r.Urgency).Inc()
	return c.JSON(http.StatusCreated, r)
}

// List handles GET /v1/sell-requests.
//
// @Summary      List the caller's sell requests
// @Tags         sell-requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listResponse{items=[]domain.SellRequest}
// @Router       /v1/sell-requests [get]
func (h *SellRequestHandler) List(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	list, err := h.requests.List(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newList(list))
}
