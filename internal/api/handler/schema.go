package handler

import (
	"github.com/realto/plots-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Session ---

type selectRoleRequest struct {
	Role string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"     validate:"required"`
	Phone    string `json:"phone"    validate:"omitempty,phone10"`
	Role     string `json:"role"     validate:"required,oneof=client manager"`
}

type sessionGrantResponse struct {
	InstanceID string          `json:"instance_id"`
	Session    *domain.Session `json:"session"`
	Token      string          `json:"token"`
	Route      string          `json:"route"`
}

type sessionStateResponse struct {
	Authenticated bool            `json:"authenticated"`
	Session       *domain.Session `json:"session,omitempty"`
	Route         string          `json:"route"`
}

type routeResponse struct {
	Route string `json:"route"`
}

type userResponse struct {
	User *domain.User `json:"user"`
}

// --- Lists ---

type listResponse struct {
	Items any `json:"items"`
	Count int `json:"count"`
}

type filtersResponse struct {
	Plots    []string `json:"plots"`
	Cities   []string `json:"cities"`
	Statuses []string `json:"statuses"`
}

// --- Site visits ---

type bookVisitRequest struct {
	PlotID   string `json:"plot_id"   validate:"required"`
	Name     string `json:"name"      validate:"required"`
	Email    string `json:"email"     validate:"omitempty,email"`
	Phone    string `json:"phone"     validate:"required,phone10"`
	Date     string `json:"date"      validate:"required,notpast"`
	TimeSlot string `json:"time_slot" validate:"required"`
	Message  string `json:"message"`
}

type visitStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Completed Cancelled"`
}

type feedbackRequest struct {
	Rating               int    `json:"rating"                 validate:"required,min=1,max=5"`
	Experience           string `json:"experience"`
	Suggestions          string `json:"suggestions"`
	InterestedInPurchase *bool  `json:"interested_in_purchase"`
}

type visitResponse struct {
	*domain.SiteVisit
	QRRoute string `json:"qr_route"`
}

// --- Sell requests ---

type sellRequestRequest struct {
	PlotID          string `json:"plot_id"  validate:"required"`
	AskingPrice     string `json:"asking_price"`
	Reason          string `json:"reason"`
	Urgency         string `json:"urgency"  validate:"omitempty,oneof=low normal high"`
	AgentAssistance bool   `json:"agent_assistance"`
	TermsAccepted   bool   `json:"terms_accepted"`
}

// --- Attendance ---

type attendanceRequest struct {
	Lat *float64 `json:"lat" validate:"required,latitude"`
	Lng *float64 `json:"lng" validate:"required,longitude"`
}
