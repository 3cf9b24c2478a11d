package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/realto/plots-api/internal/api/middleware"
	"github.com/realto/plots-api/internal/core/domain"
	"github.com/realto/plots-api/internal/core/ports"
	"github.com/realto/plots-api/internal/core/query"
)

type stubVisitService struct {
	booked *ports.BookVisitInput
}

func (s *stubVisitService) Book(_ context.Context, actor *domain.Session, in ports.BookVisitInput) (*domain.SiteVisit, error) {
	s.booked = &in
	return &domain.SiteVisit{ID: "v-1", PlotID: in.PlotID, VisitorID: actor.ActorID, Status: domain.VisitUpcoming}, nil
}

func (s *stubVisitService) List(context.Context, *domain.Session, query.Query) ([]domain.SiteVisit, error) {
	return nil, nil
}

func (s *stubVisitService) Approve(context.Context, *domain.Session, string) (*domain.SiteVisit, error) {
	return nil, nil
}

func (s *stubVisitService) UpdateStatus(context.Context, *domain.Session, string, domain.VisitStatus) (*domain.SiteVisit, error) {
	return nil, nil
}

func (s *stubVisitService) SubmitFeedback(context.Context, *domain.Session, string, ports.FeedbackInput) (*domain.SiteVisit, error) {
	return nil, nil
}

func TestVisitHandler_Book(t *testing.T) {
	e := newEcho()
	stub := &stubVisitService{}
	h := NewVisitHandler(stub)

	rec := httptest.NewRecorder()
	req := jsonRequest(http.MethodPost, "/v1/site-visits",
		`{"plot_id":"1-1","name":"Asha","phone":"9876543210","date":"2025-02-10","time_slot":"10:00 AM"}`)
	c := e.NewContext(req, rec)
	c.Set(middleware.KeySession, &domain.Session{ActorID: "guest-001", Role: domain.RoleGuest})

	if err := h.Book(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if stub.booked == nil || stub.booked.PlotID != "1-1" {
		t.Fatalf("service not called with the form: %+v", stub.booked)
	}
	if loc := rec.Header().Get("Location"); loc != "/v1/site-visits/v-1" {
		t.Fatalf("unexpected Location %q", loc)
	}
}

func TestVisitHandler_Book_Validation(t *testing.T) {
	bodies := map[string]string{
		"short phone":  `{"plot_id":"1","name":"A","phone":"12345","date":"2025-02-12","time_slot":"10:00 AM"}`,
		"past date":    `{"plot_id":"1","name":"A","phone":"9876543210","date":"2025-02-09","time_slot":"10:00 AM"}`,
		"missing slot": `{"plot_id":"1","name":"A","phone":"9876543210","date":"2025-02-12"}`,
		"bad email":    `{"plot_id":"1","name":"A","email":"x","phone":"9876543210","date":"2025-02-12","time_slot":"10:00 AM"}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			e := newEcho()
			stub := &stubVisitService{}
			h := NewVisitHandler(stub)

			rec := httptest.NewRecorder()
			c := e.NewContext(jsonRequest(http.MethodPost, "/v1/site-visits", body), rec)
			c.Set(middleware.KeySession, &domain.Session{ActorID: "guest-001", Role: domain.RoleGuest})

			err := h.Book(c)
			e.HTTPErrorHandler(err, c)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if stub.booked != nil {
				t.Fatal("service must not be called")
			}
		})
	}
}

func TestVisitHandler_Feedback_RequiresRating(t *testing.T) {
	e := newEcho()
	h := NewVisitHandler(&stubVisitService{})

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/v1/site-visits/v-1/feedback", `{"experience":"ok"}`), rec)
	c.Set(middleware.KeySession, &domain.Session{ActorID: "guest-001", Role: domain.RoleGuest})
	c.SetParamNames("id")
	c.SetParamValues("v-1")

	err := h.SubmitFeedback(c)
	e.HTTPErrorHandler(err, c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Please provide a rating") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestVisitHandler_MissingSession(t *testing.T) {
	e := newEcho()
	h := NewVisitHandler(&stubVisitService{})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/site-visits", nil), rec)

	err := h.List(c)
	e.HTTPErrorHandler(err, c)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
