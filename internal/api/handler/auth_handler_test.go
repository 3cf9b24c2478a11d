package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/realto/plots-api/internal/api/middleware"
	"github.com/realto/plots-api/internal/core/domain"
	"github.com/realto/plots-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Authenticate(context.Context, string, string) (*domain.User, error) {
	return nil, domain.ErrInvalidCredentials
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator(func() time.Time { return fixedNow })
	return e
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			if in.Email != "ravi@example.com" || in.Role != "client" || in.Phone != "9876543210" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: "u-1", Email: in.Email, Name: in.Name, Role: domain.RoleClient, PasswordHash: "hash"}, nil
		},
	}
	h := NewAuthHandler(stub, &stubSessionService{})

	req := jsonRequest(http.MethodPost, "/v1/auth/register",
		`{"email":"ravi@example.com","password":"secret1","name":"Ravi","phone":"9876543210","role":"client"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["user"]["email"] != "ravi@example.com" || resp["user"]["role"] != "client" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
	if _, leaked := resp["user"]["PasswordHash"]; leaked {
		t.Fatal("password hash must not be serialised")
	}
}

func TestAuthHandler_Register_Invalid(t *testing.T) {
	bodies := map[string]string{
		"not json":       "not-json",
		"bad email":      `{"email":"nope","password":"secret1","name":"A","role":"client"}`,
		"short password": `{"email":"a@b.co","password":"123","name":"A","role":"client"}`,
		"guest role":     `{"email":"a@b.co","password":"secret1","name":"A","role":"guest"}`,
		"bad phone":      `{"email":"a@b.co","password":"secret1","name":"A","role":"client","phone":"12345"}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			e := newEcho()
			stub := &stubAuthService{
				registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
					t.Fatalf("should not be called")
					return nil, nil
				},
			}
			h := NewAuthHandler(stub, &stubSessionService{})

			rec := httptest.NewRecorder()
			c := e.NewContext(jsonRequest(http.MethodPost, "/v1/auth/register", body), rec)

			err := h.Register(c)
			e.HTTPErrorHandler(err, c)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	e := newEcho()
	sessions := &stubSessionService{
		signInFn: func(_ context.Context, iid, email, password string) (*ports.SessionGrant, error) {
			if iid != "device-1" || email != "m@realto.in" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s %s", iid, email, password)
			}
			s := &domain.Session{ID: "s-1", InstanceID: iid, ActorID: "u-1", Role: domain.RoleManager}
			return &ports.SessionGrant{Session: s, Token: "tok", Route: domain.RouteManagerHome}, nil
		},
	}
	h := NewAuthHandler(&stubAuthService{}, sessions)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/v1/auth/login", `{"email":"m@realto.in","password":"secret1"}`), rec)
	c.Set(middleware.KeyInstanceID, "device-1")

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp sessionGrantResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "tok" || resp.Route != domain.RouteManagerHome || resp.InstanceID != "device-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Login_ShortPassword(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{}, &stubSessionService{})

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/v1/auth/login", `{"email":"m@realto.in","password":"12345"}`), rec)
	c.Set(middleware.KeyInstanceID, "device-1")

	err := h.Login(c)
	e.HTTPErrorHandler(err, c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
