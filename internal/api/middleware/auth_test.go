package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/realto/plots-api/internal/core/domain"
	"github.com/realto/plots-api/internal/core/service"
)

type stubVerifier struct {
	current map[string]string
}

func (v *stubVerifier) Verify(_ context.Context, instanceID, sessionID string) error {
	if v.current[instanceID] != sessionID {
		return domain.ErrSessionRevoked
	}
	return nil
}

func signedToken(t *testing.T, secret string, s *domain.Session) string {
	t.Helper()
	tok, err := service.IssueToken([]byte(secret), s, time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

var demoManager = &domain.Session{
	ID:          "sess-1",
	InstanceID:  "device-1",
	ActorID:     "manager-001",
	Role:        domain.RoleManager,
	DisplayName: "Demo Manager",
	IssuedAt:    time.Now().UTC(),
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "secret", demoManager))
	req.Header.Set(HeaderInstanceID, "device-1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth("secret", &stubVerifier{current: map[string]string{"device-1": "sess-1"}})
	handler := mw(func(c echo.Context) error {
		called = true
		sess, ok := c.Get(KeySession).(*domain.Session)
		if !ok || sess.ActorID != "manager-001" {
			t.Fatalf("session not set: %+v", c.Get(KeySession))
		}
		if c.Get(KeyRole) != "manager" {
			t.Fatalf("role not set")
		}
		if c.Get(KeyInstanceID) != "device-1" {
			t.Fatalf("instance id not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	valid := map[string]string{"device-1": "sess-1"}

	tests := []struct {
		name     string
		header   string
		instance string
		current  map[string]string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "garbage token", header: "Bearer not-a-jwt", current: valid},
		{name: "wrong secret", header: "Bearer " + signedToken(t, "other", demoManager), current: valid},
		{name: "other instance", header: "Bearer " + signedToken(t, "secret", demoManager), instance: "device-2", current: valid},
		{name: "replaced session", header: "Bearer " + signedToken(t, "secret", demoManager), current: map[string]string{"device-1": "sess-2"}},
		{name: "logged out", header: "Bearer " + signedToken(t, "secret", demoManager), current: map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.instance != "" {
				req.Header.Set(HeaderInstanceID, tt.instance)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			mw := Auth("secret", &stubVerifier{current: tt.current})
			handler := mw(func(c echo.Context) error {
				t.Fatalf("should not reach next handler")
				return nil
			})

			err := handler(c)
			if err == nil {
				t.Fatalf("expected error")
			}
			e.HTTPErrorHandler(err, c)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestInstanceMiddleware(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := Instance()(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})(c)
	e.HTTPErrorHandler(err, c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderInstanceID, " device-9 ")
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	err = Instance()(func(c echo.Context) error {
		if c.Get(KeyInstanceID) != "device-9" {
			t.Fatalf("instance id not trimmed and set: %v", c.Get(KeyInstanceID))
		}
		return nil
	})(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
