package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/realto/plots-api/internal/api/handler"
	"github.com/realto/plots-api/internal/api/middleware"
	"github.com/realto/plots-api/internal/core/domain"
	"github.com/realto/plots-api/internal/core/ports"
)

// Services are the core ports the HTTP layer drives.
type Services struct {
	Sessions     ports.SessionService
	Auth         ports.AuthService
	Catalog      ports.CatalogService
	Visits       ports.VisitService
	SellRequests ports.SellRequestService
	Attendance   ports.AttendanceService
	Collections  []ports.CollectionService

	// Probes are checked by /health/ready, keyed by dependency name.
	Probes map[string]handler.Probe
}

type Options struct {
	JWTSecret string
	Log       zerolog.Logger
	// Now is the clock used by request validation; nil means time.Now.
	Now func() time.Time
	// Metrics mounts the Prometheus middleware and /metrics.
	Metrics bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Log)
	e.Validator = handler.NewValidator(opts.Now)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(opts.Log))
	if opts.Metrics {
		e.Use(echoprometheus.NewMiddleware("realto"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	// --- Health probes and docs (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(svc.Probes).Readiness)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	sessionHandler := handler.NewSessionHandler(svc.Sessions)
	authHandler := handler.NewAuthHandler(svc.Auth, svc.Sessions)
	catalogHandler := handler.NewCatalogHandler(svc.Catalog)
	visitHandler := handler.NewVisitHandler(svc.Visits)
	sellHandler := handler.NewSellRequestHandler(svc.SellRequests)
	attendanceHandler := handler.NewAttendanceHandler(svc.Attendance)
	collectionHandler := handler.NewCollectionHandler(svc.Collections...)

	instance := middleware.Instance()
	auth := middleware.Auth(opts.JWTSecret, svc.Sessions)

	v1 := e.Group("/v1")
	v1.GET("/filters", catalogHandler.Filters)

	// --- Session lifecycle ---
	v1.POST("/session/role", sessionHandler.SelectRole)
	v1.GET("/session", sessionHandler.Current, instance)
	v1.POST("/session/logout", sessionHandler.Logout, instance)
	v1.POST("/auth/login", authHandler.Login, instance)

	// --- Device-local collections ---
	v1.GET("/collections/:name", collectionHandler.List, instance)
	v1.POST("/collections/:name", collectionHandler.Add, instance)
	v1.DELETE("/collections/:name/:id", collectionHandler.Remove, instance)

	// --- Authenticated routes ---
	// Middleware stays per route so unknown /v1 paths still answer 404.
	managers := middleware.RBAC(domain.RoleManager)
	clients := middleware.RBAC(domain.RoleClient)
	visitors := middleware.RBAC(domain.RoleGuest, domain.RoleClient)

	v1.POST("/auth/register", authHandler.Register, auth, managers)

	v1.GET("/projects", catalogHandler.ListProjects, auth)
	v1.GET("/projects/:id/plots", catalogHandler.ListProjectPlots, auth)
	v1.GET("/plots", catalogHandler.ListOwnedPlots, auth, clients)
	v1.GET("/plots/:id", catalogHandler.GetPlot, auth)

	v1.POST("/site-visits", visitHandler.Book, auth, visitors)
	v1.GET("/site-visits", visitHandler.List, auth)
	v1.PUT("/site-visits/:id/approve", visitHandler.Approve, auth, managers)
	v1.PUT("/site-visits/:id/status", visitHandler.UpdateStatus, auth, managers)
	v1.POST("/site-visits/:id/feedback", visitHandler.SubmitFeedback, auth, visitors)

	v1.POST("/sell-requests", sellHandler.Submit, auth, clients)
	v1.GET("/sell-requests", sellHandler.List, auth, clients)

	v1.POST("/attendance", attendanceHandler.Mark, auth, managers)

	return e
}
