// Command api serves the plots HTTP API.
//
//	@title						Realto Plots API
//	@version					1.0
//	@description				Sessions, catalog, site visits, sell requests, attendance and device-local collections for the plots app.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	_ "github.com/realto/plots-api/docs"
	"github.com/realto/plots-api/internal/api"
	"github.com/realto/plots-api/internal/api/handler"
	"github.com/realto/plots-api/internal/api/metrics"
	"github.com/realto/plots-api/internal/core/domain"
	"github.com/realto/plots-api/internal/core/ports"
	"github.com/realto/plots-api/internal/core/query"
	"github.com/realto/plots-api/internal/core/service"
	"github.com/realto/plots-api/internal/infrastructure/db/memory"
	mongodb "github.com/realto/plots-api/internal/infrastructure/db/mongo"
	redisdb "github.com/realto/plots-api/internal/infrastructure/db/redis"
	"github.com/realto/plots-api/internal/infrastructure/queue"
	"github.com/realto/plots-api/internal/infrastructure/seed"
	"github.com/realto/plots-api/internal/pkg/config"
	"github.com/realto/plots-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	logger.Init(logger.ForEnv(cfg.Env, cfg.LogLevel))
	log := logger.Component("main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	root := logger.Get()

	// --- MongoDB: catalog and records ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	plots := mongodb.NewPlotRepository(db)
	projects := mongodb.NewProjectRepository(db)
	visits := mongodb.NewVisitRepository(db)
	sellRequests := mongodb.NewSellRequestRepository(db)
	attendance := mongodb.NewAttendanceRepository(db)
	users := mongodb.NewAuthRepository(db)

	if err := mongodb.EnsureIndexes(ctx, plots, projects, visits, sellRequests, attendance, users); err != nil {
		return err
	}

	catalog, err := seed.Default()
	if err != nil {
		return err
	}
	if cfg.SeedCatalog {
		if err := seed.Apply(ctx, catalog, projects, plots, logger.Component("seed")); err != nil {
			return err
		}
	}

	probes := map[string]handler.Probe{
		"mongodb": func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
	}

	// --- Session and collection storage ---
	var (
		sessionStore    ports.SessionStore
		collectionStore ports.CollectionStore
	)
	switch cfg.StorageDriver {
	case config.DriverMemory:
		log.Warn().Msg("memory storage driver: sessions and collections are lost on restart")
		sessionStore = memory.NewSessionStore()
		collectionStore = memory.NewCollectionStore()
	default:
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer rdb.Close()
		sessionStore = redisdb.NewSessionStore(rdb, cfg.SessionTTL)
		collectionStore = redisdb.NewCollectionStore(rdb)
		probes["redis"] = func(ctx context.Context) error { return redisdb.Ping(ctx, rdb, 0) }
	}

	var writer ports.CollectionWriter
	if cfg.Collections.AsyncWrites {
		dispatcher := queue.NewDispatcher(cfg.Collections.Workers, collectionStore, logger.Component("dispatcher"))
		dispatcher.Start(ctx)
		defer dispatcher.Stop()
		// Reads go through the dispatcher too so they see queued writes.
		collectionStore = dispatcher
		writer = dispatcher
	}

	// --- Core services ---
	authService := service.NewAuthService(users, root)
	sessions := service.NewSessionService(sessionStore, authService, cfg.JWTSecret, cfg.SessionTTL, root, metrics.SessionObserver{})

	wishlist := service.NewCollectionService(domain.CollectionWishlist, catalog.Wishlist, query.Wishlist, collectionStore, writer, root)
	saved := service.NewCollectionService(domain.CollectionSavedLocations, catalog.SavedLocations, query.SavedLocations, collectionStore, writer, root)

	router := api.NewRouter(api.Services{
		Sessions:     sessions,
		Auth:         authService,
		Catalog:      service.NewCatalogService(plots, projects, root),
		Visits:       service.NewVisitService(visits, plots, root),
		SellRequests: service.NewSellRequestService(sellRequests, plots, root),
		Attendance:   service.NewAttendanceService(attendance, projects, cfg.Attendance.RadiusM, root),
		Collections:  []ports.CollectionService{service.Erase(wishlist), service.Erase(saved)},
		Probes:       probes,
	}, api.Options{
		JWTSecret: cfg.JWTSecret,
		Log:       root,
		Metrics:   true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Str("storage", cfg.StorageDriver).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
