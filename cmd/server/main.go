package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fleet-management/fleetboard/internal/api"
	"fleet-management/fleetboard/internal/config"
	"fleet-management/fleetboard/internal/db"
	"fleet-management/fleetboard/internal/logging"
	"fleet-management/fleetboard/internal/metrics"
	"fleet-management/fleetboard/internal/routes"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Fleetboard starting up",
		"environment", cfg.AppEnv,
		"db_driver", cfg.DBDriver,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	metricsReg := metrics.NewMetricsRegistry(prometheus.DefaultRegisterer)

	// Connect to DB with GORM
	orm, err := db.OpenORM(cfg)
	if err != nil {
		logging.Fatal("Failed to connect database (GORM)", "error", err.Error())
	}
	if err := db.RegisterMetricsCallbacks(orm, metricsReg); err != nil {
		logging.Fatal("Failed to register GORM metrics callbacks", "error", err.Error())
	}
	if cfg.AutoMigrate {
		if err := db.Migrate(orm); err != nil {
			logging.Fatal("Failed to migrate schema", "error", err.Error())
		}
		logging.Info("Schema migrated")
	}

	// Connect to DB with sqlx
	sqlxDB, err := db.OpenSQLX(cfg, orm)
	if err != nil {
		logging.Fatal("Failed to connect database (sqlx)", "error", err.Error())
	}
	logging.Info("Connected to database", "driver", cfg.DBDriver)

	deps, err := api.InitDependencies(orm, sqlxDB, metricsReg)
	if err != nil {
		logging.Fatal("Failed to initialize dependencies", "error", err.Error())
	}

	upSince := time.Now()
	router := routes.RegisterRoutes(cfg, deps, upSince)

	// Setup metrics endpoint outside of Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logging.Info("Server starting", "port", cfg.Port, "environment", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logging.Info("Shutting down server", "timeout", cfg.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return db.Close(orm, sqlxDB)
	})

	if err := g.Wait(); err != nil {
		logging.Error("Server stopped with error", "error", err.Error())
		os.Exit(1)
	}
	logging.Info("Server stopped")
}
