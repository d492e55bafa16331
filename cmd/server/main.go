package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"skyops/crewdeck/internal/api"
	"skyops/crewdeck/internal/config"
	"skyops/crewdeck/internal/db"
	"skyops/crewdeck/internal/logging"
	"skyops/crewdeck/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("crewdeck starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	dsn := cfg.PostgresDSN()

	if err := db.InitPostgres(dsn); err != nil {
		logging.Error("failed to connect to Postgres (sqlx)", "error", err.Error())
		log.Fatalf("failed to connect to Postgres (sqlx): %v", err)
	}
	logging.Info("connected to Postgres (sqlx)")

	orm, err := db.InitPostgresORM(dsn)
	if err != nil {
		logging.Error("failed to connect to Postgres (GORM)", "error", err.Error())
		log.Fatalf("failed to connect to Postgres (GORM): %v", err)
	}
	logging.Info("connected to Postgres (GORM)")

	if err := db.Migrate(orm); err != nil {
		logging.Error("schema migration failed", "error", err.Error())
		log.Fatalf("schema migration failed: %v", err)
	}

	deps, err := api.InitDependencies(cfg, db.DB, orm)
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %v", err)
	}
	defer deps.Cache.Close()

	router := routes.RegisterRoutes(deps)

	// /metrics is served outside the chi chain so scrapes skip the
	// request middleware.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	addr := ":" + cfg.Port
	logging.Info("server listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logging.Fatal("server stopped", "error", err.Error())
	}
}
