package api

import (
	"fmt"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"skyops/crewdeck/internal/common"
	"skyops/crewdeck/internal/config"
	"skyops/crewdeck/internal/db/repositories"
	"skyops/crewdeck/internal/logging"
	"skyops/crewdeck/internal/metrics"
	"skyops/crewdeck/internal/roster"
	"skyops/crewdeck/internal/services"
)

// Repositories groups the data access layer.
type Repositories struct {
	Crew     *repositories.CrewRepository
	Fleet    *repositories.FleetRepository
	Flight   *repositories.FlightRepository
	AME      *repositories.AMERepository
	Training *repositories.TrainingRepository
	Roster   *repositories.RosterRepository
}

// Services groups the business layer.
type Services struct {
	Roster   *services.RosterService
	Crew     *services.CrewService
	Fleet    *services.FleetService
	Flight   *services.FlightService
	AME      *services.AMEService
	Training *services.TrainingService
	Auth     *services.AuthService
}

// Dependencies is the wired object graph handed to every handler.
type Dependencies struct {
	Config       *config.Config
	Repositories *Repositories
	Services     *Services
	Cache        common.CacheInterface
	Metrics      *metrics.MetricsRegistry
	StartTime    time.Time
}

// InitDependencies wires repositories, the roster builder and the services
// on top of the two database handles.
func InitDependencies(cfg *config.Config, sqlxDB *sqlx.DB, orm *gorm.DB) (*Dependencies, error) {
	cache, err := buildCache(cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing cache: %w", err)
	}

	metricsReg := metrics.NewMetricsRegistry()

	repos := &Repositories{
		Crew:     repositories.NewCrewRepository(orm, cfg.RoleDesignations),
		Fleet:    repositories.NewFleetRepository(orm),
		Flight:   repositories.NewFlightRepository(orm),
		AME:      repositories.NewAMERepository(orm),
		Training: repositories.NewTrainingRepository(orm),
		Roster:   repositories.NewRosterRepository(sqlxDB),
	}

	var accountant roster.DutyAccountant = roster.NoopAccountant{}
	if cfg.DutyAccounting {
		accountant = roster.FlightTimeAccountant{}
	}
	builder := roster.NewBuilder(repos.Crew, repos.Fleet, repos.Flight, roster.Options{
		Year:             cfg.RosterYear,
		DutyCeilingHours: cfg.DutyCeilingHours,
		Accountant:       accountant,
	})

	svcs := &Services{
		Roster:   services.NewRosterService(builder, repos.Crew, repos.Flight, repos.Roster, cache, metricsReg),
		Crew:     services.NewCrewService(repos.Crew),
		Fleet:    services.NewFleetService(repos.Fleet),
		Flight:   services.NewFlightService(repos.Flight),
		AME:      services.NewAMEService(repos.AME),
		Training: services.NewTrainingService(repos.Training, repos.Crew),
		Auth:     services.NewAuthService(repos.Crew, []byte(cfg.JWTSecret)),
	}

	return &Dependencies{
		Config:       cfg,
		Repositories: repos,
		Services:     svcs,
		Cache:        cache,
		Metrics:      metricsReg,
		StartTime:    time.Now(),
	}, nil
}

func buildCache(cfg *config.Config) (common.CacheInterface, error) {
	if cfg.CacheBackend == "redis" {
		addr := net.JoinHostPort(cfg.RedisHost, cfg.RedisPort)
		logging.Info("using redis cache", "addr", addr)
		return common.NewRedisCacheService(addr, cfg.RedisPassword)
	}
	return common.NewCacheService(5*time.Minute, 10*time.Minute), nil
}
