package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"skyops/crewdeck/internal/constants"
)

// Config holds all runtime configuration for the service.
type Config struct {
	AppEnv string
	Port   string

	// Postgres
	PGHost     string
	PGPort     string
	PGUser     string
	PGPassword string
	PGDatabase string

	// Cache backend: "memory" or "redis"
	CacheBackend  string
	RedisHost     string
	RedisPort     string
	RedisPassword string

	// Auth
	JWTSecret string

	// Roster generation
	RosterYear       int
	DutyCeilingHours float64
	DutyAccounting   bool

	// Which designations qualify for each seat. Injected into the crew
	// repository instead of living there as a package global.
	RoleDesignations map[constants.CrewRole][]string
}

// DefaultRoleDesignations maps each seat to its qualifying grades.
func DefaultRoleDesignations() map[constants.CrewRole][]string {
	return map[constants.CrewRole][]string{
		constants.RoleP1: {"COMMANDER", "SR COMMANDER", "LTC", "TRI", "DE"},
		constants.RoleP2: {"JFO", "FO", "SFO"},
	}
}

// Load reads configuration from the environment, falling back to a local
// .env file when present.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "8080"),

		PGHost:     getEnv("PG_HOST", "localhost"),
		PGPort:     getEnv("PG_PORT", "5432"),
		PGUser:     getEnv("PG_USER", "crewdeck"),
		PGPassword: getEnv("PG_PASSWORD", ""),
		PGDatabase: getEnv("PG_DB", "crewdeck"),

		CacheBackend:  getEnv("CACHE_BACKEND", "memory"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		JWTSecret: getEnv("JWT_SECRET", ""),

		RosterYear:       getEnvAsInt("ROSTER_YEAR", 2024),
		DutyCeilingHours: getEnvAsFloat("DUTY_CEILING_HOURS", 8),
		DutyAccounting:   getEnvAsBool("DUTY_ACCOUNTING", false),

		RoleDesignations: DefaultRoleDesignations(),
	}

	if cfg.AppEnv == "production" && cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}

	return cfg, nil
}

// PostgresDSN builds the connection string shared by sqlx and GORM.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDatabase)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
