package api

import (
	"encoding/json"
	"net/http"
	"time"

	"skyops/crewdeck/internal/db"
	"skyops/crewdeck/internal/models/entities"
)

// HealthCheckHandler reports overall service health plus a per-dependency
// breakdown. The body is the bare health document, no envelope, and its
// status always agrees with the HTTP code.
func HealthCheckHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services := make(map[string]entities.ServiceStatus)

		pgStatus := "up"
		pgDetails := "Postgres connected"
		if err := db.DB.PingContext(r.Context()); err != nil {
			pgStatus = "down"
			pgDetails = err.Error()
		}
		services["postgres"] = entities.ServiceStatus{
			Status:  pgStatus,
			Details: pgDetails,
		}

		overall := "healthy"
		code := http.StatusOK
		for _, svc := range services {
			if svc.Status != "up" {
				overall = "degraded"
				code = http.StatusServiceUnavailable
				break
			}
		}

		response := entities.HealthCheckResponse{
			Status:   overall,
			Uptime:   time.Since(deps.StartTime).Round(time.Second).String(),
			Services: services,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(response)
	}
}
