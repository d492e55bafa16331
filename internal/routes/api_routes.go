package routes

import (
	"github.com/go-chi/chi/v5"

	"skyops/crewdeck/internal/api"
	"skyops/crewdeck/internal/middleware"
)

// RegisterAPIRoutes mounts the /api/v1 surface. Administrative CRUD is
// open; personal roster lookup requires a crew session token.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Post("/auth/login", api.LoginHandler(deps))

		v1.Route("/crew", func(crew chi.Router) {
			crew.Post("/", api.AddCrewHandler(deps))
			crew.Get("/", api.ListCrewHandler(deps))
			crew.Get("/{sap}", api.GetCrewHandler(deps))
			crew.Put("/{sap}", api.UpdateCrewHandler(deps))
			crew.Delete("/{sap}", api.DeleteCrewHandler(deps))
			crew.Put("/{sap}/availability", api.UpdateCrewAvailabilityHandler(deps))
		})

		v1.Route("/fleet", func(fleet chi.Router) {
			fleet.Post("/", api.AddAircraftHandler(deps))
			fleet.Get("/", api.ListFleetHandler(deps))
			fleet.Get("/{msn}", api.GetAircraftHandler(deps))
			fleet.Put("/{msn}", api.UpdateAircraftHandler(deps))
			fleet.Delete("/{msn}", api.DeleteAircraftHandler(deps))
			fleet.Put("/{msn}/availability", api.UpdateAircraftAvailabilityHandler(deps))
		})

		v1.Route("/flights", func(flights chi.Router) {
			flights.Post("/", api.AddFlightHandler(deps))
			flights.Get("/", api.ListFlightsHandler(deps))
			flights.Get("/{number}", api.GetFlightHandler(deps))
			flights.Delete("/{number}", api.DeleteFlightHandler(deps))
		})

		v1.Route("/ame", func(ame chi.Router) {
			ame.Post("/", api.AddAMEHandler(deps))
			ame.Get("/", api.ListAMEHandler(deps))
			ame.Put("/{sap}", api.UpdateAMEHandler(deps))
			ame.Delete("/{sap}", api.DeleteAMEHandler(deps))
		})

		v1.Route("/trainings", func(trainings chi.Router) {
			trainings.Post("/", api.ScheduleTrainingHandler(deps))
			trainings.Get("/", api.ListTrainingsHandler(deps))
			trainings.Delete("/{id}", api.CancelTrainingHandler(deps))
		})

		v1.Route("/roster", func(roster chi.Router) {
			roster.Post("/generate/{month}", api.GenerateRosterHandler(deps))
			roster.Put("/pairing", api.UpdatePairingHandler(deps))
			roster.Delete("/pairing", api.DeletePairingHandler(deps))

			roster.Group(func(authed chi.Router) {
				authed.Use(middleware.AuthMiddleware([]byte(deps.Config.JWTSecret)))
				authed.Get("/my", api.MyRosterHandler(deps))
			})
		})
	})
}
