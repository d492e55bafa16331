package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"skyops/crewdeck/internal/common"
	"skyops/crewdeck/internal/constants"
	"skyops/crewdeck/internal/db/repositories"
	"skyops/crewdeck/internal/models/dtos"
)

// AddFlightHandler adds a sector to the daily flight catalog.
func AddFlightHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AddFlightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		flight, err := deps.Services.Flight.AddFlight(r.Context(), &req)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}
		common.RespondSuccess(w, initTime, constants.MsgFlightAdded, flight, http.StatusCreated)
	}
}

func ListFlightsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		flights, err := deps.Services.Flight.ListFlights(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list flights")
			return
		}
		common.RespondSuccess(w, initTime, "Flights fetched", flights)
	}
}

func GetFlightHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		number, err := strconv.Atoi(chi.URLParam(r, "number"))
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		flight, err := deps.Services.Flight.GetFlight(r.Context(), number)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, initTime, err, "Flight not found", http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to fetch flight")
			return
		}
		common.RespondSuccess(w, initTime, "Flight fetched", flight)
	}
}

func DeleteFlightHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		number, err := strconv.Atoi(chi.URLParam(r, "number"))
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		if err := deps.Services.Flight.DeleteFlight(r.Context(), number); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, initTime, err, "Flight not found", http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to delete flight")
			return
		}
		common.RespondSuccess(w, initTime, constants.MsgFlightDeleted, nil)
	}
}
