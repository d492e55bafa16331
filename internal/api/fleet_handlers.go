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

// AddAircraftHandler registers a new airframe in the fleet.
func AddAircraftHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AddAircraftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		aircraft, err := deps.Services.Fleet.AddAircraft(r.Context(), &req)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}
		common.RespondSuccess(w, initTime, constants.MsgAircraftAdded, aircraft, http.StatusCreated)
	}
}

func ListFleetHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		fleet, err := deps.Services.Fleet.ListFleet(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list fleet")
			return
		}
		common.RespondSuccess(w, initTime, "Fleet fetched", fleet)
	}
}

func GetAircraftHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		msn, err := strconv.ParseInt(chi.URLParam(r, "msn"), 10, 64)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		aircraft, err := deps.Services.Fleet.GetAircraft(r.Context(), msn)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, initTime, err, "Aircraft not found", http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to fetch aircraft")
			return
		}
		common.RespondSuccess(w, initTime, "Aircraft fetched", aircraft)
	}
}

// UpdateAircraftHandler replaces an airframe's record wholesale.
func UpdateAircraftHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		msn, err := strconv.ParseInt(chi.URLParam(r, "msn"), 10, 64)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		var req dtos.AddAircraftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		aircraft, err := deps.Services.Fleet.UpdateAircraft(r.Context(), msn, &req)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, initTime, err, "Aircraft not found", http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}
		common.RespondSuccess(w, initTime, "Aircraft updated", aircraft)
	}
}

func DeleteAircraftHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		msn, err := strconv.ParseInt(chi.URLParam(r, "msn"), 10, 64)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		if err := deps.Services.Fleet.DeleteAircraft(r.Context(), msn); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, initTime, err, "Aircraft not found", http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to delete aircraft")
			return
		}
		common.RespondSuccess(w, initTime, constants.MsgAircraftDeleted, nil)
	}
}

// UpdateAircraftAvailabilityHandler grounds or restores an airframe.
func UpdateAircraftAvailabilityHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		msn, err := strconv.ParseInt(chi.URLParam(r, "msn"), 10, 64)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		var req dtos.UpdateAvailabilityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		if err := deps.Services.Fleet.SetAvailability(r.Context(), msn, req.Available); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, initTime, err, "Aircraft not found", http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to update availability")
			return
		}
		common.RespondSuccess(w, initTime, "Availability updated", nil)
	}
}
