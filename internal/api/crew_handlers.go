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

// AddCrewHandler admits a new flight crew member.
func AddCrewHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AddCrewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		member, err := deps.Services.Crew.AddCrewMember(r.Context(), &req)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}
		common.RespondSuccess(w, initTime, constants.MsgCrewAdded, member, http.StatusCreated)
	}
}

// ListCrewHandler returns the whole flight crew roster.
func ListCrewHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		crew, err := deps.Services.Crew.ListCrew(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list crew")
			return
		}
		common.RespondSuccess(w, initTime, "Crew fetched", crew)
	}
}

// GetCrewHandler fetches one crew member by staff number.
func GetCrewHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		sap, err := strconv.ParseInt(chi.URLParam(r, "sap"), 10, 64)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		member, err := deps.Services.Crew.GetCrewMember(r.Context(), sap)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, initTime, err, constants.MsgCrewNotFound, http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to fetch crew member")
			return
		}
		common.RespondSuccess(w, initTime, "Crew member fetched", member)
	}
}

// UpdateCrewHandler replaces a crew member's record wholesale.
func UpdateCrewHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		sap, err := strconv.ParseInt(chi.URLParam(r, "sap"), 10, 64)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		var req dtos.AddCrewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		member, err := deps.Services.Crew.UpdateCrewMember(r.Context(), sap, &req)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, initTime, err, constants.MsgCrewNotFound, http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}
		common.RespondSuccess(w, initTime, "Crew member updated", member)
	}
}

// DeleteCrewHandler removes a crew member from the roster.
func DeleteCrewHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		sap, err := strconv.ParseInt(chi.URLParam(r, "sap"), 10, 64)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		if err := deps.Services.Crew.DeleteCrewMember(r.Context(), sap); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, initTime, err, constants.MsgCrewNotFound, http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to delete crew member")
			return
		}
		common.RespondSuccess(w, initTime, constants.MsgCrewDeleted, nil)
	}
}

// UpdateCrewAvailabilityHandler flips a crew member's leave state.
func UpdateCrewAvailabilityHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		sap, err := strconv.ParseInt(chi.URLParam(r, "sap"), 10, 64)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		var req dtos.UpdateAvailabilityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		if err := deps.Services.Crew.SetAvailability(r.Context(), sap, req.Available); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, initTime, err, constants.MsgCrewNotFound, http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to update availability")
			return
		}
		common.RespondSuccess(w, initTime, "Availability updated", nil)
	}
}
