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

// AddAMEHandler registers a maintenance engineer.
func AddAMEHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AddAMERequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		engineer, err := deps.Services.AME.AddEngineer(r.Context(), &req)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}
		common.RespondSuccess(w, initTime, "Engineer added", engineer, http.StatusCreated)
	}
}

func ListAMEHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		engineers, err := deps.Services.AME.ListEngineers(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list engineers")
			return
		}
		common.RespondSuccess(w, initTime, "Engineers fetched", engineers)
	}
}

// UpdateAMEHandler replaces an engineer's record wholesale.
func UpdateAMEHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		sap, err := strconv.ParseInt(chi.URLParam(r, "sap"), 10, 64)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		var req dtos.AddAMERequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		engineer, err := deps.Services.AME.UpdateEngineer(r.Context(), sap, &req)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, initTime, err, "Engineer not found", http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}
		common.RespondSuccess(w, initTime, "Engineer updated", engineer)
	}
}

func DeleteAMEHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		sap, err := strconv.ParseInt(chi.URLParam(r, "sap"), 10, 64)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		if err := deps.Services.AME.DeleteEngineer(r.Context(), sap); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, initTime, err, "Engineer not found", http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to delete engineer")
			return
		}
		common.RespondSuccess(w, initTime, "Engineer deleted", nil)
	}
}
