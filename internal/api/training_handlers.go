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

// ScheduleTrainingHandler books a trainer/trainee session.
func ScheduleTrainingHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AddTrainingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		training, err := deps.Services.Training.ScheduleTraining(r.Context(), &req)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, initTime, err, constants.MsgCrewNotFound, http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}
		common.RespondSuccess(w, initTime, "Training scheduled", training, http.StatusCreated)
	}
}

func ListTrainingsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		trainings, err := deps.Services.Training.ListTrainings(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list trainings")
			return
		}
		common.RespondSuccess(w, initTime, "Trainings fetched", trainings)
	}
}

func CancelTrainingHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		if err := deps.Services.Training.CancelTraining(r.Context(), id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, initTime, err, "Training not found", http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to cancel training")
			return
		}
		common.RespondSuccess(w, initTime, "Training cancelled", nil)
	}
}
