package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"skyops/crewdeck/internal/auth"
	"skyops/crewdeck/internal/common"
	"skyops/crewdeck/internal/constants"
	"skyops/crewdeck/internal/db/repositories"
	"skyops/crewdeck/internal/models/entities"
	"skyops/crewdeck/internal/roster"
)

// GenerateRosterHandler builds the pairing roster for one month and
// replaces the stored roster with it.
func GenerateRosterHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		month, err := strconv.Atoi(chi.URLParam(r, "month"))
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		result, err := deps.Services.Roster.GenerateMonthlyRoster(r.Context(), month)
		if err != nil {
			common.RespondError(w, initTime, err, "Roster generation failed", rosterErrorStatus(err))
			return
		}
		common.RespondSuccess(w, initTime, constants.MsgRosterGenerated, result, http.StatusCreated)
	}
}

// MyRosterHandler returns the authenticated crew member's pairings for
// either seat.
func MyRosterHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetCrewClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized", http.StatusUnauthorized)
			return
		}

		views, err := deps.Services.Roster.ViewCrewRoster(r.Context(), claims.SAP)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch roster")
			return
		}
		common.RespondSuccess(w, initTime, constants.MsgRosterFetched, views)
	}
}

type deletePairingRequest struct {
	FlightNo int   `json:"flight_no"`
	P1SAP    int64 `json:"p1"`
	P2SAP    int64 `json:"p2"`
}

// DeletePairingHandler removes one stored pairing, identified by flight
// number and both seat occupants.
func DeletePairingHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req deletePairingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		if err := deps.Services.Roster.DeletePairing(r.Context(), req.FlightNo, req.P1SAP, req.P2SAP); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, initTime, err, "Pairing not found", http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to delete pairing")
			return
		}
		common.RespondSuccess(w, initTime, constants.MsgPairingDeleted, nil)
	}
}

type updatePairingRequest struct {
	Old deletePairingRequest `json:"old"`
	New struct {
		Date        string `json:"date"` // YYYY-MM-DD
		FlightNo    int    `json:"flight_no"`
		AircraftMSN int64  `json:"aircraft_msn"`
		P1SAP       int64  `json:"p1"`
		P2SAP       int64  `json:"p2"`
	} `json:"new"`
}

// UpdatePairingHandler swaps one stored pairing for a replacement row.
func UpdatePairingHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req updatePairingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		date, err := time.Parse("2006-01-02", req.New.Date)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}
		replacement := &entities.Pairing{
			Date:        date,
			FlightNo:    req.New.FlightNo,
			AircraftMSN: req.New.AircraftMSN,
			P1SAP:       req.New.P1SAP,
			P2SAP:       req.New.P2SAP,
		}

		err = deps.Services.Roster.UpdatePairing(r.Context(), req.Old.FlightNo, req.Old.P1SAP, req.Old.P2SAP, replacement)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				common.RespondError(w, initTime, err, "Pairing not found", http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}
		common.RespondSuccess(w, initTime, "Pairing updated", nil)
	}
}

// rosterErrorStatus maps build failures onto HTTP codes: bad input is the
// caller's fault, an unbuildable month is the data's fault.
func rosterErrorStatus(err error) int {
	var invalidMonth *roster.InvalidMonthError
	var emptyPool *roster.EmptyPoolError
	var noAircraft *roster.NoAircraftAvailableError
	switch {
	case errors.As(err, &invalidMonth):
		return http.StatusBadRequest
	case errors.As(err, &emptyPool), errors.As(err, &noAircraft):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
