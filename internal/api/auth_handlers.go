package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"skyops/crewdeck/internal/common"
	"skyops/crewdeck/internal/constants"
	"skyops/crewdeck/internal/models/dtos"
	"skyops/crewdeck/internal/services"
)

// LoginHandler exchanges crew credentials for a session token.
func LoginHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		resp, err := deps.Services.Auth.Login(r.Context(), &req)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				common.RespondError(w, initTime, err, constants.MsgInvalidCredential, http.StatusUnauthorized)
				return
			}
			common.RespondError(w, initTime, err, "Login failed")
			return
		}
		common.RespondSuccess(w, initTime, "Logged in", resp)
	}
}
