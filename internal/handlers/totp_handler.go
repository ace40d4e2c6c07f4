package handlers

import (
	"encoding/json"
	"net/http"

	"rently-backend/internal/middleware"
	"rently-backend/internal/services"
	"rently-backend/pkg/utils"
)

type TOTPHandler struct {
	TOTP  *services.TOTPService
	Users *services.UserService
}

func NewTOTPHandler(totp *services.TOTPService, users *services.UserService) *TOTPHandler {
	return &TOTPHandler{TOTP: totp, Users: users}
}

// Setup generates a fresh secret and QR code for the authenticated user
func (h *TOTPHandler) Setup(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.Users.GetUser(r.Context(), userID)
	if err != nil {
		utils.ServiceError(w, err)
		return
	}

	resp, err := h.TOTP.GenerateSetup(r.Context(), user)
	if err != nil {
		utils.ServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, resp)
}

// Verify confirms the first code and turns 2FA on
func (h *TOTPHandler) Verify(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.TOTP.VerifyAndEnable(r.Context(), userID, req.Code); err != nil {
		utils.ServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]bool{"enabled": true})
}
