package handlers

import (
	"encoding/json"
	"net/http"

	"rently-backend/internal/middleware"
	"rently-backend/internal/models"
	"rently-backend/internal/services"
	"rently-backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type LeaseHandler struct {
	Registry *services.LeaseService
}

func NewLeaseHandler(registry *services.LeaseService) *LeaseHandler {
	return &LeaseHandler{Registry: registry}
}

func (h *LeaseHandler) CreateLease(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req models.CreateLeaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	lease, err := h.Registry.CreateLease(r.Context(), ident, &req)
	if err != nil {
		utils.ServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, lease)
}

func (h *LeaseHandler) ListLeases(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	leases, err := h.Registry.ListLandlordLeases(r.Context(), userID)
	if err != nil {
		utils.ServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, leases)
}

func (h *LeaseHandler) GetActiveLeaseForUnit(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	unitID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid unit id")
		return
	}

	lease, err := h.Registry.GetActiveLeaseForUnit(r.Context(), ident, unitID)
	if err != nil {
		utils.ServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, lease)
}
