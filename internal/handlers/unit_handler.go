package handlers

import (
	"encoding/json"
	"net/http"

	"rently-backend/internal/middleware"
	"rently-backend/internal/models"
	"rently-backend/internal/services"
	"rently-backend/internal/storage"
	"rently-backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type UnitHandler struct {
	Registry *services.LeaseService
	Photos   *storage.PhotoStore // nil when photo storage is not configured
}

func NewUnitHandler(registry *services.LeaseService, photos *storage.PhotoStore) *UnitHandler {
	return &UnitHandler{Registry: registry, Photos: photos}
}

func (h *UnitHandler) CreateUnit(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req models.CreateUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	unit, err := h.Registry.CreateUnit(r.Context(), ident, &req)
	if err != nil {
		utils.ServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, unit)
}

func (h *UnitHandler) ListUnits(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	units, err := h.Registry.ListUnitsForLandlord(r.Context(), userID)
	if err != nil {
		utils.ServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, units)
}

// PresignPhotoUpload hands out a presigned PUT URL for a unit photo
func (h *UnitHandler) PresignPhotoUpload(w http.ResponseWriter, r *http.Request) {
	if h.Photos == nil {
		utils.Error(w, http.StatusServiceUnavailable, "Photo storage is not configured")
		return
	}

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

	// Only the owning landlord may add photos
	if _, err := h.Registry.GetUnit(r.Context(), ident, unitID); err != nil {
		utils.ServiceError(w, err)
		return
	}

	var req struct {
		ContentType string `json:"content_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	upload, err := h.Photos.PresignUpload(r.Context(), unitID, req.ContentType)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, upload)
}

// ListPhotos returns presigned GET URLs for a unit's photos
func (h *UnitHandler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	if h.Photos == nil {
		utils.Error(w, http.StatusServiceUnavailable, "Photo storage is not configured")
		return
	}

	unitID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid unit id")
		return
	}

	urls, err := h.Photos.ListPhotos(r.Context(), unitID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list photos")
		return
	}

	utils.JSON(w, http.StatusOK, map[string][]string{"photos": urls})
}
