package handlers

import (
	"encoding/json"
	"net/http"

	"rently-backend/internal/middleware"
	"rently-backend/internal/services"
	"rently-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type FavoriteHandler struct {
	Service *services.FavoriteService
}

func NewFavoriteHandler(s *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{Service: s}
}

func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	favorites, err := h.Service.List(r.Context(), userID)
	if err != nil {
		utils.ServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, favorites)
}

func (h *FavoriteHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		ListingID string `json:"listing_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	favorite, err := h.Service.Save(r.Context(), userID, req.ListingID)
	if err != nil {
		utils.ServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, favorite)
}

func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	listingID := mux.Vars(r)["listingId"]
	if err := h.Service.Remove(r.Context(), userID, listingID); err != nil {
		utils.ServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusNoContent, nil)
}
