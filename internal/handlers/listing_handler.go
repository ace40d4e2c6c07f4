package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"rently-backend/internal/models"
	"rently-backend/internal/services"
	"rently-backend/pkg/utils"
)

type ListingHandler struct {
	Service *services.ListingService
}

func NewListingHandler(s *services.ListingService) *ListingHandler {
	return &ListingHandler{Service: s}
}

// Search proxies a listings browse query to the provider. Accepts either
// a JSON body (POST) or query parameters (GET).
func (h *ListingHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req models.ListingSearchRequest

	if r.Method == http.MethodPost {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	} else {
		q := r.URL.Query()
		req.City = q.Get("city")
		req.State = q.Get("state")
		if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
			req.Limit = limit
		}
		req.Viewport.NorthEastLat = parseFloat(q.Get("ne_lat"))
		req.Viewport.NorthEastLng = parseFloat(q.Get("ne_lng"))
		req.Viewport.SouthWestLat = parseFloat(q.Get("sw_lat"))
		req.Viewport.SouthWestLng = parseFloat(q.Get("sw_lng"))
	}

	listings, err := h.Service.Search(r.Context(), &req)
	if err != nil {
		utils.ServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, listings)
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
