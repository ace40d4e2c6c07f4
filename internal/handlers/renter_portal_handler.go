package handlers

import (
	"net/http"

	"rently-backend/internal/middleware"
	"rently-backend/internal/services"
	"rently-backend/pkg/utils"
)

type RenterPortalHandler struct {
	Portal *services.RenterPortalService
}

func NewRenterPortalHandler(portal *services.RenterPortalService) *RenterPortalHandler {
	return &RenterPortalHandler{Portal: portal}
}

// Dashboard returns the renter's lease, balance, paid status and feed
func (h *RenterPortalHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	dashboard, err := h.Portal.Dashboard(r.Context(), ident)
	if err != nil {
		utils.ServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, dashboard)
}
