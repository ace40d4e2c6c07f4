package handlers

import (
	"net/http"

	"rently-backend/internal/middleware"
	"rently-backend/internal/services"
	"rently-backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type LandlordPortalHandler struct {
	Portal *services.LandlordPortalService
}

func NewLandlordPortalHandler(portal *services.LandlordPortalService) *LandlordPortalHandler {
	return &LandlordPortalHandler{Portal: portal}
}

// Dashboard returns every unit with its paid/overdue flag
func (h *LandlordPortalHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
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

// Ledger returns the rendered ledger feed for one lease
func (h *LandlordPortalHandler) Ledger(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	leaseID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid lease id")
		return
	}

	ledger, err := h.Portal.Ledger(r.Context(), ident, leaseID)
	if err != nil {
		utils.ServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, ledger)
}
