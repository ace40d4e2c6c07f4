package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"rently-backend/internal/middleware"
	"rently-backend/internal/models"
	"rently-backend/internal/services"
	"rently-backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type LedgerHandler struct {
	Balance  *services.BalanceService
	Receipts *services.ReceiptService
}

func NewLedgerHandler(balance *services.BalanceService, receipts *services.ReceiptService) *LedgerHandler {
	return &LedgerHandler{Balance: balance, Receipts: receipts}
}

func leaseIDFromRequest(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["id"])
}

// Pay records a renter payment against a lease
func (h *LedgerHandler) Pay(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	leaseID, err := leaseIDFromRequest(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid lease id")
		return
	}

	var req models.PayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	view, err := h.Balance.Pay(r.Context(), leaseID, req.Amount, ident)
	if err != nil {
		utils.ServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, view)
}

// Adjust records a landlord charge or credit against a lease
func (h *LedgerHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	leaseID, err := leaseIDFromRequest(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid lease id")
		return
	}

	var req models.AdjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	view, err := h.Balance.Adjust(r.Context(), leaseID, req.Delta, req.Note, ident)
	if err != nil {
		utils.ServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, view)
}

// ChargeRent posts one month's rent onto the lease
func (h *LedgerHandler) ChargeRent(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	leaseID, err := leaseIDFromRequest(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid lease id")
		return
	}

	view, err := h.Balance.PostMonthlyCharge(r.Context(), leaseID, ident)
	if err != nil {
		utils.ServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, view)
}

// GetLedger returns the lease and its entries, newest first
func (h *LedgerHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	leaseID, err := leaseIDFromRequest(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid lease id")
		return
	}

	view, err := h.Balance.GetLedger(r.Context(), leaseID, ident)
	if err != nil {
		utils.ServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, view)
}

// Receipt streams a PDF receipt for a payment entry
func (h *LedgerHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	entryID, err := uuid.Parse(mux.Vars(r)["entryId"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid entry id")
		return
	}

	pdf, err := h.Receipts.PaymentReceipt(r.Context(), entryID, ident)
	if err != nil {
		utils.ServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", entryID))
	w.Write(pdf)
}

// Statement streams a PDF statement of the full lease ledger
func (h *LedgerHandler) Statement(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	leaseID, err := leaseIDFromRequest(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid lease id")
		return
	}

	pdf, err := h.Receipts.LeaseStatement(r.Context(), leaseID, ident)
	if err != nil {
		utils.ServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=statement-%s.pdf", leaseID))
	w.Write(pdf)
}
