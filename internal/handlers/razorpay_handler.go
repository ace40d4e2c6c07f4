package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"rently-backend/internal/middleware"
	"rently-backend/internal/models"
	"rently-backend/internal/services"
	"rently-backend/pkg/utils"
)

type RazorpayHandler struct {
	Service *services.RazorpayService
}

func NewRazorpayHandler(service *services.RazorpayService) *RazorpayHandler {
	return &RazorpayHandler{Service: service}
}

// Status returns whether online payments are enabled
// GET /api/payment/status
func (h *RazorpayHandler) Status(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]bool{"enabled": h.Service.IsEnabled()})
}

// CreateOrder creates a Razorpay order for a lease payment
// POST /api/payment/create-order
func (h *RazorpayHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req models.CreateOnlinePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.Service.CreateOrder(r.Context(), ident, &req)
	if err != nil {
		log.Printf("[Razorpay] CreateOrder error: %v", err)
		utils.ServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, response)
}

// VerifyPayment verifies the payment after the checkout callback
// POST /api/payment/verify
func (h *RazorpayHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req models.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.RazorpayOrderID == "" || req.RazorpayPaymentID == "" || req.RazorpaySignature == "" {
		utils.Error(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	tx, err := h.Service.VerifyPayment(r.Context(), ident, &req)
	if err != nil {
		log.Printf("[Razorpay] VerifyPayment error for user %d: %v", ident.UserID, err)
		utils.ServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"transaction": tx,
	})
}

// HandleWebhook processes Razorpay webhook events
// POST /api/payment/webhook
func (h *RazorpayHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("[Razorpay] Failed to read webhook body: %v", err)
		utils.Error(w, http.StatusBadRequest, "Failed to read body")
		return
	}

	signature := r.Header.Get("X-Razorpay-Signature")
	if !h.Service.VerifyWebhookSignature(body, signature) {
		log.Printf("[Razorpay] Invalid webhook signature")
		utils.Error(w, http.StatusUnauthorized, "Invalid signature")
		return
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Printf("[Razorpay] Failed to parse webhook: %v", err)
		utils.Error(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	event, _ := payload["event"].(string)
	payloadData, _ := payload["payload"].(map[string]interface{})

	log.Printf("[Razorpay] Received webhook: %s", event)

	if err := h.Service.ProcessWebhook(r.Context(), event, payloadData); err != nil {
		log.Printf("[Razorpay] Webhook processing error: %v", err)
		// Return 200 anyway to prevent retries for known errors
	}

	utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
