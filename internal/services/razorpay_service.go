package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"rently-backend/internal/models"

	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayService handles online rent payments. The order is created
// first; the ledger only sees a payment once the capture signature
// verifies, so abandoned checkouts never touch a balance.
type RazorpayService struct {
	transactionRepo OnlineTransactionStore
	balance         *BalanceService
	leases          LeaseStore
	keyID           string
	keySecret       string
	webhookSecret   string
}

func NewRazorpayService(
	keyID, keySecret, webhookSecret string,
	transactionRepo OnlineTransactionStore,
	balance *BalanceService,
	leases LeaseStore,
) *RazorpayService {
	return &RazorpayService{
		transactionRepo: transactionRepo,
		balance:         balance,
		leases:          leases,
		keyID:           keyID,
		keySecret:       keySecret,
		webhookSecret:   webhookSecret,
	}
}

// IsEnabled reports whether online payments are configured
func (s *RazorpayService) IsEnabled() bool {
	return s.keyID != "" && s.keySecret != ""
}

func (s *RazorpayService) client() *razorpay.Client {
	if !s.IsEnabled() {
		return nil
	}
	return razorpay.NewClient(s.keyID, s.keySecret)
}

// CreateOrder creates a Razorpay order and stores transaction record
func (s *RazorpayService) CreateOrder(ctx context.Context, ident models.Identity, req *models.CreateOnlinePaymentRequest) (*models.CreateOrderResponse, error) {
	if !s.IsEnabled() {
		return nil, invalidf("razorpay", "online payments are currently disabled")
	}
	if req.Amount <= 0 {
		return nil, invalidf("amount", "payment amount must be positive")
	}

	lease, err := s.leases.Get(ctx, req.LeaseID)
	if err != nil {
		return nil, err
	}
	if ident.UserID != lease.RenterID {
		return nil, ErrForbidden
	}

	client := s.client()

	// Razorpay wants the amount in the smallest currency unit
	amountPaise := req.Amount * 100

	orderData := map[string]interface{}{
		"amount":   amountPaise,
		"currency": "INR",
		"receipt":  fmt.Sprintf("rcpt_%d_%d", ident.UserID, time.Now().Unix()),
		"notes": map[string]interface{}{
			"lease_id":  req.LeaseID.String(),
			"renter_id": ident.UserID,
		},
	}

	order, err := client.Order.Create(orderData, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create razorpay order: %w", err)
	}

	orderID, _ := order["id"].(string)
	if orderID == "" {
		return nil, fmt.Errorf("razorpay order response missing id")
	}

	// Store transaction record
	tx := &models.OnlineTransaction{
		RazorpayOrderID: orderID,
		LeaseID:         req.LeaseID,
		RenterID:        ident.UserID,
		Amount:          req.Amount,
	}
	if err := s.transactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to store transaction: %w", err)
	}

	return &models.CreateOrderResponse{
		OrderID:  orderID,
		Amount:   amountPaise,
		Currency: "INR",
		KeyID:    s.keyID,
	}, nil
}

// VerifyPayment verifies the payment signature, marks the transaction and
// records the payment on the lease ledger.
func (s *RazorpayService) VerifyPayment(ctx context.Context, ident models.Identity, req *models.VerifyPaymentRequest) (*models.OnlineTransaction, error) {
	if !s.verifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		_ = s.transactionRepo.MarkFailed(ctx, req.RazorpayOrderID, "Invalid signature")
		return nil, invalidf("razorpay_signature", "invalid payment signature")
	}

	tx, err := s.transactionRepo.GetByOrderID(ctx, req.RazorpayOrderID)
	if err != nil {
		return nil, err
	}
	if tx.RenterID != ident.UserID {
		return nil, ErrForbidden
	}

	// Check if already processed
	if tx.Status == models.OnlineTxStatusSuccess {
		return tx, nil
	}

	if err := s.transactionRepo.MarkSuccess(ctx, req.RazorpayOrderID, req.RazorpayPaymentID); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	// Record the payment on the ledger. The capture already happened, so a
	// ledger failure is logged rather than failing verification.
	if _, err := s.balance.Pay(ctx, tx.LeaseID, tx.Amount, models.Identity{UserID: tx.RenterID, Role: models.RoleRenter}); err != nil {
		log.Printf("[Razorpay] Failed to record ledger payment for order %s: %v", tx.RazorpayOrderID, err)
	}

	// Re-read for the updated timestamps; if that read fails, return the
	// transaction we already hold with its status advanced.
	fresh, err := s.transactionRepo.GetByOrderID(ctx, req.RazorpayOrderID)
	if err != nil {
		log.Printf("[Razorpay] Failed to re-read transaction for order %s: %v", req.RazorpayOrderID, err)
		tx.Status = models.OnlineTxStatusSuccess
		tx.RazorpayPaymentID = req.RazorpayPaymentID
		return tx, nil
	}
	return fresh, nil
}

// verifySignature verifies the Razorpay payment signature
func (s *RazorpayService) verifySignature(orderID, paymentID, signature string) bool {
	if s.keySecret == "" {
		return false
	}
	data := orderID + "|" + paymentID
	h := hmac.New(sha256.New, []byte(s.keySecret))
	h.Write([]byte(data))
	expectedSignature := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expectedSignature), []byte(signature))
}

// VerifyWebhookSignature verifies the webhook signature
func (s *RazorpayService) VerifyWebhookSignature(body []byte, signature string) bool {
	if s.webhookSecret == "" {
		return true // Skip verification if not configured
	}
	h := hmac.New(sha256.New, []byte(s.webhookSecret))
	h.Write(body)
	expectedSignature := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expectedSignature), []byte(signature))
}

// ProcessWebhook processes Razorpay webhook events
func (s *RazorpayService) ProcessWebhook(ctx context.Context, event string, payload map[string]interface{}) error {
	switch event {
	case "payment.failed":
		entity := paymentEntity(payload)
		if entity == nil {
			return fmt.Errorf("webhook payload missing payment entity")
		}
		orderID, _ := entity["order_id"].(string)
		reason, _ := entity["error_description"].(string)
		if orderID == "" {
			return fmt.Errorf("webhook payment entity missing order_id")
		}
		return s.transactionRepo.MarkFailed(ctx, orderID, reason)
	default:
		log.Printf("[Razorpay] Unhandled webhook event: %s", event)
		return nil
	}
}

func paymentEntity(payload map[string]interface{}) map[string]interface{} {
	p, ok := payload["payment"].(map[string]interface{})
	if !ok {
		return nil
	}
	entity, ok := p["entity"].(map[string]interface{})
	if !ok {
		return nil
	}
	return entity
}
