package models

import (
	"time"

	"github.com/google/uuid"
)

// OnlineTxStatus tracks the lifecycle of an online payment order
type OnlineTxStatus string

const (
	OnlineTxStatusCreated OnlineTxStatus = "created"
	OnlineTxStatusSuccess OnlineTxStatus = "success"
	OnlineTxStatusFailed  OnlineTxStatus = "failed"
)

// OnlineTransaction records one Razorpay order for a lease payment.
// The ledger entry is only written once the capture is verified; until
// then the order exists here and nowhere else.
type OnlineTransaction struct {
	ID                int            `json:"id"`
	RazorpayOrderID   string         `json:"razorpay_order_id"`
	RazorpayPaymentID string         `json:"razorpay_payment_id,omitempty"`
	LeaseID           uuid.UUID      `json:"lease_id"`
	RenterID          int            `json:"renter_id"`
	Amount            int64          `json:"amount"`
	Status            OnlineTxStatus `json:"status"`
	FailureReason     string         `json:"failure_reason,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// CreateOnlinePaymentRequest represents the request body for starting an
// online rent payment
type CreateOnlinePaymentRequest struct {
	LeaseID uuid.UUID `json:"lease_id"`
	Amount  int64     `json:"amount"`
}

// CreateOrderResponse is returned to the frontend checkout widget
type CreateOrderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

// VerifyPaymentRequest represents the callback from the checkout widget
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}
