package models

import (
	"time"

	"github.com/google/uuid"
)

// EntryKind classifies a ledger entry
type EntryKind string

const (
	EntryKindPayment EntryKind = "payment" // renter payment, reduces balance
	EntryKindCharge  EntryKind = "charge"  // landlord charge, increases balance
	EntryKindCredit  EntryKind = "credit"  // landlord credit, decreases balance
)

// LedgerEntry is one immutable event on a lease's ledger. Amount sign
// follows the kind: payments and charges store a positive amount, credits
// store a negative one. The balance effect is -amount for payments and
// +amount for charges and credits, so the lease balance is always the
// fold of its entries.
type LedgerEntry struct {
	ID         uuid.UUID `json:"id"`
	LeaseID    uuid.UUID `json:"lease_id"`
	Kind       EntryKind `json:"kind"`
	Amount     int64     `json:"amount"`
	Note       string    `json:"note"`
	RecordedBy int       `json:"recorded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// BalanceEffect returns the signed delta this entry applies to the lease
// balance.
func (e *LedgerEntry) BalanceEffect() int64 {
	if e.Kind == EntryKindPayment {
		return -e.Amount
	}
	return e.Amount
}

// LedgerView is what the balance engine returns after a command or a
// ledger read: the lease as it now stands plus every entry, newest first.
type LedgerView struct {
	Lease   *Lease        `json:"lease"`
	Entries []LedgerEntry `json:"entries"`
}

// PayRequest represents the request body for recording a payment
type PayRequest struct {
	Amount int64 `json:"amount"`
}

// AdjustRequest represents the request body for a landlord balance adjustment.
// Positive delta is recorded as a charge, negative as a credit.
type AdjustRequest struct {
	Delta int64  `json:"delta"`
	Note  string `json:"note"`
}
