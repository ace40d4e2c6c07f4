package models

import (
	"time"

	"github.com/google/uuid"
)

// Lease binds a rental unit to a single renter with a running balance.
// Balance is in currency minor units, signed: positive means the renter
// owes money, negative means the renter holds a credit. The balance is
// mutated only through the balance engine, in the same transaction that
// appends the matching ledger entry.
type Lease struct {
	ID             uuid.UUID `json:"id"`
	UnitID         uuid.UUID `json:"unit_id"`
	RenterID       int       `json:"renter_id"`
	MonthlyRent    int64     `json:"monthly_rent"`
	DueDay         int       `json:"due_day"` // day of month, 1-31
	StartDate      time.Time `json:"start_date"`
	OccupantsCount int       `json:"occupants_count"`
	Active         bool      `json:"active"`
	Balance        int64     `json:"balance"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// LandlordID is joined from the owning unit on every read; ownership
	// checks in the balance engine rely on it.
	LandlordID int `json:"landlord_id"`
}

// PaidCurrentPeriod reports whether the lease is settled for the current
// cycle. A lease counts as paid while at most one month's rent is
// outstanding (balance <= monthly rent), not only at balance <= 0. Both
// portals derive paid/overdue from this one predicate.
func (l *Lease) PaidCurrentPeriod() bool {
	return l.Balance <= l.MonthlyRent
}

// Overdue is the complement of PaidCurrentPeriod.
func (l *Lease) Overdue() bool {
	return !l.PaidCurrentPeriod()
}

// CreateLeaseRequest represents the request body for creating a lease
type CreateLeaseRequest struct {
	UnitID         uuid.UUID `json:"unit_id"`
	RenterID       int       `json:"renter_id"`
	MonthlyRent    int64     `json:"monthly_rent"`
	DueDay         int       `json:"due_day"`
	StartDate      time.Time `json:"start_date"`
	OccupantsCount int       `json:"occupants_count"`
	InitialBalance int64     `json:"initial_balance"`
}
