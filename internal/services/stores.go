package services

import (
	"context"

	"rently-backend/internal/models"

	"github.com/google/uuid"
)

// Store interfaces consumed by the services. The pgx repositories are the
// production implementations; tests run against in-memory stands-ins.

// LedgerStore is the append-only entry log for leases. ApplyEntry must
// update the lease balance and insert the entry atomically; the store
// never decides balance semantics itself (the engine computes the delta).
type LedgerStore interface {
	// ApplyEntry atomically applies delta to the lease balance and appends
	// the entry, returning the lease as updated.
	ApplyEntry(ctx context.Context, leaseID uuid.UUID, delta int64, entry *models.LedgerEntry) (*models.Lease, error)
	// ListByLease returns all entries for a lease, newest first.
	ListByLease(ctx context.Context, leaseID uuid.UUID) ([]models.LedgerEntry, error)
	// GetEntry returns a single entry by id.
	GetEntry(ctx context.Context, id uuid.UUID) (*models.LedgerEntry, error)
}

// LeaseStore resolves leases, with the owning unit's landlord joined in.
type LeaseStore interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Lease, error)
	Create(ctx context.Context, lease *models.Lease) error
	GetActiveByUnit(ctx context.Context, unitID uuid.UUID) (*models.Lease, error)
	ListByRenter(ctx context.Context, renterID int) ([]models.Lease, error)
	LatestByRenter(ctx context.Context, renterID int) (*models.Lease, error)
	ListByLandlord(ctx context.Context, landlordID int) ([]models.Lease, error)
}

// UnitStore resolves rental units per landlord.
type UnitStore interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Unit, error)
	Create(ctx context.Context, unit *models.Unit) error
	ListByLandlord(ctx context.Context, landlordID int) ([]models.Unit, error)
}

// OnlineTransactionStore persists Razorpay orders and their outcomes.
type OnlineTransactionStore interface {
	Create(ctx context.Context, tx *models.OnlineTransaction) error
	GetByOrderID(ctx context.Context, orderID string) (*models.OnlineTransaction, error)
	MarkSuccess(ctx context.Context, orderID, paymentID string) error
	MarkFailed(ctx context.Context, orderID, reason string) error
}
