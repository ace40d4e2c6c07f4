package services

import (
	"context"
	"log"

	"rently-backend/internal/metrics"
	"rently-backend/internal/models"

	"github.com/google/uuid"
)

// EntryPublisher receives every recorded ledger entry after commit.
// Publishing is best-effort; a failed publish never rolls back a command.
type EntryPublisher interface {
	PublishEntryRecorded(ctx context.Context, lease *models.Lease, entry *models.LedgerEntry) error
}

// BalanceService is the lease balance engine. Every balance mutation in
// the system goes through one of its commands: the command validates,
// authorizes, classifies the entry, and hands the balance delta plus the
// entry to the ledger store, which applies both in one transaction.
type BalanceService struct {
	Leases    LeaseStore
	Ledger    LedgerStore
	publisher EntryPublisher
}

func NewBalanceService(leases LeaseStore, ledger LedgerStore) *BalanceService {
	return &BalanceService{Leases: leases, Ledger: ledger}
}

// SetPublisher wires an optional event publisher for recorded entries
func (s *BalanceService) SetPublisher(p EntryPublisher) {
	s.publisher = p
}

// Pay records a renter payment. Amount must be positive; overpaying is
// allowed and drives the balance negative (a credit owed to the renter).
// Only the lease's renter may pay. Returns the updated lease and the full
// entry list, newest first.
func (s *BalanceService) Pay(ctx context.Context, leaseID uuid.UUID, amount int64, ident models.Identity) (*models.LedgerView, error) {
	if amount <= 0 {
		return nil, invalidf("amount", "payment amount must be positive")
	}

	lease, err := s.Leases.Get(ctx, leaseID)
	if err != nil {
		return nil, err
	}
	if ident.UserID != lease.RenterID {
		return nil, ErrForbidden
	}

	entry := &models.LedgerEntry{
		LeaseID:    leaseID,
		Kind:       models.EntryKindPayment,
		Amount:     amount,
		RecordedBy: ident.UserID,
	}
	return s.apply(ctx, leaseID, entry)
}

// Adjust records a landlord balance adjustment. Classification is purely
// sign-based: a positive delta becomes a charge, a negative one a credit.
// Only the landlord owning the unit behind the lease may adjust.
func (s *BalanceService) Adjust(ctx context.Context, leaseID uuid.UUID, delta int64, note string, ident models.Identity) (*models.LedgerView, error) {
	if delta == 0 {
		return nil, invalidf("delta", "adjustment must be nonzero")
	}

	lease, err := s.Leases.Get(ctx, leaseID)
	if err != nil {
		return nil, err
	}
	if ident.UserID != lease.LandlordID {
		return nil, ErrForbidden
	}

	kind := models.EntryKindCharge
	if delta < 0 {
		kind = models.EntryKindCredit
	}
	entry := &models.LedgerEntry{
		LeaseID:    leaseID,
		Kind:       kind,
		Amount:     delta,
		Note:       note,
		RecordedBy: ident.UserID,
	}
	return s.apply(ctx, leaseID, entry)
}

// PostMonthlyCharge charges one month's rent onto the lease.
func (s *BalanceService) PostMonthlyCharge(ctx context.Context, leaseID uuid.UUID, ident models.Identity) (*models.LedgerView, error) {
	lease, err := s.Leases.Get(ctx, leaseID)
	if err != nil {
		return nil, err
	}
	return s.Adjust(ctx, leaseID, lease.MonthlyRent, "Monthly rent", ident)
}

// GetLedger returns the lease plus its entries, newest first. Readable by
// the owning landlord and the lease's renter, nobody else.
func (s *BalanceService) GetLedger(ctx context.Context, leaseID uuid.UUID, ident models.Identity) (*models.LedgerView, error) {
	lease, err := s.Leases.Get(ctx, leaseID)
	if err != nil {
		return nil, err
	}
	if ident.UserID != lease.RenterID && ident.UserID != lease.LandlordID {
		return nil, ErrForbidden
	}

	entries, err := s.Ledger.ListByLease(ctx, leaseID)
	if err != nil {
		return nil, err
	}
	return &models.LedgerView{Lease: lease, Entries: entries}, nil
}

// apply writes the entry and its balance effect in one transaction and
// re-reads the ledger for the caller.
func (s *BalanceService) apply(ctx context.Context, leaseID uuid.UUID, entry *models.LedgerEntry) (*models.LedgerView, error) {
	updated, err := s.Ledger.ApplyEntry(ctx, leaseID, entry.BalanceEffect(), entry)
	if err != nil {
		return nil, err
	}

	metrics.LedgerEntriesTotal.WithLabelValues(string(entry.Kind)).Inc()

	if s.publisher != nil {
		if err := s.publisher.PublishEntryRecorded(ctx, updated, entry); err != nil {
			log.Printf("[Ledger] Failed to publish entry %s: %v", entry.ID, err)
		}
	}

	entries, err := s.Ledger.ListByLease(ctx, leaseID)
	if err != nil {
		return nil, err
	}
	return &models.LedgerView{Lease: updated, Entries: entries}, nil
}
