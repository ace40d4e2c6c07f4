package repositories

import (
	"context"
	"errors"
	"fmt"

	"rently-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LedgerRepository struct {
	DB *pgxpool.Pool
}

func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{DB: db}
}

// ApplyEntry updates the lease balance and appends the entry in a single
// transaction. Either both land or neither does; a reader can never see an
// entry without its balance effect or the other way round.
func (r *LedgerRepository) ApplyEntry(ctx context.Context, leaseID uuid.UUID, delta int64, entry *models.LedgerEntry) (*models.Lease, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	lease := &models.Lease{}
	err = tx.QueryRow(ctx, `
		UPDATE leases l
		SET balance = balance + $2, updated_at = NOW()
		FROM units u
		WHERE l.id = $1 AND u.id = l.unit_id
		RETURNING l.id, l.unit_id, l.renter_id, l.monthly_rent, l.due_day,
			l.start_date, l.occupants_count, l.active, l.balance,
			l.created_at, l.updated_at, u.landlord_id
	`, leaseID, delta).Scan(
		&lease.ID, &lease.UnitID, &lease.RenterID, &lease.MonthlyRent, &lease.DueDay,
		&lease.StartDate, &lease.OccupantsCount, &lease.Active, &lease.Balance,
		&lease.CreatedAt, &lease.UpdatedAt, &lease.LandlordID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update lease balance: %w", err)
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO ledger_entries (lease_id, kind, amount, note, recorded_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, entry.LeaseID, entry.Kind, entry.Amount, entry.Note, entry.RecordedBy,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to append ledger entry: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit ledger entry: %w", err)
	}
	return lease, nil
}

// ListByLease returns all entries for a lease, newest first.
func (r *LedgerRepository) ListByLease(ctx context.Context, leaseID uuid.UUID) ([]models.LedgerEntry, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, lease_id, kind, amount, COALESCE(note, ''), recorded_by, created_at
		FROM ledger_entries
		WHERE lease_id = $1
		ORDER BY created_at DESC, id DESC
	`, leaseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.LedgerEntry
	for rows.Next() {
		var e models.LedgerEntry
		if err := rows.Scan(&e.ID, &e.LeaseID, &e.Kind, &e.Amount, &e.Note, &e.RecordedBy, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetEntry returns a single entry by id.
func (r *LedgerRepository) GetEntry(ctx context.Context, id uuid.UUID) (*models.LedgerEntry, error) {
	e := &models.LedgerEntry{}
	err := r.DB.QueryRow(ctx, `
		SELECT id, lease_id, kind, amount, COALESCE(note, ''), recorded_by, created_at
		FROM ledger_entries
		WHERE id = $1
	`, id).Scan(&e.ID, &e.LeaseID, &e.Kind, &e.Amount, &e.Note, &e.RecordedBy, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}
