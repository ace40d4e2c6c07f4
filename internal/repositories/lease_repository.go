package repositories

import (
	"context"
	"errors"

	"rently-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LeaseRepository struct {
	DB *pgxpool.Pool
}

func NewLeaseRepository(db *pgxpool.Pool) *LeaseRepository {
	return &LeaseRepository{DB: db}
}

// Every lease read joins the owning unit so LandlordID is always set;
// authorization in the balance engine depends on it.
const leaseColumns = `
	l.id, l.unit_id, l.renter_id, l.monthly_rent, l.due_day,
	l.start_date, l.occupants_count, l.active, l.balance,
	l.created_at, l.updated_at, u.landlord_id
`

func scanLease(row pgx.Row) (*models.Lease, error) {
	lease := &models.Lease{}
	err := row.Scan(
		&lease.ID, &lease.UnitID, &lease.RenterID, &lease.MonthlyRent, &lease.DueDay,
		&lease.StartDate, &lease.OccupantsCount, &lease.Active, &lease.Balance,
		&lease.CreatedAt, &lease.UpdatedAt, &lease.LandlordID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return lease, nil
}

func (r *LeaseRepository) Get(ctx context.Context, id uuid.UUID) (*models.Lease, error) {
	return scanLease(r.DB.QueryRow(ctx, `
		SELECT `+leaseColumns+`
		FROM leases l JOIN units u ON u.id = l.unit_id
		WHERE l.id = $1
	`, id))
}

func (r *LeaseRepository) Create(ctx context.Context, lease *models.Lease) error {
	return r.DB.QueryRow(ctx, `
		INSERT INTO leases (unit_id, renter_id, monthly_rent, due_day, start_date, occupants_count, active, balance)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0)
		RETURNING id, balance, created_at, updated_at
	`, lease.UnitID, lease.RenterID, lease.MonthlyRent, lease.DueDay,
		lease.StartDate, lease.OccupantsCount, lease.Active,
	).Scan(&lease.ID, &lease.Balance, &lease.CreatedAt, &lease.UpdatedAt)
}

func (r *LeaseRepository) GetActiveByUnit(ctx context.Context, unitID uuid.UUID) (*models.Lease, error) {
	return scanLease(r.DB.QueryRow(ctx, `
		SELECT `+leaseColumns+`
		FROM leases l JOIN units u ON u.id = l.unit_id
		WHERE l.unit_id = $1 AND l.active = TRUE
	`, unitID))
}

func (r *LeaseRepository) ListByRenter(ctx context.Context, renterID int) ([]models.Lease, error) {
	return r.list(ctx, `
		SELECT `+leaseColumns+`
		FROM leases l JOIN units u ON u.id = l.unit_id
		WHERE l.renter_id = $1
		ORDER BY l.created_at DESC
	`, renterID)
}

func (r *LeaseRepository) LatestByRenter(ctx context.Context, renterID int) (*models.Lease, error) {
	return scanLease(r.DB.QueryRow(ctx, `
		SELECT `+leaseColumns+`
		FROM leases l JOIN units u ON u.id = l.unit_id
		WHERE l.renter_id = $1
		ORDER BY l.created_at DESC
		LIMIT 1
	`, renterID))
}

func (r *LeaseRepository) ListByLandlord(ctx context.Context, landlordID int) ([]models.Lease, error) {
	return r.list(ctx, `
		SELECT `+leaseColumns+`
		FROM leases l JOIN units u ON u.id = l.unit_id
		WHERE u.landlord_id = $1
		ORDER BY l.created_at DESC
	`, landlordID)
}

func (r *LeaseRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.Lease, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leases []models.Lease
	for rows.Next() {
		lease, err := scanLease(rows)
		if err != nil {
			return nil, err
		}
		leases = append(leases, *lease)
	}
	return leases, rows.Err()
}
