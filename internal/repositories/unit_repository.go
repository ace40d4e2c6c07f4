package repositories

import (
	"context"
	"errors"

	"rently-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UnitRepository struct {
	DB *pgxpool.Pool
}

func NewUnitRepository(db *pgxpool.Pool) *UnitRepository {
	return &UnitRepository{DB: db}
}

func (r *UnitRepository) Get(ctx context.Context, id uuid.UUID) (*models.Unit, error) {
	u := &models.Unit{}
	err := r.DB.QueryRow(ctx, `
		SELECT id, landlord_id, title, COALESCE(address, ''), advertised_rent,
		       COALESCE(stage, ''), created_at, updated_at
		FROM units
		WHERE id = $1
	`, id).Scan(&u.ID, &u.LandlordID, &u.Title, &u.Address, &u.AdvertisedRent,
		&u.Stage, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UnitRepository) Create(ctx context.Context, unit *models.Unit) error {
	return r.DB.QueryRow(ctx, `
		INSERT INTO units (landlord_id, title, address, advertised_rent, stage)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, unit.LandlordID, unit.Title, unit.Address, unit.AdvertisedRent, unit.Stage,
	).Scan(&unit.ID, &unit.CreatedAt, &unit.UpdatedAt)
}

func (r *UnitRepository) ListByLandlord(ctx context.Context, landlordID int) ([]models.Unit, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, landlord_id, title, COALESCE(address, ''), advertised_rent,
		       COALESCE(stage, ''), created_at, updated_at
		FROM units
		WHERE landlord_id = $1
		ORDER BY created_at DESC
	`, landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []models.Unit
	for rows.Next() {
		var u models.Unit
		if err := rows.Scan(&u.ID, &u.LandlordID, &u.Title, &u.Address, &u.AdvertisedRent,
			&u.Stage, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, rows.Err()
}
