package repositories

import (
	"context"

	"rently-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type FavoriteRepository struct {
	DB *pgxpool.Pool
}

func NewFavoriteRepository(db *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int) ([]models.Favorite, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, user_id, listing_id, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []models.Favorite
	for rows.Next() {
		var f models.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.ListingID, &f.CreatedAt); err != nil {
			return nil, err
		}
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}

// Add is idempotent: saving the same listing twice keeps one row.
func (r *FavoriteRepository) Add(ctx context.Context, userID int, listingID string) (*models.Favorite, error) {
	f := &models.Favorite{UserID: userID, ListingID: listingID}
	err := r.DB.QueryRow(ctx, `
		INSERT INTO favorites (user_id, listing_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, listing_id) DO UPDATE SET listing_id = EXCLUDED.listing_id
		RETURNING id, created_at
	`, userID, listingID).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID int, listingID string) error {
	_, err := r.DB.Exec(ctx, `
		DELETE FROM favorites WHERE user_id = $1 AND listing_id = $2
	`, userID, listingID)
	return err
}
