package repositories

import (
	"context"
	"errors"

	"rently-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

const userColumns = `
	id, name, email, COALESCE(phone, ''), password_hash, role,
	COALESCE(totp_secret, ''), totp_enabled, is_active, created_at, updated_at
`

func scanUser(row pgx.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.Role,
		&u.TOTPSecret, &u.TOTPEnabled, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) Get(ctx context.Context, id int) (*models.User, error) {
	return scanUser(r.DB.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return scanUser(r.DB.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.DB.QueryRow(ctx, `
		INSERT INTO users (name, email, phone, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING id, is_active, created_at, updated_at
	`, user.Name, user.Email, user.Phone, user.PasswordHash, user.Role,
	).Scan(&user.ID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)
}

// Count returns the number of user rows; the seeder uses it to detect a
// fresh database.
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

func (r *UserRepository) SetTOTPSecret(ctx context.Context, userID int, secret string) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE users SET totp_secret = $2, totp_enabled = FALSE, updated_at = NOW()
		WHERE id = $1
	`, userID, secret)
	return err
}

func (r *UserRepository) EnableTOTP(ctx context.Context, userID int) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE users SET totp_enabled = TRUE, updated_at = NOW()
		WHERE id = $1
	`, userID)
	return err
}
