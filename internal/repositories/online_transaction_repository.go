package repositories

import (
	"context"
	"errors"
	"fmt"

	"rently-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OnlineTransactionRepository struct {
	DB *pgxpool.Pool
}

func NewOnlineTransactionRepository(db *pgxpool.Pool) *OnlineTransactionRepository {
	return &OnlineTransactionRepository{DB: db}
}

func (r *OnlineTransactionRepository) Create(ctx context.Context, tx *models.OnlineTransaction) error {
	return r.DB.QueryRow(ctx, `
		INSERT INTO online_transactions (razorpay_order_id, lease_id, renter_id, amount, status)
		VALUES ($1, $2, $3, $4, 'created')
		RETURNING id, status, created_at, updated_at
	`, tx.RazorpayOrderID, tx.LeaseID, tx.RenterID, tx.Amount,
	).Scan(&tx.ID, &tx.Status, &tx.CreatedAt, &tx.UpdatedAt)
}

func (r *OnlineTransactionRepository) GetByOrderID(ctx context.Context, orderID string) (*models.OnlineTransaction, error) {
	tx := &models.OnlineTransaction{}
	err := r.DB.QueryRow(ctx, `
		SELECT id, razorpay_order_id, COALESCE(razorpay_payment_id, ''), lease_id, renter_id,
		       amount, status, COALESCE(failure_reason, ''), created_at, updated_at
		FROM online_transactions
		WHERE razorpay_order_id = $1
	`, orderID).Scan(&tx.ID, &tx.RazorpayOrderID, &tx.RazorpayPaymentID, &tx.LeaseID, &tx.RenterID,
		&tx.Amount, &tx.Status, &tx.FailureReason, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return tx, nil
}

func (r *OnlineTransactionRepository) MarkSuccess(ctx context.Context, orderID, paymentID string) error {
	tag, err := r.DB.Exec(ctx, `
		UPDATE online_transactions
		SET status = 'success', razorpay_payment_id = $2, updated_at = NOW()
		WHERE razorpay_order_id = $1 AND status = 'created'
	`, orderID, paymentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %s not in created state", orderID)
	}
	return nil
}

func (r *OnlineTransactionRepository) MarkFailed(ctx context.Context, orderID, reason string) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE online_transactions
		SET status = 'failed', failure_reason = $2, updated_at = NOW()
		WHERE razorpay_order_id = $1
	`, orderID, reason)
	return err
}
