package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/models"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/repository/common"
)

var ErrWithdrawalNotFound = errors.New("withdrawal request not found")

type WithdrawalRepository struct {
	db *sqlx.DB
}

func NewWithdrawalRepository(db *sqlx.DB) *WithdrawalRepository {
	return &WithdrawalRepository{db: db}
}

// Create создаёт заявку на вывод и резервирует сумму из кошелька продавца.
// Проверка и списание идут под блокировкой строки продавца.
func (r *WithdrawalRepository) Create(ctx context.Context, req *models.WithdrawalRequest) error {
	return common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		var wallet float64
		if err := tx.QueryRowxContext(ctx, `
			SELECT wallet_balance FROM sellers WHERE id = $1 FOR UPDATE
		`, req.SellerID).Scan(&wallet); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrSellerNotFound
			}
			return err
		}

		if wallet < req.Amount {
			return ErrInsufficientFunds
		}

		if _, err := tx.ExecContext(ctx, `
			UPDATE sellers SET wallet_balance = wallet_balance - $2, updated_at = NOW() WHERE id = $1
		`, req.SellerID, req.Amount); err != nil {
			return err
		}

		if err := tx.QueryRowxContext(ctx, `
			INSERT INTO withdrawal_requests (seller_id, amount, method, bank_name, bank_account, bank_holder, crypto_address, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id, created_at
		`, req.SellerID, req.Amount, req.Method, req.BankName, req.BankAccount, req.BankHolder,
			req.CryptoAddress, models.WithdrawalStatusPending,
		).Scan(&req.ID, &req.CreatedAt); err != nil {
			return fmt.Errorf("withdrawal repository: create %w", err)
		}
		req.Status = models.WithdrawalStatusPending

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO transactions (seller_id, type, amount, description)
			VALUES ($1, $2, $3, $4)
		`, req.SellerID, models.TransactionTypeWithdrawal, req.Amount, "Заявка на вывод средств"); err != nil {
			return fmt.Errorf("withdrawal repository: ledger row %w", err)
		}

		return nil
	})
}

// GetByID возвращает заявку по идентификатору.
func (r *WithdrawalRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.WithdrawalRequest, error) {
	return common.GetByID[models.WithdrawalRequest](ctx, r.db, "withdrawal_requests", id, ErrWithdrawalNotFound)
}

// ListBySeller возвращает заявки продавца (новые первыми).
func (r *WithdrawalRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID, limit, offset int) ([]models.WithdrawalRequest, error) {
	var requests []models.WithdrawalRequest
	err := r.db.SelectContext(ctx, &requests, `
		SELECT * FROM withdrawal_requests WHERE seller_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3
	`, sellerID, limit, offset)
	return requests, err
}

// Stats возвращает сумму одобренных выводов и число заявок в ожидании.
func (r *WithdrawalRepository) Stats(ctx context.Context, sellerID uuid.UUID) (totalApproved float64, pendingCount int, err error) {
	err = r.db.QueryRowxContext(ctx, `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE status = $2), 0),
			COUNT(*) FILTER (WHERE status = $3)
		FROM withdrawal_requests WHERE seller_id = $1
	`, sellerID, models.WithdrawalStatusApproved, models.WithdrawalStatusPending).Scan(&totalApproved, &pendingCount)
	if err != nil {
		return 0, 0, fmt.Errorf("withdrawal repository: stats %w", err)
	}
	return totalApproved, pendingCount, nil
}

// UpdateStatus фиксирует решение по заявке (вызывается внешним админским процессом).
func (r *WithdrawalRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, rejectionReason *string) error {
	now := time.Now()
	res, err := r.db.ExecContext(ctx, `
		UPDATE withdrawal_requests SET status = $2, rejection_reason = $3, processed_at = $4 WHERE id = $1
	`, id, status, rejectionReason, now)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrWithdrawalNotFound
	}
	return nil
}
