package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/models"
)

// TransactionRepository читает леджер движений средств.
// Записи создают репозитории заказов и выводов внутри своих транзакций.
type TransactionRepository struct {
	db *sqlx.DB
}

func NewTransactionRepository(db *sqlx.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// ListBySeller возвращает историю движений средств продавца.
func (r *TransactionRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID, limit, offset int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.db.SelectContext(ctx, &transactions, `
		SELECT * FROM transactions WHERE seller_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3
	`, sellerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("transaction repository: list by seller %w", err)
	}
	return transactions, nil
}

// CountBySeller возвращает количество записей леджера продавца.
func (r *TransactionRepository) CountBySeller(ctx context.Context, sellerID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM transactions WHERE seller_id = $1`, sellerID)
	return count, err
}
