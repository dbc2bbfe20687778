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

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type OrderRepository struct {
	db *sqlx.DB
}

func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// GetByID возвращает заказ вместе с позициями.
func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := common.GetByID[models.Order](ctx, r.db, "orders", id, ErrOrderNotFound)
	if err != nil {
		return nil, err
	}

	if err := r.db.SelectContext(ctx, &order.Items, `
		SELECT * FROM order_items WHERE order_id = $1 ORDER BY id
	`, id); err != nil {
		return nil, fmt.Errorf("order repository: load items %w", err)
	}

	return order, nil
}

// ListBySeller возвращает заказы продавца (новые первыми), опционально по статусу.
func (r *OrderRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID, status string, limit, offset int) ([]models.Order, error) {
	query := `SELECT * FROM orders WHERE seller_id = $1`
	args := []interface{}{sellerID}
	idx := 2

	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, status)
		idx++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, limit, offset)

	var orders []models.Order
	if err := r.db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("order repository: list by seller %w", err)
	}
	return orders, nil
}

// CountByStatus возвращает количество заказов продавца по каждому статусу.
func (r *OrderRepository) CountByStatus(ctx context.Context, sellerID uuid.UUID) (map[string]int, error) {
	rows, err := r.db.QueryxContext(ctx, `
		SELECT status, COUNT(*) FROM orders WHERE seller_id = $1 GROUP BY status
	`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("order repository: count by status %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// ListStatusHistory возвращает журнал смен статусов заказа.
func (r *OrderRepository) ListStatusHistory(ctx context.Context, orderID uuid.UUID) ([]models.OrderStatusChange, error) {
	var history []models.OrderStatusChange
	err := r.db.SelectContext(ctx, &history, `
		SELECT * FROM order_status_history WHERE order_id = $1 ORDER BY changed_at, id
	`, orderID)
	return history, err
}

// PickResult — итог успешного расчёта по заказу.
type PickResult struct {
	Order            *models.Order
	NewWalletBalance float64
	NewPendingAmount float64
}

// Pick проводит расчёт по заказу одной транзакцией: блокирует строку продавца,
// проверяет достаточность кошелька, двигает балансы, переводит заказ в picked,
// пишет разбивку сумм, журнал статусов и строку леджера. Частичное применение
// невозможно: любая ошибка откатывает всё.
func (r *OrderRepository) Pick(ctx context.Context, orderID, sellerID uuid.UUID, totalProductPrice, additionalProfit, grandTotal float64) (*PickResult, error) {
	var result PickResult

	err := common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		var order models.Order
		if err := tx.GetContext(ctx, &order, `SELECT * FROM orders WHERE id = $1 FOR UPDATE`, orderID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrOrderNotFound
			}
			return err
		}

		if order.SellerID != sellerID {
			return ErrOrderNotFound
		}

		if !models.CanTransitionOrder(order.Status, models.OrderStatusPicked) {
			return ErrInvalidTransition
		}

		var wallet, pending float64
		if err := tx.QueryRowxContext(ctx, `
			SELECT wallet_balance, pending_amount FROM sellers WHERE id = $1 FOR UPDATE
		`, sellerID).Scan(&wallet, &pending); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrSellerNotFound
			}
			return err
		}

		if wallet < totalProductPrice {
			return ErrInsufficientFunds
		}

		result.NewWalletBalance = wallet - totalProductPrice
		result.NewPendingAmount = pending + grandTotal

		if _, err := tx.ExecContext(ctx, `
			UPDATE sellers
			SET wallet_balance = $2, pending_amount = $3, updated_at = NOW()
			WHERE id = $1
		`, sellerID, result.NewWalletBalance, result.NewPendingAmount); err != nil {
			return fmt.Errorf("update seller balances: %w", err)
		}

		prevStatus := order.Status
		if err := tx.GetContext(ctx, &order, `
			UPDATE orders
			SET status = $2, wallet_deducted = $3, pending_added = $4, additional_profit = $5, updated_at = NOW()
			WHERE id = $1
			RETURNING *
		`, orderID, models.OrderStatusPicked, totalProductPrice, grandTotal, additionalProfit); err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		if err := appendStatusHistory(ctx, tx, orderID, prevStatus, models.OrderStatusPicked); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO transactions (seller_id, order_id, type, amount, description)
			VALUES ($1, $2, $3, $4, $5)
		`, sellerID, orderID, models.TransactionTypeOrderPick, totalProductPrice,
			fmt.Sprintf("Расчёт по заказу: списано %.2f, в ожидание %.2f", totalProductPrice, grandTotal),
		); err != nil {
			return fmt.Errorf("insert ledger row: %w", err)
		}

		result.Order = &order
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// UpdateStatus переводит заказ в новый статус с проверкой по таблице переходов
// и записью в журнал. Балансы не трогает — это дело Pick.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID, sellerID uuid.UUID, newStatus string) (*models.Order, error) {
	var updated models.Order

	err := common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		var order models.Order
		if err := tx.GetContext(ctx, &order, `SELECT * FROM orders WHERE id = $1 FOR UPDATE`, orderID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrOrderNotFound
			}
			return err
		}

		if order.SellerID != sellerID {
			return ErrOrderNotFound
		}

		if !models.CanTransitionOrder(order.Status, newStatus) {
			return ErrInvalidTransition
		}

		if err := tx.GetContext(ctx, &updated, `
			UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1 RETURNING *
		`, orderID, newStatus); err != nil {
			return fmt.Errorf("update order status: %w", err)
		}

		return appendStatusHistory(ctx, tx, orderID, order.Status, newStatus)
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Delete удаляет заказ продавца вместе с позициями и журналом.
func (r *OrderRepository) Delete(ctx context.Context, orderID, sellerID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1 AND seller_id = $2`, orderID, sellerID)
	if err != nil {
		return fmt.Errorf("order repository: delete %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// Create создаёт заказ с позициями (используется сидированием и внешними вставками).
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	return common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		status := order.Status
		if status == "" {
			status = models.OrderStatusPending
		}

		if err := tx.QueryRowxContext(ctx, `
			INSERT INTO orders (seller_id, customer_name, customer_email, status, total, assigned_by_admin, assigned_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at, updated_at
		`, order.SellerID, order.CustomerName, order.CustomerEmail, status, order.Total,
			order.AssignedByAdmin, order.AssignedAt,
		).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
			return fmt.Errorf("order repository: create %w", err)
		}
		order.Status = status

		for i := range order.Items {
			item := &order.Items[i]
			item.OrderID = order.ID
			if err := tx.QueryRowxContext(ctx, `
				INSERT INTO order_items (order_id, product_id, name, price, quantity, cost)
				VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING id
			`, order.ID, item.ProductID, item.Name, item.Price, item.Quantity, item.Cost).Scan(&item.ID); err != nil {
				return fmt.Errorf("order repository: create item %w", err)
			}
		}

		return nil
	})
}

// appendStatusHistory пишет строку журнала в рамках текущей транзакции.
func appendStatusHistory(ctx context.Context, tx *sqlx.Tx, orderID uuid.UUID, from, to string) error {
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO order_status_history (order_id, from_status, to_status, changed_at)
		VALUES ($1, $2, $3, $4)
	`, orderID, from, to, time.Now()); err != nil {
		return fmt.Errorf("append status history: %w", err)
	}
	return nil
}
