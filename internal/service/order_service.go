package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/logger"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/metrics"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/models"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/pricing"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/repository"
)

// OrderServiceRepository описывает зависимости OrderService от слоя хранилища.
type OrderServiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID, status string, limit, offset int) ([]models.Order, error)
	ListStatusHistory(ctx context.Context, orderID uuid.UUID) ([]models.OrderStatusChange, error)
	Pick(ctx context.Context, orderID, sellerID uuid.UUID, totalProductPrice, additionalProfit, grandTotal float64) (*repository.PickResult, error)
	UpdateStatus(ctx context.Context, orderID, sellerID uuid.UUID, newStatus string) (*models.Order, error)
	Delete(ctx context.Context, orderID, sellerID uuid.UUID) error
}

// OrderNotifier доставляет уведомление продавцу.
type OrderNotifier interface {
	Notify(ctx context.Context, sellerID uuid.UUID, payload map[string]interface{}) error
}

// OrderService реализует операции продавца над заказами.
type OrderService struct {
	repo     OrderServiceRepository
	notifier OrderNotifier
	metrics  *metrics.StoreMetrics
}

// NewOrderService создаёт сервис заказов. notifier и metrics опциональны.
func NewOrderService(repo OrderServiceRepository, notifier OrderNotifier, m *metrics.StoreMetrics) *OrderService {
	return &OrderService{
		repo:     repo,
		notifier: notifier,
		metrics:  m,
	}
}

// GetOrder возвращает заказ продавца вместе с позициями.
func (s *OrderService) GetOrder(ctx context.Context, sellerID, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.SellerID != sellerID {
		return nil, repository.ErrOrderNotFound
	}
	return order, nil
}

// ListOrders возвращает заказы продавца, опционально отфильтрованные по статусу.
func (s *OrderService) ListOrders(ctx context.Context, sellerID uuid.UUID, status string, limit, offset int) ([]models.Order, error) {
	if status != "" && !models.ValidOrderStatuses[status] {
		return nil, fmt.Errorf("order service: неизвестный статус %q", status)
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListBySeller(ctx, sellerID, status, limit, offset)
}

// ListStatusHistory возвращает журнал статусов заказа продавца.
func (s *OrderService) ListStatusHistory(ctx context.Context, sellerID, orderID uuid.UUID) ([]models.OrderStatusChange, error) {
	if _, err := s.GetOrder(ctx, sellerID, orderID); err != nil {
		return nil, err
	}
	return s.repo.ListStatusHistory(ctx, orderID)
}

// PickOrder проводит расчёт по заказу: сумма позиций списывается из кошелька,
// сумма с наценкой уходит в ожидаемые поступления. Расчёт выполняется в одной
// транзакции хранилища, при нехватке средств ничего не меняется.
func (s *OrderService) PickOrder(ctx context.Context, sellerID, orderID uuid.UUID) (*repository.PickResult, error) {
	order, err := s.GetOrder(ctx, sellerID, orderID)
	if err != nil {
		return nil, err
	}

	b := pricing.Calculate(order.Items)

	result, err := s.repo.Pick(ctx, orderID, sellerID, b.TotalProductPrice, b.AdditionalProfit, b.GrandTotal)
	if err != nil {
		if s.metrics != nil {
			switch {
			case errors.Is(err, repository.ErrInsufficientFunds):
				s.metrics.RecordPickRejection("insufficient_funds")
			case errors.Is(err, repository.ErrInvalidTransition):
				s.metrics.RecordPickRejection("invalid_transition")
			}
		}
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordPick(b.TotalProductPrice)
	}

	s.notify(ctx, sellerID, map[string]interface{}{
		"type":            "order_picked",
		"order_id":        orderID.String(),
		"wallet_deducted": b.TotalProductPrice,
		"pending_added":   b.GrandTotal,
		"wallet_balance":  result.NewWalletBalance,
	})

	return result, nil
}

// UpdateOrderStatus переводит заказ в новый статус. Продавец не может
// закрыть заказ сам: запрошенный completed превращается в
// completion_requested, финальное подтверждение остаётся за администратором.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, sellerID, orderID uuid.UUID, requested string) (*models.Order, error) {
	if !models.ValidOrderStatuses[requested] {
		return nil, fmt.Errorf("order service: неизвестный статус %q", requested)
	}

	target := requested
	if requested == models.OrderStatusCompleted {
		target = models.OrderStatusCompletionRequested
	}

	order, err := s.repo.UpdateStatus(ctx, orderID, sellerID, target)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordStatusTransition(target)
	}

	if target == models.OrderStatusCompletionRequested {
		s.notify(ctx, sellerID, map[string]interface{}{
			"type":     "completion_requested",
			"order_id": orderID.String(),
			"message":  "Запрос на завершение заказа отправлен администратору",
		})
	}

	return order, nil
}

// DeleteOrder удаляет заказ продавца.
func (s *OrderService) DeleteOrder(ctx context.Context, sellerID, orderID uuid.UUID) error {
	return s.repo.Delete(ctx, orderID, sellerID)
}

// notify доставляет уведомление, не прерывая основную операцию при ошибке.
func (s *OrderService) notify(ctx context.Context, sellerID uuid.UUID, payload map[string]interface{}) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, sellerID, payload); err != nil && logger.Log != nil {
		logger.Log.WithFields(map[string]interface{}{
			"seller_id": sellerID,
			"error":     err.Error(),
		}).Warn("order service: не удалось доставить уведомление")
	}
}
