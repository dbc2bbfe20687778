package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/cache"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/dto"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/logger"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/models"
)

// dashboardCacheTTL — время жизни сводки в кэше. Сводка агрегирует несколько
// запросов к базе, короткий TTL снимает нагрузку при частых обновлениях страницы.
const dashboardCacheTTL = 30 * time.Second

// DashboardSellerRepository отдаёт продавца для сводки.
type DashboardSellerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Seller, error)
}

// DashboardOrderRepository отдаёт агрегаты заказов.
type DashboardOrderRepository interface {
	CountByStatus(ctx context.Context, sellerID uuid.UUID) (map[string]int, error)
}

// DashboardProductRepository отдаёт инвентарь продавца.
type DashboardProductRepository interface {
	ListSellerProductIDs(ctx context.Context, sellerID uuid.UUID) ([]uuid.UUID, error)
}

// DashboardWithdrawalRepository отдаёт агрегаты выводов.
type DashboardWithdrawalRepository interface {
	Stats(ctx context.Context, sellerID uuid.UUID) (totalApproved float64, pendingCount int, err error)
}

// DashboardNotificationRepository отдаёт счётчик непрочитанного.
type DashboardNotificationRepository interface {
	CountUnread(ctx context.Context, sellerID uuid.UUID) (int, error)
}

// DashboardTransactionRepository читает леджер движений средств.
type DashboardTransactionRepository interface {
	ListBySeller(ctx context.Context, sellerID uuid.UUID, limit, offset int) ([]models.Transaction, error)
	CountBySeller(ctx context.Context, sellerID uuid.UUID) (int, error)
}

// DashboardService собирает сводку личного кабинета продавца.
type DashboardService struct {
	sellers       DashboardSellerRepository
	orders        DashboardOrderRepository
	products      DashboardProductRepository
	withdrawals   DashboardWithdrawalRepository
	notifications DashboardNotificationRepository
	transactions  DashboardTransactionRepository
	store         cache.Store
}

// NewDashboardService создаёт сервис сводки.
func NewDashboardService(
	sellers DashboardSellerRepository,
	orders DashboardOrderRepository,
	products DashboardProductRepository,
	withdrawals DashboardWithdrawalRepository,
	notifications DashboardNotificationRepository,
	transactions DashboardTransactionRepository,
	store cache.Store,
) *DashboardService {
	return &DashboardService{
		sellers:       sellers,
		orders:        orders,
		products:      products,
		withdrawals:   withdrawals,
		notifications: notifications,
		transactions:  transactions,
		store:         store,
	}
}

// GetSummary возвращает сводку кабинета, отдавая кэшированную при наличии.
func (s *DashboardService) GetSummary(ctx context.Context, sellerID uuid.UUID) (*dto.DashboardSummaryResponse, error) {
	cacheKey := fmt.Sprintf("dashboard_summary_%s", sellerID)

	var cached dto.DashboardSummaryResponse
	if found, err := s.store.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	seller, err := s.sellers.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	ordersByStatus, err := s.orders.CountByStatus(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	totalOrders := 0
	for _, n := range ordersByStatus {
		totalOrders += n
	}

	productIDs, err := s.products.ListSellerProductIDs(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	totalWithdrawn, pendingPayouts, err := s.withdrawals.Stats(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	unread, err := s.notifications.CountUnread(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	summary := &dto.DashboardSummaryResponse{
		WalletBalance:  seller.WalletBalance,
		PendingAmount:  seller.PendingAmount,
		TotalOrders:    totalOrders,
		OrdersByStatus: ordersByStatus,
		ProductCount:   len(productIDs),
		UnreadCount:    unread,
		TotalWithdrawn: totalWithdrawn,
		PendingPayouts: pendingPayouts,
	}

	if err := s.store.Set(ctx, cacheKey, summary, dashboardCacheTTL); err != nil && logger.Log != nil {
		logger.Log.WithField("error", err.Error()).Warn("dashboard: сводка не закэширована")
	}

	return summary, nil
}

// ListTransactions возвращает страницу леджера и метаданные пагинации.
func (s *DashboardService) ListTransactions(ctx context.Context, sellerID uuid.UUID, limit, offset int) (*dto.PaginatedTransactionsResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	transactions, err := s.transactions.ListBySeller(ctx, sellerID, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.transactions.CountBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	return &dto.PaginatedTransactionsResponse{
		Data: transactions,
		Pagination: dto.Pagination{
			Total:   total,
			Limit:   limit,
			Offset:  offset,
			HasMore: offset+len(transactions) < total,
		},
	}, nil
}
