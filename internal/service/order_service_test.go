package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/models"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/repository"
)

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *mockOrderRepo) ListBySeller(ctx context.Context, sellerID uuid.UUID, status string, limit, offset int) ([]models.Order, error) {
	args := m.Called(ctx, sellerID, status, limit, offset)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *mockOrderRepo) ListStatusHistory(ctx context.Context, orderID uuid.UUID) ([]models.OrderStatusChange, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]models.OrderStatusChange), args.Error(1)
}

func (m *mockOrderRepo) Pick(ctx context.Context, orderID, sellerID uuid.UUID, totalProductPrice, additionalProfit, grandTotal float64) (*repository.PickResult, error) {
	args := m.Called(ctx, orderID, sellerID, totalProductPrice, additionalProfit, grandTotal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PickResult), args.Error(1)
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, orderID, sellerID uuid.UUID, newStatus string) (*models.Order, error) {
	args := m.Called(ctx, orderID, sellerID, newStatus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *mockOrderRepo) Delete(ctx context.Context, orderID, sellerID uuid.UUID) error {
	args := m.Called(ctx, orderID, sellerID)
	return args.Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(ctx context.Context, sellerID uuid.UUID, payload map[string]interface{}) error {
	args := m.Called(ctx, sellerID, payload)
	return args.Error(0)
}

func intPtr(v int) *int { return &v }

func TestOrderService_PickOrder_Success(t *testing.T) {
	repo := new(mockOrderRepo)
	svc := NewOrderService(repo, nil, nil)
	ctx := context.Background()
	sellerID := uuid.New()
	orderID := uuid.New()

	// Две позиции: 10.00 x2 и 5.00 x1 — итого 25.00, наценка 5.75, всего 30.75
	order := &models.Order{
		ID:       orderID,
		SellerID: sellerID,
		Status:   models.OrderStatusAssigned,
		Items: []models.OrderItem{
			{Name: "Кружка", Price: 10.00, Quantity: intPtr(2)},
			{Name: "Открытка", Price: 5.00, Quantity: intPtr(1)},
		},
	}
	repo.On("GetByID", ctx, orderID).Return(order, nil)

	picked := &models.Order{ID: orderID, SellerID: sellerID, Status: models.OrderStatusPicked}
	repo.On("Pick", ctx, orderID, sellerID, 25.00, 5.75, 30.75).Return(&repository.PickResult{
		Order:            picked,
		NewWalletBalance: 5.00,
		NewPendingAmount: 30.75,
	}, nil)

	result, err := svc.PickOrder(ctx, sellerID, orderID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPicked, result.Order.Status)
	assert.Equal(t, 5.00, result.NewWalletBalance)
	assert.Equal(t, 30.75, result.NewPendingAmount)
	repo.AssertExpectations(t)
}

func TestOrderService_PickOrder_MissingQuantityDefaultsToOne(t *testing.T) {
	repo := new(mockOrderRepo)
	svc := NewOrderService(repo, nil, nil)
	ctx := context.Background()
	sellerID := uuid.New()
	orderID := uuid.New()

	order := &models.Order{
		ID:       orderID,
		SellerID: sellerID,
		Status:   models.OrderStatusAssigned,
		Items: []models.OrderItem{
			{Name: "Плакат", Price: 4.00},
		},
	}
	repo.On("GetByID", ctx, orderID).Return(order, nil)
	repo.On("Pick", ctx, orderID, sellerID, 4.00, 0.92, 4.92).Return(&repository.PickResult{
		Order: &models.Order{ID: orderID, Status: models.OrderStatusPicked},
	}, nil)

	_, err := svc.PickOrder(ctx, sellerID, orderID)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestOrderService_PickOrder_InsufficientFunds(t *testing.T) {
	repo := new(mockOrderRepo)
	svc := NewOrderService(repo, nil, nil)
	ctx := context.Background()
	sellerID := uuid.New()
	orderID := uuid.New()

	order := &models.Order{
		ID:       orderID,
		SellerID: sellerID,
		Status:   models.OrderStatusAssigned,
		Items: []models.OrderItem{
			{Name: "Кружка", Price: 10.00, Quantity: intPtr(2)},
			{Name: "Открытка", Price: 5.00, Quantity: intPtr(1)},
		},
	}
	repo.On("GetByID", ctx, orderID).Return(order, nil)
	repo.On("Pick", ctx, orderID, sellerID, 25.00, 5.75, 30.75).
		Return(nil, repository.ErrInsufficientFunds)

	_, err := svc.PickOrder(ctx, sellerID, orderID)
	assert.ErrorIs(t, err, repository.ErrInsufficientFunds)
	repo.AssertExpectations(t)
}

func TestOrderService_PickOrder_WrongSeller(t *testing.T) {
	repo := new(mockOrderRepo)
	svc := NewOrderService(repo, nil, nil)
	ctx := context.Background()
	orderID := uuid.New()

	order := &models.Order{ID: orderID, SellerID: uuid.New(), Status: models.OrderStatusAssigned}
	repo.On("GetByID", ctx, orderID).Return(order, nil)

	_, err := svc.PickOrder(ctx, uuid.New(), orderID)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
	repo.AssertNotCalled(t, "Pick", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_PickOrder_NotifiesSeller(t *testing.T) {
	repo := new(mockOrderRepo)
	notifier := new(mockNotifier)
	svc := NewOrderService(repo, notifier, nil)
	ctx := context.Background()
	sellerID := uuid.New()
	orderID := uuid.New()

	order := &models.Order{
		ID:       orderID,
		SellerID: sellerID,
		Status:   models.OrderStatusAssigned,
		Items:    []models.OrderItem{{Name: "Кружка", Price: 10.00, Quantity: intPtr(1)}},
	}
	repo.On("GetByID", ctx, orderID).Return(order, nil)
	repo.On("Pick", ctx, orderID, sellerID, 10.00, 2.30, 12.30).Return(&repository.PickResult{
		Order: &models.Order{ID: orderID, Status: models.OrderStatusPicked},
	}, nil)
	notifier.On("Notify", ctx, sellerID, mock.MatchedBy(func(p map[string]interface{}) bool {
		return p["type"] == "order_picked"
	})).Return(nil)

	_, err := svc.PickOrder(ctx, sellerID, orderID)
	assert.NoError(t, err)
	notifier.AssertExpectations(t)
}

func TestOrderService_UpdateOrderStatus_CompletedBecomesRequest(t *testing.T) {
	repo := new(mockOrderRepo)
	notifier := new(mockNotifier)
	svc := NewOrderService(repo, notifier, nil)
	ctx := context.Background()
	sellerID := uuid.New()
	orderID := uuid.New()

	updated := &models.Order{ID: orderID, SellerID: sellerID, Status: models.OrderStatusCompletionRequested}
	repo.On("UpdateStatus", ctx, orderID, sellerID, models.OrderStatusCompletionRequested).Return(updated, nil)
	notifier.On("Notify", ctx, sellerID, mock.MatchedBy(func(p map[string]interface{}) bool {
		return p["type"] == "completion_requested"
	})).Return(nil)

	order, err := svc.UpdateOrderStatus(ctx, sellerID, orderID, models.OrderStatusCompleted)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompletionRequested, order.Status)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestOrderService_UpdateOrderStatus_InvalidTransition(t *testing.T) {
	repo := new(mockOrderRepo)
	svc := NewOrderService(repo, nil, nil)
	ctx := context.Background()
	sellerID := uuid.New()
	orderID := uuid.New()

	repo.On("UpdateStatus", ctx, orderID, sellerID, models.OrderStatusAssigned).
		Return(nil, repository.ErrInvalidTransition)

	_, err := svc.UpdateOrderStatus(ctx, sellerID, orderID, models.OrderStatusAssigned)
	assert.ErrorIs(t, err, repository.ErrInvalidTransition)
}

func TestOrderService_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	repo := new(mockOrderRepo)
	svc := NewOrderService(repo, nil, nil)

	_, err := svc.UpdateOrderStatus(context.Background(), uuid.New(), uuid.New(), "shipped")
	assert.Error(t, err)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_ListOrders_UnknownStatus(t *testing.T) {
	repo := new(mockOrderRepo)
	svc := NewOrderService(repo, nil, nil)

	_, err := svc.ListOrders(context.Background(), uuid.New(), "archived", 20, 0)
	assert.Error(t, err)
}

func TestOrderService_ListOrders_DefaultsLimit(t *testing.T) {
	repo := new(mockOrderRepo)
	svc := NewOrderService(repo, nil, nil)
	ctx := context.Background()
	sellerID := uuid.New()

	repo.On("ListBySeller", ctx, sellerID, "", 20, 0).Return([]models.Order{}, nil)

	_, err := svc.ListOrders(ctx, sellerID, "", 0, -5)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
