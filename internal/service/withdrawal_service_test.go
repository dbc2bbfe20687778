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

type mockWithdrawalRepo struct {
	mock.Mock
}

func (m *mockWithdrawalRepo) Create(ctx context.Context, req *models.WithdrawalRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *mockWithdrawalRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.WithdrawalRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WithdrawalRequest), args.Error(1)
}

func (m *mockWithdrawalRepo) ListBySeller(ctx context.Context, sellerID uuid.UUID, limit, offset int) ([]models.WithdrawalRequest, error) {
	args := m.Called(ctx, sellerID, limit, offset)
	return args.Get(0).([]models.WithdrawalRequest), args.Error(1)
}

type mockWithdrawalSellers struct {
	mock.Mock
}

func (m *mockWithdrawalSellers) GetByID(ctx context.Context, id uuid.UUID) (*models.Seller, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Seller), args.Error(1)
}

func bankSeller(id uuid.UUID) *models.Seller {
	return &models.Seller{
		ID:          id,
		Status:      models.SellerStatusActive,
		BankEnabled: true,
		BankName:    strPtr("Первый Банк"),
		BankAccount: strPtr("40817810000000000001"),
		BankHolder:  strPtr("Иванов Иван"),
	}
}

func TestWithdrawalService_Create_Bank(t *testing.T) {
	repo := new(mockWithdrawalRepo)
	sellers := new(mockWithdrawalSellers)
	svc := NewWithdrawalService(repo, sellers, nil)
	ctx := context.Background()
	sellerID := uuid.New()

	sellers.On("GetByID", ctx, sellerID).Return(bankSeller(sellerID), nil)
	repo.On("Create", ctx, mock.MatchedBy(func(req *models.WithdrawalRequest) bool {
		return req.SellerID == sellerID &&
			req.Amount == 100 &&
			req.Method == models.PayoutMethodBank &&
			req.BankName != nil && *req.BankName == "Первый Банк"
	})).Return(nil)

	req, err := svc.CreateWithdrawal(ctx, sellerID, 100, models.PayoutMethodBank)
	assert.NoError(t, err)
	assert.Equal(t, float64(100), req.Amount)
	repo.AssertExpectations(t)
}

func TestWithdrawalService_Create_BelowMinimum(t *testing.T) {
	repo := new(mockWithdrawalRepo)
	sellers := new(mockWithdrawalSellers)
	svc := NewWithdrawalService(repo, sellers, nil)

	_, err := svc.CreateWithdrawal(context.Background(), uuid.New(), 5, models.PayoutMethodBank)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "минимальная")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWithdrawalService_Create_BankNotConfigured(t *testing.T) {
	repo := new(mockWithdrawalRepo)
	sellers := new(mockWithdrawalSellers)
	svc := NewWithdrawalService(repo, sellers, nil)
	ctx := context.Background()
	sellerID := uuid.New()

	sellers.On("GetByID", ctx, sellerID).Return(&models.Seller{ID: sellerID}, nil)

	_, err := svc.CreateWithdrawal(ctx, sellerID, 100, models.PayoutMethodBank)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "не настроен")
}

func TestWithdrawalService_Create_CryptoMissingAddress(t *testing.T) {
	repo := new(mockWithdrawalRepo)
	sellers := new(mockWithdrawalSellers)
	svc := NewWithdrawalService(repo, sellers, nil)
	ctx := context.Background()
	sellerID := uuid.New()

	sellers.On("GetByID", ctx, sellerID).Return(&models.Seller{ID: sellerID, CryptoEnabled: true}, nil)

	_, err := svc.CreateWithdrawal(ctx, sellerID, 100, models.PayoutMethodCrypto)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "адрес")
}

func TestWithdrawalService_Create_UnknownMethod(t *testing.T) {
	repo := new(mockWithdrawalRepo)
	sellers := new(mockWithdrawalSellers)
	svc := NewWithdrawalService(repo, sellers, nil)
	ctx := context.Background()
	sellerID := uuid.New()

	sellers.On("GetByID", ctx, sellerID).Return(bankSeller(sellerID), nil)

	_, err := svc.CreateWithdrawal(ctx, sellerID, 100, "cash")
	assert.Error(t, err)
}

func TestWithdrawalService_Create_InsufficientFunds(t *testing.T) {
	repo := new(mockWithdrawalRepo)
	sellers := new(mockWithdrawalSellers)
	svc := NewWithdrawalService(repo, sellers, nil)
	ctx := context.Background()
	sellerID := uuid.New()

	sellers.On("GetByID", ctx, sellerID).Return(bankSeller(sellerID), nil)
	repo.On("Create", ctx, mock.Anything).Return(repository.ErrInsufficientFunds)

	_, err := svc.CreateWithdrawal(ctx, sellerID, 100, models.PayoutMethodBank)
	assert.ErrorIs(t, err, repository.ErrInsufficientFunds)
}

func TestWithdrawalService_Get_WrongSeller(t *testing.T) {
	repo := new(mockWithdrawalRepo)
	sellers := new(mockWithdrawalSellers)
	svc := NewWithdrawalService(repo, sellers, nil)
	ctx := context.Background()
	id := uuid.New()

	repo.On("GetByID", ctx, id).Return(&models.WithdrawalRequest{ID: id, SellerID: uuid.New()}, nil)

	_, err := svc.GetWithdrawal(ctx, uuid.New(), id)
	assert.Error(t, err)
}
