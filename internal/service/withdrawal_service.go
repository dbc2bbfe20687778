package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/metrics"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/models"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/validation"
)

// WithdrawalServiceRepository описывает зависимости WithdrawalService от хранилища.
type WithdrawalServiceRepository interface {
	Create(ctx context.Context, req *models.WithdrawalRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.WithdrawalRequest, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID, limit, offset int) ([]models.WithdrawalRequest, error)
}

// WithdrawalSellerRepository отдаёт реквизиты продавца для заявки.
type WithdrawalSellerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Seller, error)
}

// WithdrawalService реализует заявки на вывод средств. Заявка замораживает
// сумму сразу, решение по ней принимает внешний админский процесс.
type WithdrawalService struct {
	repo    WithdrawalServiceRepository
	sellers WithdrawalSellerRepository
	metrics *metrics.StoreMetrics
}

// NewWithdrawalService создаёт сервис выводов. metrics опционален.
func NewWithdrawalService(repo WithdrawalServiceRepository, sellers WithdrawalSellerRepository, m *metrics.StoreMetrics) *WithdrawalService {
	return &WithdrawalService{
		repo:    repo,
		sellers: sellers,
		metrics: m,
	}
}

// CreateWithdrawal создаёт заявку на вывод. Реквизиты берутся из настроек
// продавца: для банковского способа обязательны банк, счёт и получатель,
// для криптовалютного — адрес кошелька.
func (s *WithdrawalService) CreateWithdrawal(ctx context.Context, sellerID uuid.UUID, amount float64, method string) (*models.WithdrawalRequest, error) {
	if amount < validation.MinWithdrawal {
		return nil, fmt.Errorf("withdrawal service: минимальная сумма вывода %.2f", validation.MinWithdrawal)
	}
	if amount > validation.MaxWithdrawal {
		return nil, fmt.Errorf("withdrawal service: максимальная сумма вывода %.2f", validation.MaxWithdrawal)
	}

	seller, err := s.sellers.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	req := &models.WithdrawalRequest{
		SellerID: sellerID,
		Amount:   amount,
		Method:   method,
	}

	switch method {
	case models.PayoutMethodBank:
		if !seller.BankEnabled {
			return nil, fmt.Errorf("withdrawal service: банковский способ выплат не настроен")
		}
		if seller.BankName == nil || seller.BankAccount == nil || seller.BankHolder == nil {
			return nil, fmt.Errorf("withdrawal service: заполните банковские реквизиты в настройках")
		}
		req.BankName = seller.BankName
		req.BankAccount = seller.BankAccount
		req.BankHolder = seller.BankHolder
	case models.PayoutMethodCrypto:
		if !seller.CryptoEnabled {
			return nil, fmt.Errorf("withdrawal service: криптовалютный способ выплат не настроен")
		}
		if seller.CryptoAddress == nil {
			return nil, fmt.Errorf("withdrawal service: укажите адрес кошелька в настройках")
		}
		req.CryptoAddress = seller.CryptoAddress
	default:
		return nil, fmt.Errorf("withdrawal service: неизвестный способ выплаты %q", method)
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordWithdrawal(amount)
	}
	return req, nil
}

// GetWithdrawal возвращает заявку продавца.
func (s *WithdrawalService) GetWithdrawal(ctx context.Context, sellerID, id uuid.UUID) (*models.WithdrawalRequest, error) {
	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.SellerID != sellerID {
		return nil, fmt.Errorf("withdrawal service: заявка не найдена")
	}
	return req, nil
}

// ListWithdrawals возвращает заявки продавца.
func (s *WithdrawalService) ListWithdrawals(ctx context.Context, sellerID uuid.UUID, limit, offset int) ([]models.WithdrawalRequest, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListBySeller(ctx, sellerID, limit, offset)
}
