package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/models"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/validation"
)

// SellerServiceRepository описывает зависимости SellerService от хранилища.
type SellerServiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Seller, error)
	UpdateSettings(ctx context.Context, id uuid.UUID, upd models.SellerSettingsUpdate) (*models.Seller, error)
}

// SellerService реализует профиль и настройки магазина.
type SellerService struct {
	repo SellerServiceRepository
}

// NewSellerService создаёт сервис профиля продавца.
func NewSellerService(repo SellerServiceRepository) *SellerService {
	return &SellerService{repo: repo}
}

// GetProfile возвращает продавца с балансами и настройками.
func (s *SellerService) GetProfile(ctx context.Context, sellerID uuid.UUID) (*models.Seller, error) {
	return s.repo.GetByID(ctx, sellerID)
}

// UpdateSettings применяет частичное обновление настроек магазина.
func (s *SellerService) UpdateSettings(ctx context.Context, sellerID uuid.UUID, upd models.SellerSettingsUpdate) (*models.Seller, error) {
	if upd.ShopName != nil {
		if err := validation.ValidateShopName(*upd.ShopName); err != nil {
			return nil, fmt.Errorf("seller service: %w", err)
		}
	}
	if upd.Bio != nil {
		if err := validation.ValidateLength("описание магазина", *upd.Bio, 0, validation.MaxBioLength); err != nil {
			return nil, fmt.Errorf("seller service: %w", err)
		}
	}
	if upd.BankEnabled != nil && *upd.BankEnabled {
		if upd.BankName == nil || upd.BankAccount == nil || upd.BankHolder == nil {
			return nil, fmt.Errorf("seller service: для банковских выплат нужны банк, счёт и получатель")
		}
	}
	if upd.CryptoEnabled != nil && *upd.CryptoEnabled && upd.CryptoAddress == nil {
		return nil, fmt.Errorf("seller service: для криптовалютных выплат нужен адрес кошелька")
	}

	return s.repo.UpdateSettings(ctx, sellerID, upd)
}
