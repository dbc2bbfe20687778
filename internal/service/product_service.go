package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/models"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/pricing"
)

// ProductServiceRepository описывает зависимости ProductService от хранилища.
type ProductServiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListAll(ctx context.Context) ([]models.Product, error)
	ListSellerProducts(ctx context.Context, sellerID uuid.UUID) ([]models.Product, error)
	ListSellerProductIDs(ctx context.Context, sellerID uuid.UUID) ([]uuid.UUID, error)
	AddToSeller(ctx context.Context, sellerID, productID uuid.UUID) error
	RemoveFromSeller(ctx context.Context, sellerID, productID uuid.UUID) error
}

// ProductService реализует работу продавца со своим инвентарём.
type ProductService struct {
	repo ProductServiceRepository
}

// NewProductService создаёт сервис инвентаря.
func NewProductService(repo ProductServiceRepository) *ProductService {
	return &ProductService{repo: repo}
}

// ListInventory возвращает товары магазина с расчётной прибылью по каждому.
func (s *ProductService) ListInventory(ctx context.Context, sellerID uuid.UUID) ([]models.ProductWithProfit, error) {
	products, err := s.repo.ListSellerProducts(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	result := make([]models.ProductWithProfit, 0, len(products))
	for _, p := range products {
		result = append(result, models.ProductWithProfit{
			Product: p,
			Profit:  pricing.ProductProfit(p.Price),
		})
	}
	return result, nil
}

// ListCandidates возвращает товары каталога, которых ещё нет в инвентаре.
// Исключение и фильтрация выполняются в памяти над полным списком.
func (s *ProductService) ListCandidates(ctx context.Context, sellerID uuid.UUID, search string) ([]models.Product, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	owned, err := s.repo.ListSellerProductIDs(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	candidates := ExcludeOwned(all, owned)
	if search == "" {
		return candidates, nil
	}

	// Поиск кандидатов переиспользует витринный матчер
	filtered := make([]models.Product, 0, len(candidates))
	for _, p := range candidates {
		cp := models.CachedProduct{
			Name:        p.Name,
			Description: p.Description,
			Category:    p.Category,
		}
		if matchesSearch(cp, normalizeQuery(search)) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// AddProduct добавляет существующий товар каталога в инвентарь магазина.
func (s *ProductService) AddProduct(ctx context.Context, sellerID, productID uuid.UUID) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.AddToSeller(ctx, sellerID, productID); err != nil {
		return nil, err
	}
	return product, nil
}

// RemoveProduct убирает товар из инвентаря магазина.
func (s *ProductService) RemoveProduct(ctx context.Context, sellerID, productID uuid.UUID) error {
	return s.repo.RemoveFromSeller(ctx, sellerID, productID)
}
