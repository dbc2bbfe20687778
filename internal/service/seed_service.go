package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/models"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/repository"
)

// SeedService генерирует фейковые данные для тестирования витрины.
type SeedService struct {
	sellerRepo     *repository.SellerRepository
	productRepo    *repository.ProductRepository
	orderRepo      *repository.OrderRepository
	withdrawalRepo *repository.WithdrawalRepository
}

// NewSeedService создаёт сервис генерации данных.
func NewSeedService(sellerRepo *repository.SellerRepository, productRepo *repository.ProductRepository, orderRepo *repository.OrderRepository, withdrawalRepo *repository.WithdrawalRepository) *SeedService {
	return &SeedService{
		sellerRepo:     sellerRepo,
		productRepo:    productRepo,
		orderRepo:      orderRepo,
		withdrawalRepo: withdrawalRepo,
	}
}

// SeedData генерирует продавцов с товарами и закреплёнными заказами.
func (s *SeedService) SeedData(ctx context.Context, numSellers, numProducts, numOrders int) error {
	sellers, err := s.generateSellers(ctx, numSellers)
	if err != nil {
		return fmt.Errorf("seed service: не удалось создать продавцов: %w", err)
	}

	products, err := s.generateProducts(ctx, numProducts)
	if err != nil {
		return fmt.Errorf("seed service: не удалось создать товары: %w", err)
	}

	// Раздаём товары по магазинам, часть позиций кросс-листингуется
	for _, seller := range sellers {
		count := 3 + rand.Intn(len(products))
		for i := 0; i < count && i < len(products); i++ {
			product := products[rand.Intn(len(products))]
			if err := s.productRepo.AddToSeller(ctx, seller.ID, product.ID); err != nil {
				return fmt.Errorf("seed service: не удалось наполнить инвентарь: %w", err)
			}
		}
	}

	if err := s.generateOrders(ctx, sellers, products, numOrders); err != nil {
		return fmt.Errorf("seed service: не удалось создать заказы: %w", err)
	}

	if err := s.generateWithdrawals(ctx, sellers); err != nil {
		return fmt.Errorf("seed service: не удалось создать заявки на вывод: %w", err)
	}

	return nil
}

// generateSellers создаёт активных продавцов с пополненными кошельками.
func (s *SeedService) generateSellers(ctx context.Context, count int) ([]*models.Seller, error) {
	shopNames := []string{
		"Sunrise Gifts", "Retro Corner", "Уютный Дом", "Лавка Чудес", "Мастерская Света",
		"Зелёный Угол", "Книжный Причал", "Тёплые Вещи", "Город Подарков", "Северное Сияние",
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte("Seed1234"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	sellers := make([]*models.Seller, 0, count)
	for i := 0; i < count; i++ {
		seller := &models.Seller{
			Email:        fmt.Sprintf("seller%d@example.com", i+1),
			PasswordHash: string(passHash),
			ShopName:     fmt.Sprintf("%s %d", shopNames[i%len(shopNames)], i+1),
		}
		if err := s.sellerRepo.Create(ctx, seller); err != nil {
			return nil, err
		}

		if err := s.sellerRepo.UpdateStatus(ctx, seller.ID, models.SellerStatusActive); err != nil {
			return nil, err
		}
		seller.Status = models.SellerStatusActive

		amount := float64(100 + rand.Intn(900))
		if err := s.sellerRepo.CreditWallet(ctx, seller.ID, amount, "Стартовое пополнение"); err != nil {
			return nil, err
		}
		seller.WalletBalance = amount

		sellers = append(sellers, seller)
	}
	return sellers, nil
}

// generateProducts наполняет общий каталог.
func (s *SeedService) generateProducts(ctx context.Context, count int) ([]*models.Product, error) {
	names := []string{
		"Кружка с логотипом", "Плакат винтажный", "Настольная лампа", "Плед шерстяной",
		"Свеча ароматическая", "Блокнот в линейку", "Рюкзак городской", "Чайник заварочный",
		"Фоторамка деревянная", "Подставка для книг", "Ваза керамическая", "Часы настенные",
	}
	categories := []string{"посуда", "декор", "свет", "текстиль", "канцелярия", "аксессуары"}
	descriptions := []string{
		"Классическая вещь для дома, которая прослужит долгие годы.",
		"Ручная работа, каждый экземпляр немного отличается.",
		"Отличный подарок на любой праздник.",
		"Минималистичный дизайн, подходит к любому интерьеру.",
	}

	products := make([]*models.Product, 0, count)
	for i := 0; i < count; i++ {
		category := categories[rand.Intn(len(categories))]
		description := descriptions[rand.Intn(len(descriptions))]
		price := float64(5+rand.Intn(95)) + 0.50

		product := &models.Product{
			Name:        fmt.Sprintf("%s №%d", names[i%len(names)], i+1),
			Price:       price,
			Description: &description,
			Category:    &category,
		}
		if err := s.productRepo.Create(ctx, product); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

// generateWithdrawals создаёт заявки на вывод и прогоняет часть из них через
// админское решение, чтобы в сводке были и одобренные, и отклонённые выводы.
func (s *SeedService) generateWithdrawals(ctx context.Context, sellers []*models.Seller) error {
	bankName := "Т-Банк"
	bankHolder := "ИП Продавцов"
	reason := "Реквизиты не прошли проверку"

	for i, seller := range sellers {
		// Заявки только у части продавцов
		if i%2 != 0 {
			continue
		}

		account := fmt.Sprintf("4081781000000000%04d", i+1)
		req := &models.WithdrawalRequest{
			SellerID:    seller.ID,
			Amount:      float64(10 + rand.Intn(40)),
			Method:      models.PayoutMethodBank,
			BankName:    &bankName,
			BankAccount: &account,
			BankHolder:  &bankHolder,
		}
		if err := s.withdrawalRepo.Create(ctx, req); err != nil {
			return err
		}

		switch i % 6 {
		case 0:
			if err := s.withdrawalRepo.UpdateStatus(ctx, req.ID, models.WithdrawalStatusApproved, nil); err != nil {
				return err
			}
		case 2:
			if err := s.withdrawalRepo.UpdateStatus(ctx, req.ID, models.WithdrawalStatusRejected, &reason); err != nil {
				return err
			}
		}
	}
	return nil
}

// generateOrders закрепляет заказы за продавцами.
func (s *SeedService) generateOrders(ctx context.Context, sellers []*models.Seller, products []*models.Product, count int) error {
	customers := []string{
		"Иван Петров", "Мария Смирнова", "Алексей Козлов", "Елена Соколова",
		"Дмитрий Попов", "Ольга Лебедева", "Сергей Новиков", "Анна Морозова",
	}

	if len(sellers) == 0 || len(products) == 0 {
		return nil
	}

	for i := 0; i < count; i++ {
		seller := sellers[rand.Intn(len(sellers))]
		customer := customers[rand.Intn(len(customers))]

		itemCount := 1 + rand.Intn(3)
		items := make([]models.OrderItem, 0, itemCount)
		total := 0.0
		for j := 0; j < itemCount; j++ {
			product := products[rand.Intn(len(products))]
			qty := 1 + rand.Intn(3)
			items = append(items, models.OrderItem{
				ProductID: &product.ID,
				Name:      product.Name,
				Price:     product.Price,
				Quantity:  &qty,
			})
			total += product.Price * float64(qty)
		}

		now := time.Now()
		order := &models.Order{
			SellerID:        seller.ID,
			CustomerName:    customer,
			CustomerEmail:   fmt.Sprintf("customer%d@example.com", i+1),
			Status:          models.OrderStatusAssigned,
			Total:           total,
			AssignedByAdmin: true,
			AssignedAt:      &now,
			Items:           items,
		}
		if err := s.orderRepo.Create(ctx, order); err != nil {
			return err
		}
	}
	return nil
}
