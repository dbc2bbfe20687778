package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/models"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/repository/common"
)

var ErrProductNotFound = errors.New("product not found")

type ProductRepository struct {
	db *sqlx.DB
}

func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create добавляет позицию в общий каталог.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (name, price, description, image_url, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	if err := r.db.QueryRowxContext(ctx, query,
		product.Name, product.Price, product.Description, product.ImageURL, product.Category,
	).Scan(&product.ID, &product.CreatedAt); err != nil {
		return fmt.Errorf("product repository: create %w", err)
	}
	return nil
}

// GetByID возвращает товар по идентификатору.
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return common.GetByID[models.Product](ctx, r.db, "products", id, ErrProductNotFound)
}

// GetByIDs возвращает товары по списку идентификаторов одним запросом.
// Отсутствующие идентификаторы молча пропускаются: частичный результат допустим.
func (r *ProductRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = id.String()
	}

	var products []models.Product
	err := r.db.SelectContext(ctx, &products, `
		SELECT * FROM products WHERE id = ANY($1)
	`, pq.Array(raw))
	if err != nil {
		return nil, fmt.Errorf("product repository: get by ids %w", err)
	}
	return products, nil
}

// ListAll возвращает весь каталог в порядке создания (новые первыми).
func (r *ProductRepository) ListAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.SelectContext(ctx, &products, `SELECT * FROM products ORDER BY created_at DESC`)
	return products, err
}

// ListSellerProductIDs возвращает идентификаторы товаров из инвентаря продавца.
func (r *ProductRepository) ListSellerProductIDs(ctx context.Context, sellerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.SelectContext(ctx, &ids, `
		SELECT product_id FROM seller_products WHERE seller_id = $1 ORDER BY added_at
	`, sellerID)
	return ids, err
}

// ListSellerProducts возвращает товары из инвентаря продавца.
func (r *ProductRepository) ListSellerProducts(ctx context.Context, sellerID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := r.db.SelectContext(ctx, &products, `
		SELECT p.* FROM products p
		JOIN seller_products sp ON sp.product_id = p.id
		WHERE sp.seller_id = $1
		ORDER BY sp.added_at DESC
	`, sellerID)
	return products, err
}

// AddToSeller добавляет товар в инвентарь продавца. Повтор — не ошибка.
func (r *ProductRepository) AddToSeller(ctx context.Context, sellerID, productID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO seller_products (seller_id, product_id)
		VALUES ($1, $2)
		ON CONFLICT (seller_id, product_id) DO NOTHING
	`, sellerID, productID)
	if err != nil {
		return fmt.Errorf("product repository: add to seller %w", err)
	}
	return nil
}

// RemoveFromSeller убирает товар из инвентаря продавца.
func (r *ProductRepository) RemoveFromSeller(ctx context.Context, sellerID, productID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM seller_products WHERE seller_id = $1 AND product_id = $2
	`, sellerID, productID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrProductNotFound
	}
	return nil
}
