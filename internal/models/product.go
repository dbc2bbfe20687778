package models

import (
	"time"

	"github.com/google/uuid"
)

// Product описывает позицию каталога. Товар не принадлежит одному продавцу:
// несколько магазинов могут выставлять одну и ту же позицию (seller_products).
type Product struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Price       float64   `db:"price" json:"price"`
	Description *string   `db:"description" json:"description,omitempty"`
	ImageURL    *string   `db:"image_url" json:"image_url,omitempty"`
	Category    *string   `db:"category" json:"category,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// StorefrontProduct — товар витрины с присоединённой сводкой продавца.
// Profit пересчитывается при каждой выдаче и никогда не хранится.
type StorefrontProduct struct {
	Product
	Seller SellerSummary `json:"seller"`
	Profit float64       `json:"profit"`
}

// ProductWithProfit — товар инвентаря продавца с расчётной прибылью.
type ProductWithProfit struct {
	Product
	Profit float64 `json:"profit"`
}

// CachedProduct — урезанная проекция товара для снапшота каталога в кэше.
type CachedProduct struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Price       float64       `json:"price"`
	Description *string       `json:"description,omitempty"`
	ImageURL    *string       `json:"image_url,omitempty"`
	Category    *string       `json:"category,omitempty"`
	Seller      SellerSummary `json:"seller"`
	CreatedAt   time.Time     `json:"created_at"`
}

// CatalogSnapshot — запись кэша каталога с меткой времени записи.
type CatalogSnapshot struct {
	Products []CachedProduct `json:"products"`
	CachedAt time.Time       `json:"cached_at"`
}
