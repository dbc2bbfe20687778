package service

import (
	"strings"

	"github.com/google/uuid"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/models"
)

// CatalogFilter — параметры фильтрации витрины. Фильтрация выполняется над
// уже собранным снапшотом в памяти, без обращений к базе.
type CatalogFilter struct {
	Search   string
	MinPrice *float64
	MaxPrice *float64
}

// IsEmpty сообщает, задан ли хотя бы один критерий.
func (f CatalogFilter) IsEmpty() bool {
	return strings.TrimSpace(f.Search) == "" && f.MinPrice == nil && f.MaxPrice == nil
}

// ApplyCatalogFilter оставляет товары, удовлетворяющие всем заданным
// критериям одновременно. Пустой критерий пропускает всё.
func ApplyCatalogFilter(products []models.CachedProduct, f CatalogFilter) []models.CachedProduct {
	if f.IsEmpty() {
		return products
	}

	query := normalizeQuery(f.Search)

	filtered := make([]models.CachedProduct, 0, len(products))
	for _, p := range products {
		if query != "" && !matchesSearch(p, query) {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// normalizeQuery приводит поисковый запрос к нижнему регистру без краевых пробелов.
func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// matchesSearch проверяет вхождение подстроки в название, описание,
// категорию или имя магазина без учёта регистра.
func matchesSearch(p models.CachedProduct, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) {
		return true
	}
	if p.Description != nil && strings.Contains(strings.ToLower(*p.Description), query) {
		return true
	}
	if p.Category != nil && strings.Contains(strings.ToLower(*p.Category), query) {
		return true
	}
	return strings.Contains(strings.ToLower(p.Seller.ShopName), query)
}

// ExcludeOwned убирает из списка товары, уже находящиеся в инвентаре.
// Используется при подборе кандидатов на добавление в магазин.
func ExcludeOwned(products []models.Product, owned []uuid.UUID) []models.Product {
	if len(owned) == 0 {
		return products
	}

	ownedSet := make(map[uuid.UUID]struct{}, len(owned))
	for _, id := range owned {
		ownedSet[id] = struct{}{}
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if _, ok := ownedSet[p.ID]; ok {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}
