package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/models"
)

func strPtr(s string) *string { return &s }

func floatPtr(v float64) *float64 { return &v }

func sampleCatalog() []models.CachedProduct {
	return []models.CachedProduct{
		{
			ID:       uuid.New(),
			Name:     "Кружка с логотипом",
			Price:    5.00,
			Category: strPtr("посуда"),
			Seller:   models.SellerSummary{ShopName: "Sunrise Gifts"},
		},
		{
			ID:          uuid.New(),
			Name:        "Плакат",
			Price:       15.00,
			Description: strPtr("Винтажный постер для интерьера"),
			Category:    strPtr("декор"),
			Seller:      models.SellerSummary{ShopName: "Retro Corner"},
		},
		{
			ID:       uuid.New(),
			Name:     "Настольная лампа",
			Price:    25.00,
			Category: strPtr("свет"),
			Seller:   models.SellerSummary{ShopName: "Sunrise Gifts"},
		},
	}
}

func TestApplyCatalogFilter_Empty(t *testing.T) {
	products := sampleCatalog()
	filtered := ApplyCatalogFilter(products, CatalogFilter{})
	assert.Len(t, filtered, 3)
}

func TestApplyCatalogFilter_PriceRange(t *testing.T) {
	products := sampleCatalog()

	filtered := ApplyCatalogFilter(products, CatalogFilter{
		MinPrice: floatPtr(10),
		MaxPrice: floatPtr(20),
	})

	assert.Len(t, filtered, 1)
	assert.Equal(t, "Плакат", filtered[0].Name)
}

func TestApplyCatalogFilter_MinPriceOnly(t *testing.T) {
	filtered := ApplyCatalogFilter(sampleCatalog(), CatalogFilter{MinPrice: floatPtr(15)})
	assert.Len(t, filtered, 2)
}

func TestApplyCatalogFilter_SearchByName(t *testing.T) {
	filtered := ApplyCatalogFilter(sampleCatalog(), CatalogFilter{Search: "кружка"})
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Кружка с логотипом", filtered[0].Name)
}

func TestApplyCatalogFilter_SearchByDescription(t *testing.T) {
	filtered := ApplyCatalogFilter(sampleCatalog(), CatalogFilter{Search: "постер"})
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Плакат", filtered[0].Name)
}

func TestApplyCatalogFilter_SearchByShopName(t *testing.T) {
	filtered := ApplyCatalogFilter(sampleCatalog(), CatalogFilter{Search: "sunrise"})
	assert.Len(t, filtered, 2)
}

func TestApplyCatalogFilter_SearchAndPriceCombined(t *testing.T) {
	filtered := ApplyCatalogFilter(sampleCatalog(), CatalogFilter{
		Search:   "sunrise",
		MinPrice: floatPtr(10),
	})
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Настольная лампа", filtered[0].Name)
}

func TestApplyCatalogFilter_NoMatches(t *testing.T) {
	filtered := ApplyCatalogFilter(sampleCatalog(), CatalogFilter{Search: "велосипед"})
	assert.Empty(t, filtered)
}

func TestExcludeOwned(t *testing.T) {
	owned := uuid.New()
	products := []models.Product{
		{ID: owned, Name: "Кружка"},
		{ID: uuid.New(), Name: "Плакат"},
	}

	filtered := ExcludeOwned(products, []uuid.UUID{owned})
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Плакат", filtered[0].Name)
}

func TestExcludeOwned_NothingOwned(t *testing.T) {
	products := []models.Product{{ID: uuid.New(), Name: "Кружка"}}
	assert.Len(t, ExcludeOwned(products, nil), 1)
}
