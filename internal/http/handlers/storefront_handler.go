package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/dto"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/http/handlers/common"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/models"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/pricing"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/service"
)

// StorefrontHandler обслуживает публичную витрину. Авторизация не требуется.
type StorefrontHandler struct {
	catalog *service.CatalogService
}

// NewStorefrontHandler создаёт хэндлер витрины.
func NewStorefrontHandler(catalog *service.CatalogService) *StorefrontHandler {
	return &StorefrontHandler{catalog: catalog}
}

// ListProducts обрабатывает GET /storefront/products?search=&min_price=&max_price=.
// Фильтры применяются в памяти к кэшированному снапшоту.
func (h *StorefrontHandler) ListProducts(c *gin.Context) {
	minPrice, err := common.ParseFloatQuery(c, "min_price")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}
	maxPrice, err := common.ParseFloatQuery(c, "max_price")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	snapshot, err := h.catalog.GetCatalog(c.Request.Context())
	if err != nil {
		common.RespondInternalError(c, "")
		return
	}

	filtered := service.ApplyCatalogFilter(snapshot.Products, service.CatalogFilter{
		Search:   c.Query("search"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	})

	products := make([]models.StorefrontProduct, 0, len(filtered))
	for _, p := range filtered {
		products = append(products, models.StorefrontProduct{
			Product: models.Product{
				ID:          p.ID,
				Name:        p.Name,
				Price:       p.Price,
				Description: p.Description,
				ImageURL:    p.ImageURL,
				Category:    p.Category,
				CreatedAt:   p.CreatedAt,
			},
			Seller: p.Seller,
			Profit: pricing.ProductProfit(p.Price),
		})
	}

	c.JSON(http.StatusOK, dto.CatalogResponse{
		Products: products,
		CachedAt: snapshot.CachedAt.Format(time.RFC3339),
	})
}
