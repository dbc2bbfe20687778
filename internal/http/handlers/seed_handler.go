package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/service"
)

// SeedHandler обрабатывает запросы для генерации фейковых данных.
// Подключается только в development окружении.
type SeedHandler struct {
	seedService *service.SeedService
}

// NewSeedHandler создаёт новый seed handler.
func NewSeedHandler(seedService *service.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// SeedRequest представляет запрос на генерацию данных.
type SeedRequest struct {
	NumSellers  int `json:"num_sellers" form:"num_sellers"`
	NumProducts int `json:"num_products" form:"num_products"`
	NumOrders   int `json:"num_orders" form:"num_orders"`
}

// Seed генерирует фейковые данные.
// POST /api/seed
func (h *SeedHandler) Seed(c *gin.Context) {
	var req SeedRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}

	if req.NumSellers < 1 {
		req.NumSellers = 5
	}
	if req.NumProducts < 1 {
		req.NumProducts = 30
	}
	if req.NumOrders < 1 {
		req.NumOrders = 20
	}
	if req.NumSellers > 100 {
		req.NumSellers = 100
	}
	if req.NumProducts > 1000 {
		req.NumProducts = 1000
	}
	if req.NumOrders > 1000 {
		req.NumOrders = 1000
	}

	if err := h.seedService.SeedData(c.Request.Context(), req.NumSellers, req.NumProducts, req.NumOrders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "не удалось сгенерировать данные",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "данные сгенерированы",
		"num_sellers":  req.NumSellers,
		"num_products": req.NumProducts,
		"num_orders":   req.NumOrders,
	})
}
