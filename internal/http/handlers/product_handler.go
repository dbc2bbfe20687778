package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/dto"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/http/handlers/common"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/service"
)

// ProductHandler обслуживает инвентарь магазина продавца.
type ProductHandler struct {
	svc *service.ProductService
}

// NewProductHandler создаёт хэндлер инвентаря.
func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// ListInventory GET /products
func (h *ProductHandler) ListInventory(c *gin.Context) {
	sellerID, err := common.CurrentSellerID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	products, err := h.svc.ListInventory(c.Request.Context(), sellerID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// ListCandidates GET /products/candidates?search=
func (h *ProductHandler) ListCandidates(c *gin.Context) {
	sellerID, err := common.CurrentSellerID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	candidates, err := h.svc.ListCandidates(c.Request.Context(), sellerID, c.Query("search"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, candidates)
}

// AddProduct POST /products
func (h *ProductHandler) AddProduct(c *gin.Context) {
	sellerID, err := common.CurrentSellerID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	var req dto.AddProductRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		common.RespondBadRequest(c, "product_id должен быть валидным UUID")
		return
	}

	product, err := h.svc.AddProduct(c.Request.Context(), sellerID, productID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// RemoveProduct DELETE /products/:id
func (h *ProductHandler) RemoveProduct(c *gin.Context) {
	sellerID, err := common.CurrentSellerID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	productID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := h.svc.RemoveProduct(c.Request.Context(), sellerID, productID); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "товар убран из магазина"})
}
