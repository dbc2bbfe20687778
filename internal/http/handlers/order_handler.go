package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/dto"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/http/handlers/common"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/service"
)

// OrderHandler обслуживает заказы кабинета продавца.
type OrderHandler struct {
	svc *service.OrderService
}

// NewOrderHandler создаёт хэндлер заказов.
func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// ListOrders GET /orders?status=&limit=&offset=
func (h *OrderHandler) ListOrders(c *gin.Context) {
	sellerID, err := common.CurrentSellerID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	limit, offset := common.GetPagination(c)
	orders, err := h.svc.ListOrders(c.Request.Context(), sellerID, c.Query("status"), limit, offset)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	sellerID, err := common.CurrentSellerID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	orderID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	order, err := h.svc.GetOrder(c.Request.Context(), sellerID, orderID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// PickOrder POST /orders/:id/pick
func (h *OrderHandler) PickOrder(c *gin.Context) {
	sellerID, err := common.CurrentSellerID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	orderID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	result, err := h.svc.PickOrder(c.Request.Context(), sellerID, orderID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.PickOrderResponse{
		Order:            result.Order,
		NewWalletBalance: result.NewWalletBalance,
		NewPendingAmount: result.NewPendingAmount,
	})
}

// UpdateStatus PATCH /orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	sellerID, err := common.CurrentSellerID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	orderID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	order, err := h.svc.UpdateOrderStatus(c.Request.Context(), sellerID, orderID, req.Status)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// ListStatusHistory GET /orders/:id/history
func (h *OrderHandler) ListStatusHistory(c *gin.Context) {
	sellerID, err := common.CurrentSellerID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	orderID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	history, err := h.svc.ListStatusHistory(c.Request.Context(), sellerID, orderID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// DeleteOrder DELETE /orders/:id
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	sellerID, err := common.CurrentSellerID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	orderID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := h.svc.DeleteOrder(c.Request.Context(), sellerID, orderID); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "заказ удалён"})
}
