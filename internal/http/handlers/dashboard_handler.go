package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/http/handlers/common"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/service"
)

// DashboardHandler обслуживает сводку кабинета и леджер движений средств.
type DashboardHandler struct {
	svc *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// GetSummary GET /dashboard/summary
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	sellerID, err := common.CurrentSellerID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	summary, err := h.svc.GetSummary(c.Request.Context(), sellerID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ListTransactions GET /dashboard/transactions?limit=&offset=
func (h *DashboardHandler) ListTransactions(c *gin.Context) {
	sellerID, err := common.CurrentSellerID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	limit, offset := common.GetPagination(c)
	page, err := h.svc.ListTransactions(c.Request.Context(), sellerID, limit, offset)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, page)
}
