package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/http/handlers/common"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/service"
)

// NotificationHandler обслуживает уведомления продавца.
// Доступен и замороженным аккаунтам.
type NotificationHandler struct {
	svc *service.NotificationService
}

func NewNotificationHandler(svc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List GET /notifications?unread=true&limit=&offset=
func (h *NotificationHandler) List(c *gin.Context) {
	sellerID, err := common.CurrentSellerID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	limit, offset := common.GetPagination(c)
	unreadOnly := c.Query("unread") == "true"

	notifications, err := h.svc.List(c.Request.Context(), sellerID, limit, offset, unreadOnly)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// CountUnread GET /notifications/unread-count
func (h *NotificationHandler) CountUnread(c *gin.Context) {
	sellerID, err := common.CurrentSellerID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	count, err := h.svc.CountUnread(c.Request.Context(), sellerID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkAsRead POST /notifications/:id/read
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	sellerID, err := common.CurrentSellerID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := h.svc.MarkAsRead(c.Request.Context(), sellerID, id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "уведомление прочитано"})
}

// MarkAllAsRead POST /notifications/read-all
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	sellerID, err := common.CurrentSellerID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	if err := h.svc.MarkAllAsRead(c.Request.Context(), sellerID); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "все уведомления прочитаны"})
}
