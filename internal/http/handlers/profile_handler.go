package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/dto"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/http/handlers/common"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/models"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/service"
)

// ProfileHandler обслуживает профиль и настройки магазина.
type ProfileHandler struct {
	svc *service.SellerService
}

func NewProfileHandler(svc *service.SellerService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// GetProfile GET /profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	sellerID, err := common.CurrentSellerID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	seller, err := h.svc.GetProfile(c.Request.Context(), sellerID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, seller)
}

// UpdateSettings PATCH /profile/settings
func (h *ProfileHandler) UpdateSettings(c *gin.Context) {
	sellerID, err := common.CurrentSellerID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	var req dto.UpdateSettingsRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	seller, err := h.svc.UpdateSettings(c.Request.Context(), sellerID, models.SellerSettingsUpdate{
		ShopName:      req.ShopName,
		ContactPhone:  req.ContactPhone,
		Bio:           req.Bio,
		BankEnabled:   req.BankEnabled,
		BankName:      req.BankName,
		BankAccount:   req.BankAccount,
		BankHolder:    req.BankHolder,
		CryptoEnabled: req.CryptoEnabled,
		CryptoAddress: req.CryptoAddress,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, seller)
}
