package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/models"
)

// SellerGetter отдаёт продавца по идентификатору.
type SellerGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Seller, error)
}

// FrozenGuard блокирует операции замороженного продавца. Статус перечитывается
// из базы на каждый запрос: заморозка действует немедленно, а не после
// истечения access токена. Уведомления остаются доступными, поэтому guard
// вешается только на операционные группы маршрутов.
func FrozenGuard(sellers SellerGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID, ok := SellerIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "требуется авторизация"})
			return
		}

		seller, err := sellers.GetByID(c.Request.Context(), sellerID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "продавец не найден"})
			return
		}

		if seller.Status == models.SellerStatusFrozen {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "аккаунт заморожен, операции недоступны",
			})
			return
		}

		c.Next()
	}
}

// SellerIDFromContext извлекает идентификатор продавца, положенный AuthMiddleware.
func SellerIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get(ContextSellerIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := raw.(uuid.UUID)
	return id, ok
}
