package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/models"
)

type stubSellerGetter struct {
	seller *models.Seller
	err    error
}

func (s *stubSellerGetter) GetByID(context.Context, uuid.UUID) (*models.Seller, error) {
	return s.seller, s.err
}

func frozenGuardRequest(t *testing.T, sellers SellerGetter, sellerID *uuid.UUID) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	if sellerID != nil {
		r.Use(func(c *gin.Context) { c.Set(ContextSellerIDKey, *sellerID) })
	}
	r.Use(FrozenGuard(sellers))
	r.GET("/profile", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestFrozenGuard_FrozenSellerForbidden(t *testing.T) {
	id := uuid.New()
	sellers := &stubSellerGetter{seller: &models.Seller{ID: id, Status: models.SellerStatusFrozen}}

	w := frozenGuardRequest(t, sellers, &id)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "заморожен")
}

func TestFrozenGuard_ActiveSellerPasses(t *testing.T) {
	id := uuid.New()
	sellers := &stubSellerGetter{seller: &models.Seller{ID: id, Status: models.SellerStatusActive}}

	w := frozenGuardRequest(t, sellers, &id)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFrozenGuard_MissingAuthRejected(t *testing.T) {
	sellers := &stubSellerGetter{seller: &models.Seller{}}

	w := frozenGuardRequest(t, sellers, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
