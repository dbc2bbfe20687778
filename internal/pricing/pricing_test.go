package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/models"
)

func intPtr(v int) *int { return &v }

func TestCalculate_Breakdown(t *testing.T) {
	items := []models.OrderItem{
		{Price: 10, Quantity: intPtr(2)},
		{Price: 5, Quantity: intPtr(1)},
	}

	b := Calculate(items)

	assert.Equal(t, 25.0, b.TotalProductPrice)
	assert.Equal(t, 5.75, b.AdditionalProfit)
	assert.Equal(t, 30.75, b.GrandTotal)
}

func TestCalculate_MissingQuantityDefaultsToOne(t *testing.T) {
	items := []models.OrderItem{
		{Price: 10},
		{Price: 10, Quantity: intPtr(0)},
	}

	b := Calculate(items)

	assert.Equal(t, 20.0, b.TotalProductPrice)
	assert.Equal(t, 4.6, b.AdditionalProfit)
}

func TestCalculate_Empty(t *testing.T) {
	b := Calculate(nil)

	assert.Zero(t, b.TotalProductPrice)
	assert.Zero(t, b.AdditionalProfit)
	assert.Zero(t, b.GrandTotal)
}

func TestCalculate_PerItemMatchesAggregate(t *testing.T) {
	// Для однородной ставки попозиционный расчёт совпадает с total*0.23.
	items := []models.OrderItem{
		{Price: 19.99, Quantity: intPtr(3)},
		{Price: 4.5},
		{Price: 120, Quantity: intPtr(2)},
	}

	b := Calculate(items)

	assert.InDelta(t, b.TotalProductPrice*0.23, b.AdditionalProfit, 1e-9)
	assert.InDelta(t, b.TotalProductPrice+b.AdditionalProfit, b.GrandTotal, 1e-9)
}

func TestProductProfit(t *testing.T) {
	assert.Equal(t, 2.3, ProductProfit(10))
	assert.Zero(t, ProductProfit(0))
}
