package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/models"
)

// MarkupRate — фиксированная наценка 23% поверх цены товара.
// Все места, где нужна "прибыль", обязаны считать её через функции этого
// пакета, а не хранить или дублировать формулу.
var MarkupRate = decimal.NewFromFloat(0.23)

// ItemQuantity возвращает количество позиции, отсутствующее трактуя как 1.
func ItemQuantity(item models.OrderItem) int {
	if item.Quantity == nil || *item.Quantity <= 0 {
		return 1
	}
	return *item.Quantity
}

// ProductProfit возвращает прибыль с одной единицы товара по цене price.
func ProductProfit(price float64) float64 {
	p, _ := decimal.NewFromFloat(price).Mul(MarkupRate).Float64()
	return p
}

// Breakdown — результат расчёта по позициям заказа.
type Breakdown struct {
	TotalProductPrice float64
	AdditionalProfit  float64
	GrandTotal        float64
}

// Calculate считает суммарную цену и наценку по позициям заказа.
// Наценка намеренно считается по каждой позиции отдельно, а не одним
// умножением итога: позиции могут прийти с разнородными данными, и в будущем
// ставка может стать попозиционной.
func Calculate(items []models.OrderItem) Breakdown {
	total := decimal.Zero
	profit := decimal.Zero

	for _, item := range items {
		qty := decimal.NewFromInt(int64(ItemQuantity(item)))
		line := decimal.NewFromFloat(item.Price).Mul(qty)
		total = total.Add(line)
		profit = profit.Add(line.Mul(MarkupRate))
	}

	totalF, _ := total.Float64()
	profitF, _ := profit.Float64()
	grandF, _ := total.Add(profit).Float64()

	return Breakdown{
		TotalProductPrice: totalF,
		AdditionalProfit:  profitF,
		GrandTotal:        grandF,
	}
}
