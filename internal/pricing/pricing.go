package pricing

import (
	"github.com/Wasif581-create/Jdbanks/internal/domain/model"

	"github.com/shopspring/decimal"
)

// Totals はカートから導出する金額。キャッシュしない。
type Totals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// Calculator は通貨表記と送料を知っている計算係。
// 送料はカートが空でなければ定額、空なら0。
type Calculator struct {
	currency    string
	shippingFee decimal.Decimal
}

func NewCalculator(currency string, shippingFee decimal.Decimal) *Calculator {
	return &Calculator{currency: currency, shippingFee: shippingFee}
}

func (c *Calculator) Totals(cart model.Cart) Totals {
	subtotal := decimal.Zero
	for _, it := range cart {
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(it.Qty))
		subtotal = subtotal.Add(line)
	}

	shipping := decimal.Zero
	if len(cart) > 0 {
		shipping = c.shippingFee
	}

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}
}

func (c *Calculator) LineTotal(it model.CartItem) decimal.Decimal {
	return decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(it.Qty))
}

// 表示用。小数2桁固定＋通貨プレフィックス（例 "PKR 10200.00"）。
func (c *Calculator) Format(v decimal.Decimal) string {
	return c.currency + " " + v.StringFixed(2)
}

func (c *Calculator) FormatPrice(price float64) string {
	return c.Format(decimal.NewFromFloat(price))
}
