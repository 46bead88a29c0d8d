package checkout

import (
	"math"

	"storefront-api/internal/model"
)

// Pricing holds the parameters of the totals calculation.
type Pricing struct {
	TaxRate               float64
	FlatShippingFee       float64
	FreeShippingThreshold float64
}

// DefaultPricing returns the storefront defaults: no tax, a flat 10.00
// shipping fee waived above 100.00 of items.
func DefaultPricing() Pricing {
	return Pricing{
		TaxRate:               0,
		FlatShippingFee:       10,
		FreeShippingThreshold: 100,
	}
}

// Totals holds the derived monetary values of an order. The invariant
// TotalPrice == ItemsPrice + TaxPrice + ShippingPrice holds after 2-decimal
// rounding of each component.
type Totals struct {
	ItemsPrice    float64
	TaxPrice      float64
	ShippingPrice float64
	TotalPrice    float64
}

// ComputeTotals derives order totals from a normalized item list. The
// calculation is a pure function of its inputs.
func ComputeTotals(items []model.OrderItem, p Pricing) Totals {
	var itemsPrice float64
	for _, item := range items {
		itemsPrice += item.Price * float64(item.Quantity)
	}
	itemsPrice = round2(itemsPrice)

	taxPrice := round2(itemsPrice * p.TaxRate)

	shippingPrice := round2(p.FlatShippingFee)
	if itemsPrice > p.FreeShippingThreshold {
		shippingPrice = 0
	}

	return Totals{
		ItemsPrice:    itemsPrice,
		TaxPrice:      taxPrice,
		ShippingPrice: shippingPrice,
		TotalPrice:    round2(itemsPrice + taxPrice + shippingPrice),
	}
}

// round2 rounds to 2 decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
