package cart

import (
	"storefront/config"
	"storefront/models"

	"github.com/shopspring/decimal"
)

// Derived values are pure functions of the cart, computed for display only.
// The backend's numbers are authoritative; these must reproduce its pricing
// formula exactly (threshold, flat fee, 2-place rounding) so the checkout
// page never disagrees with the charge.

// ItemsCount is the total quantity across all lines.
func ItemsCount(c *models.Cart) int {
	if c == nil {
		return 0
	}
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Subtotal is the sum of price times quantity across all lines.
func Subtotal(c *models.Cart) float64 {
	if c == nil {
		return 0
	}
	sum := decimal.Zero
	for _, item := range c.Items {
		price := decimal.NewFromFloat(item.Product.Price)
		sum = sum.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return round2(sum)
}

// Shipping is zero at or above the free-shipping threshold, otherwise the
// flat fee. An empty cart ships for nothing.
func Shipping(c *models.Cart) float64 {
	if c == nil || len(c.Items) == 0 {
		return 0
	}
	subtotal := decimal.NewFromFloat(Subtotal(c))
	threshold := decimal.NewFromFloat(config.AppConfig.FreeShippingThreshold)
	if subtotal.GreaterThanOrEqual(threshold) {
		return 0
	}
	return config.AppConfig.ShippingFlatFee
}

// Total is subtotal minus the backend-computed discount plus shipping,
// floored at zero.
func Total(c *models.Cart) float64 {
	if c == nil {
		return 0
	}
	total := decimal.NewFromFloat(Subtotal(c)).
		Sub(decimal.NewFromFloat(c.Discount)).
		Add(decimal.NewFromFloat(Shipping(c)))
	if total.IsNegative() {
		return 0
	}
	return round2(total)
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

// ItemsCount reports the badge count for the current local cart.
func (c *Controller) ItemsCount() int { return ItemsCount(c.Cart()) }

// Subtotal reports the display subtotal for the current local cart.
func (c *Controller) Subtotal() float64 { return Subtotal(c.Cart()) }

// Shipping reports the display shipping fee for the current local cart.
func (c *Controller) Shipping() float64 { return Shipping(c.Cart()) }

// Total reports the display total for the current local cart.
func (c *Controller) Total() float64 { return Total(c.Cart()) }
