package pricing

import (
	"github.com/shopspring/decimal"

	pperrors "github.com/alexisbeaulieu97/pageprice/pkg/errors"
)

// CurrencySymbol prefixes every formatted price.
const CurrencySymbol = "$"

// priceScale is the number of decimal places displayed prices are rounded to.
const priceScale = 2

// DefaultYearlyMultiplier applies the 25% yearly discount.
var DefaultYearlyMultiplier = decimal.RequireFromString("0.75")

// MultiplierFromDiscount converts a discount percentage in [0, 100) into the
// multiplier applied to base prices under yearly billing.
func MultiplierFromDiscount(percent decimal.Decimal) (decimal.Decimal, error) {
	hundred := decimal.NewFromInt(100)
	if percent.IsNegative() || percent.GreaterThanOrEqual(hundred) {
		return decimal.Zero, pperrors.NewValidationError("yearly_discount", "discount must be at least 0 and below 100 percent", nil)
	}
	return hundred.Sub(percent).Div(hundred), nil
}

// DiscountPercent converts a yearly multiplier back into the percentage it
// takes off the base price.
func DiscountPercent(multiplier decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Sub(multiplier).Mul(decimal.NewFromInt(100)).Round(priceScale)
}

// DisplayedPrice computes base * (yearly ? multiplier : 1), rounded half-up
// to two decimal places.
func DisplayedPrice(base decimal.Decimal, yearly bool, multiplier decimal.Decimal) decimal.Decimal {
	price := base
	if yearly {
		price = base.Mul(multiplier)
	}
	// Round is half away from zero, which is half-up for the non-negative
	// prices a Table admits.
	return price.Round(priceScale)
}

// FormatPrice renders a price as currency text: whole amounts without
// decimals ("$16"), anything else with exactly two ("$12.50").
func FormatPrice(price decimal.Decimal) string {
	rounded := price.Round(priceScale)
	if rounded.IsInteger() {
		return CurrencySymbol + rounded.StringFixed(0)
	}
	return CurrencySymbol + rounded.StringFixed(priceScale)
}
