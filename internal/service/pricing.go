package service

import (
	"apitf/internal/model"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ApplyPromotion returns the price after one promotion:
//
//	percentage off: price * (1 - value/100)
//	fixed off:      price - value
//
// An unrecognized promotion type applies as identity — never an error — so
// rows written by a newer version of the system degrade gracefully.
func ApplyPromotion(price decimal.Decimal, p model.Promotion) decimal.Decimal {
	switch p.PromotionType {
	case model.PromotionPercentage:
		return price.Sub(price.Mul(p.Value).Div(hundred))
	case model.PromotionFixed:
		return price.Sub(p.Value)
	default:
		return price
	}
}

// ComposePrice folds ApplyPromotion over the promotions left to right,
// starting from base. Callers must pass the active ordering (end date
// descending, start date descending) — composition is not commutative when
// percentage and fixed discounts mix.
//
// The result is not floored at zero: several stacked fixed discounts can
// drive it negative, matching the stored promotion semantics.
func ComposePrice(base decimal.Decimal, promotions []model.Promotion) decimal.Decimal {
	price := base
	for _, p := range promotions {
		price = ApplyPromotion(price, p)
	}
	return price
}
