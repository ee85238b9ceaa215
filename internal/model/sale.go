package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is one line item of a sale batch. Every line created in the same
// batch shares the same Code and CreatedAt; each line has its own row id.
//
// Price stores the per-unit base (list) price at the time of sale and
// Discount the per-unit promotion delta, so the unit price actually charged
// is always Price - Discount. Extended totals are derived, never stored.
type Sale struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Code      string          `gorm:"index;not null" json:"code"`
	ProductID uint            `gorm:"index;not null" json:"productid"`
	Qty       int             `gorm:"not null" json:"qty"`
	Price     decimal.Decimal `gorm:"type:decimal(13,2);not null" json:"price"`
	Discount  decimal.Decimal `gorm:"type:decimal(13,2);not null" json:"discount"`
	CreatedAt time.Time       `json:"createat"`

	Product *Product `gorm:"foreignKey:ProductID" json:"-"`
}
