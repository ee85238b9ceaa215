package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Promotion types. Unknown values are ignored at application time (the
// promotion applies as identity), so adding a new type never breaks old rows.
const (
	PromotionPercentage = 0 // Value is a percentage in [0,100]
	PromotionFixed      = 1 // Value is a fixed amount off, in currency units
)

// Promotion is a time-bounded discount attached to a single product.
// StartDate and EndDate are inclusive, store-local naive instants — no
// timezone conversion happens anywhere in the engine.
type Promotion struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	ProductID     uint            `gorm:"index;not null" json:"productid"`
	PromotionType int             `gorm:"not null" json:"promotiontype"`
	Value         decimal.Decimal `gorm:"type:decimal(13,2);not null" json:"value"`
	StartDate     time.Time       `gorm:"not null" json:"startdate"`
	EndDate       time.Time       `gorm:"not null" json:"enddate"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"-"`
}
