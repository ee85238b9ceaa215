package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the ledger row for a sellable item. Stock is the single source
// of truth for availability; every change to it must go through the service
// layer so that a StockLog entry is written in the same transaction.
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Barcode     string          `gorm:"uniqueIndex;not null" json:"barcode"`
	BarcodeType string          `gorm:"not null" json:"barcodetype"`
	Description string          `gorm:"index;not null" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(13,2);not null" json:"price"`
	CostPrice   decimal.Decimal `gorm:"type:decimal(13,2);not null" json:"costprice"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
