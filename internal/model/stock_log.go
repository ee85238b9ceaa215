package model

import "time"

// StockLog is the append-only audit trail of stock mutations. Qty is the
// signed delta applied: positive when stock is added, negative when it is
// removed or sold. Rows are never updated or deleted — for any product,
// current stock equals the sum of all of its deltas.
type StockLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"index;not null" json:"productid"`
	Qty       int       `gorm:"not null" json:"qty"`
	CreatedAt time.Time `json:"createdat"`

	Product *Product `gorm:"foreignKey:ProductID" json:"-"`
}
