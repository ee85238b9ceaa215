package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SaleItemRequest struct {
	ProductID uint `json:"productid" validate:"required"`
	Qty       int  `json:"qty"       validate:"required,min=1"`
}

// RegisterSaleRequest is one sale batch: every item is committed atomically
// under a single code and timestamp. When Code is empty the processor
// generates a UUID.
type RegisterSaleRequest struct {
	Code  string            `json:"code"  validate:"omitempty,uuid"`
	Items []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// SaleItemResponse reports both the list price and the promotion-adjusted
// unit price actually charged (UnitPrice - Discount).
type SaleItemResponse struct {
	ID          uint            `json:"id"`
	ProductID   uint            `json:"productid"`
	Product     string          `json:"product"`
	Qty         int             `json:"qty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"`
	ChargedUnit decimal.Decimal `json:"charged_unit_price"`
	Total       decimal.Decimal `json:"total"`
}

type SaleBatchResponse struct {
	Code      string             `json:"code"`
	CreatedAt string             `json:"createat"`
	Items     []SaleItemResponse `json:"items"`
	Total     decimal.Decimal    `json:"total"`
}

// SalesReportItem is one row of the period report. Price is the unit price
// actually charged, after promotion composition.
type SalesReportItem struct {
	SaleCode           string          `json:"sale_code"`
	ProductDescription string          `json:"product_description"`
	Price              decimal.Decimal `json:"price"`
	Quantity           int             `json:"quantity"`
	SaleDate           string          `json:"sale_date"`
}
