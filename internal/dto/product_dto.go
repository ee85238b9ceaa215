package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Barcode     string          `json:"barcode"     validate:"required,min=8,max=18"`
	BarcodeType string          `json:"barcodetype" validate:"required"`
	Description string          `json:"description" validate:"required,max=255"`
	Price       decimal.Decimal `json:"price"       validate:"required,gt=0"`
	CostPrice   decimal.Decimal `json:"costprice"   validate:"required,gt=0"`
	Stock       int             `json:"stock"       validate:"min=0"`
}

// UpdateProductRequest replaces the descriptive fields of a product.
// Stock is deliberately absent — quantity changes only go through the
// stock adjustment endpoint so that every delta is audited.
type UpdateProductRequest struct {
	Barcode     string          `json:"barcode"     validate:"required,min=8,max=18"`
	BarcodeType string          `json:"barcodetype" validate:"required"`
	Description string          `json:"description" validate:"required,max=255"`
	Price       decimal.Decimal `json:"price"       validate:"required,gt=0"`
	CostPrice   decimal.Decimal `json:"costprice"   validate:"required,gt=0"`
}

// AdjustStockRequest carries the signed delta for PATCH /products/:id/stock.
// Zero is rejected at the service layer.
type AdjustStockRequest struct {
	Qty int `json:"qty"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID          uint            `json:"id"`
	Barcode     string          `json:"barcode"`
	BarcodeType string          `json:"barcodetype"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CostPrice   decimal.Decimal `json:"costprice"`
	Stock       int             `json:"stock"`
	CreatedAt   string          `json:"created_at"`
}
