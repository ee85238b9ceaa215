package dto

import "github.com/shopspring/decimal"

// StockLogResponse is the read projection of one audit entry. Barcode and
// description are resolved from the product at read time — the log row
// itself only stores the numeric reference.
type StockLogResponse struct {
	Date        string `json:"date"`
	Barcode     string `json:"barcode"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

// PriceCheckResponse is returned by the public price check endpoint.
type PriceCheckResponse struct {
	Barcode        string          `json:"barcode"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	EffectivePrice decimal.Decimal `json:"effective_price"`
	HasPromotion   bool            `json:"has_promotion"`
	Stock          int             `json:"stock"`
}
