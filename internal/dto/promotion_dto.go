package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PromotionRequest is shared by POST and PATCH: clients always send the
// full promotion payload.
type PromotionRequest struct {
	ProductID     uint            `json:"productid"     validate:"required"`
	PromotionType int             `json:"promotiontype" validate:"min=0"`
	Value         decimal.Decimal `json:"value"         validate:"required"`
	StartDate     time.Time       `json:"startdate"     validate:"required"`
	EndDate       time.Time       `json:"enddate"       validate:"required"`
}

type PromotionResponse struct {
	ID            uint            `json:"id"`
	ProductID     uint            `json:"productid"`
	PromotionType int             `json:"promotiontype"`
	Value         decimal.Decimal `json:"value"`
	StartDate     string          `json:"startdate"`
	EndDate       string          `json:"enddate"`
}
