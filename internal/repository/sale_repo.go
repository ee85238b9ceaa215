package repository

import (
	"context"
	"time"

	"apitf/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaleReportRow is the raw projection of the period report query: one sale
// line joined with its product description.
type SaleReportRow struct {
	Code        string
	Description string
	Price       decimal.Decimal
	Discount    decimal.Decimal
	Qty         int
	CreatedAt   time.Time
}

type SaleRepository interface {
	CreateTx(tx *gorm.DB, s *model.Sale) error
	FindByCode(ctx context.Context, code string) ([]model.Sale, error)

	// ReportByPeriod covers [start, end + 1 day): the end date is inclusive
	// of its whole day. Rows come back ordered by sale instant ascending.
	ReportByPeriod(ctx context.Context, start, end time.Time) ([]SaleReportRow, error)

	DB() *gorm.DB
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) DB() *gorm.DB { return r.db }

func (r *saleRepo) CreateTx(tx *gorm.DB, s *model.Sale) error {
	return tx.Create(s).Error
}

func (r *saleRepo) FindByCode(ctx context.Context, code string) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("code = ?", code).
		Order("id ASC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepo) ReportByPeriod(ctx context.Context, start, end time.Time) ([]SaleReportRow, error) {
	var rows []SaleReportRow
	err := r.db.WithContext(ctx).
		Model(&model.Sale{}).
		Select("sales.code, products.description, sales.price, sales.discount, sales.qty, sales.created_at").
		Joins("JOIN products ON products.id = sales.product_id").
		Where("sales.created_at >= ? AND sales.created_at < ?", start, end.AddDate(0, 0, 1)).
		Order("sales.created_at ASC").
		Scan(&rows).Error
	return rows, err
}
