package repository

import (
	"context"

	"apitf/internal/model"

	"gorm.io/gorm"
)

type StockLogRepository interface {
	CreateTx(tx *gorm.DB, l *model.StockLog) error

	// FindByProduct returns the full audit trail of one product, oldest
	// first, with the product resolved for the read projection.
	FindByProduct(ctx context.Context, productID uint) ([]model.StockLog, error)
}

type stockLogRepo struct{ db *gorm.DB }

func NewStockLogRepository(db *gorm.DB) StockLogRepository { return &stockLogRepo{db: db} }

func (r *stockLogRepo) CreateTx(tx *gorm.DB, l *model.StockLog) error {
	return tx.Create(l).Error
}

func (r *stockLogRepo) FindByProduct(ctx context.Context, productID uint) ([]model.StockLog, error) {
	var logs []model.StockLog
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("product_id = ?", productID).
		Order("created_at ASC, id ASC").
		Find(&logs).Error
	return logs, err
}
