package repository

import (
	"context"
	"time"

	"apitf/internal/model"

	"gorm.io/gorm"
)

type PromotionRepository interface {
	Create(ctx context.Context, p *model.Promotion) error
	FindByID(ctx context.Context, id uint) (*model.Promotion, error)
	Save(ctx context.Context, p *model.Promotion) error

	// FindActive returns the promotions whose inclusive window contains at,
	// ordered by end date descending then start date descending. This
	// ordering is the application order when promotions stack.
	FindActive(ctx context.Context, productID uint, at time.Time) ([]model.Promotion, error)

	// FindByProductAndPeriod returns promotions fully contained in
	// [start, end].
	FindByProductAndPeriod(ctx context.Context, productID uint, start, end time.Time) ([]model.Promotion, error)
}

type promotionRepo struct{ db *gorm.DB }

func NewPromotionRepository(db *gorm.DB) PromotionRepository { return &promotionRepo{db: db} }

func (r *promotionRepo) Create(ctx context.Context, p *model.Promotion) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *promotionRepo) FindByID(ctx context.Context, id uint) (*model.Promotion, error) {
	var p model.Promotion
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *promotionRepo) Save(ctx context.Context, p *model.Promotion) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *promotionRepo) FindActive(ctx context.Context, productID uint, at time.Time) ([]model.Promotion, error) {
	var promotions []model.Promotion
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND start_date <= ? AND end_date >= ?", productID, at, at).
		Order("end_date DESC, start_date DESC").
		Find(&promotions).Error
	return promotions, err
}

func (r *promotionRepo) FindByProductAndPeriod(ctx context.Context, productID uint, start, end time.Time) ([]model.Promotion, error) {
	var promotions []model.Promotion
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND start_date >= ? AND end_date <= ?", productID, start, end).
		Order("start_date ASC").
		Find(&promotions).Error
	return promotions, err
}
