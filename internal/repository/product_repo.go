package repository

import (
	"context"

	"apitf/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
//
// The ...Tx variants take a live *gorm.DB transaction; unit test stubs accept
// a nil tx (see service.runTx).
type ProductRepository interface {
	CreateTx(tx *gorm.DB, p *model.Product) error
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	FindByBarcode(ctx context.Context, barcode string) (*model.Product, error)
	SearchByDescription(ctx context.Context, substr string) ([]model.Product, error)
	Exists(ctx context.Context, id uint) (bool, error)

	// FindByIDForUpdateTx reads the product row under a per-row write lock
	// (SELECT ... FOR UPDATE). Concurrent stock adjustments on the same
	// product serialize on this lock; different products do not contend.
	FindByIDForUpdateTx(tx *gorm.DB, id uint) (*model.Product, error)
	SaveTx(tx *gorm.DB, p *model.Product) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) CreateTx(tx *gorm.DB, p *model.Product) error {
	return tx.Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindByBarcode(ctx context.Context, barcode string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("barcode = ?", barcode).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) SearchByDescription(ctx context.Context, substr string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("description ILIKE ?", "%"+substr+"%").
		Order("description ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *productRepo) FindByIDForUpdateTx(tx *gorm.DB, id uint) (*model.Product, error) {
	var p model.Product
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) SaveTx(tx *gorm.DB, p *model.Product) error {
	return tx.Save(p).Error
}

func (r *productRepo) DB() *gorm.DB { return r.db }
