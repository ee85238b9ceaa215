package service_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"apitf/internal/model"
	"apitf/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubProductRepo is an in-memory ProductRepository for testing. DB() returns
// nil so services run their transaction bodies directly (see service.runTx);
// the Tx methods accept the resulting nil *gorm.DB.
type stubProductRepo struct {
	products map[uint]*model.Product
	nextID   uint
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uint]*model.Product)}
}

func (r *stubProductRepo) CreateTx(_ *gorm.DB, p *model.Product) error {
	if p.ID == 0 {
		r.nextID++
		p.ID = r.nextID
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uint) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) FindByBarcode(_ context.Context, barcode string) (*model.Product, error) {
	for _, p := range r.products {
		if p.Barcode == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) SearchByDescription(_ context.Context, substr string) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if containsFold(p.Description, substr) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Description < out[j].Description })
	return out, nil
}

func (r *stubProductRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := r.products[id]
	return ok, nil
}

// FindByIDForUpdateTx returns a copy: the caller mutates it and persists via
// SaveTx, exactly like the row-lock read path against postgres.
func (r *stubProductRepo) FindByIDForUpdateTx(_ *gorm.DB, id uint) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) SaveTx(_ *gorm.DB, p *model.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

var _ repository.ProductRepository = (*stubProductRepo)(nil)

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// stubPromotionRepo is an in-memory PromotionRepository.
type stubPromotionRepo struct {
	promotions map[uint]*model.Promotion
	nextID     uint
}

func newStubPromotionRepo() *stubPromotionRepo {
	return &stubPromotionRepo{promotions: make(map[uint]*model.Promotion)}
}

func (r *stubPromotionRepo) Create(_ context.Context, p *model.Promotion) error {
	if p.ID == 0 {
		r.nextID++
		p.ID = r.nextID
	}
	cp := *p
	r.promotions[p.ID] = &cp
	return nil
}

func (r *stubPromotionRepo) FindByID(_ context.Context, id uint) (*model.Promotion, error) {
	p, ok := r.promotions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubPromotionRepo) Save(_ context.Context, p *model.Promotion) error {
	cp := *p
	r.promotions[p.ID] = &cp
	return nil
}

func (r *stubPromotionRepo) FindActive(_ context.Context, productID uint, at time.Time) ([]model.Promotion, error) {
	var out []model.Promotion
	for _, p := range r.promotions {
		if p.ProductID == productID && !at.Before(p.StartDate) && !at.After(p.EndDate) {
			out = append(out, *p)
		}
	}
	// Application order: end date descending, then start date descending.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].EndDate.Equal(out[j].EndDate) {
			return out[i].EndDate.After(out[j].EndDate)
		}
		return out[i].StartDate.After(out[j].StartDate)
	})
	return out, nil
}

func (r *stubPromotionRepo) FindByProductAndPeriod(_ context.Context, productID uint, start, end time.Time) ([]model.Promotion, error) {
	var out []model.Promotion
	for _, p := range r.promotions {
		if p.ProductID == productID && !p.StartDate.Before(start) && !p.EndDate.After(end) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

var _ repository.PromotionRepository = (*stubPromotionRepo)(nil)

// stubSaleRepo is an in-memory SaleRepository. ReportByPeriod resolves the
// product description through the product repo, mirroring the SQL join.
type stubSaleRepo struct {
	sales    []*model.Sale
	products *stubProductRepo
	nextID   uint
}

func newStubSaleRepo(products *stubProductRepo) *stubSaleRepo {
	return &stubSaleRepo{products: products}
}

func (r *stubSaleRepo) CreateTx(_ *gorm.DB, s *model.Sale) error {
	r.nextID++
	s.ID = r.nextID
	cp := *s
	r.sales = append(r.sales, &cp)
	return nil
}

func (r *stubSaleRepo) FindByCode(_ context.Context, code string) ([]model.Sale, error) {
	var out []model.Sale
	for _, s := range r.sales {
		if s.Code == code {
			cp := *s
			if p, ok := r.products.products[s.ProductID]; ok {
				pcp := *p
				cp.Product = &pcp
			}
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubSaleRepo) ReportByPeriod(_ context.Context, start, end time.Time) ([]repository.SaleReportRow, error) {
	cutoff := end.AddDate(0, 0, 1)
	var out []repository.SaleReportRow
	for _, s := range r.sales {
		if s.CreatedAt.Before(start) || !s.CreatedAt.Before(cutoff) {
			continue
		}
		description := ""
		if p, ok := r.products.products[s.ProductID]; ok {
			description = p.Description
		}
		out = append(out, repository.SaleReportRow{
			Code:        s.Code,
			Description: description,
			Price:       s.Price,
			Discount:    s.Discount,
			Qty:         s.Qty,
			CreatedAt:   s.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *stubSaleRepo) DB() *gorm.DB { return nil }

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

// stubStockLogRepo captures appended audit entries for assertion.
type stubStockLogRepo struct {
	logs     []*model.StockLog
	products *stubProductRepo
	nextID   uint
}

func newStubStockLogRepo(products *stubProductRepo) *stubStockLogRepo {
	return &stubStockLogRepo{products: products}
}

func (r *stubStockLogRepo) CreateTx(_ *gorm.DB, l *model.StockLog) error {
	r.nextID++
	l.ID = r.nextID
	cp := *l
	r.logs = append(r.logs, &cp)
	return nil
}

func (r *stubStockLogRepo) FindByProduct(_ context.Context, productID uint) ([]model.StockLog, error) {
	var out []model.StockLog
	for _, l := range r.logs {
		if l.ProductID != productID {
			continue
		}
		cp := *l
		if p, ok := r.products.products[l.ProductID]; ok {
			pcp := *p
			cp.Product = &pcp
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

var _ repository.StockLogRepository = (*stubStockLogRepo)(nil)

// deltasFor returns the ordered audit deltas of one product.
func (r *stubStockLogRepo) deltasFor(productID uint) []int {
	var out []int
	for _, l := range r.logs {
		if l.ProductID == productID {
			out = append(out, l.Qty)
		}
	}
	return out
}

// ── Seed helpers ──────────────────────────────────────────────────────────────

func seedProduct(repo *stubProductRepo, description, barcode string, price float64, stock int) *model.Product {
	p := &model.Product{
		Barcode:     barcode,
		BarcodeType: "EAN13",
		Description: description,
		Price:       decimal.NewFromFloat(price),
		CostPrice:   decimal.NewFromFloat(price / 2),
		Stock:       stock,
	}
	_ = repo.CreateTx(nil, p)
	return repo.products[p.ID]
}

func seedPromotion(repo *stubPromotionRepo, productID uint, promoType int, value float64, start, end time.Time) *model.Promotion {
	p := &model.Promotion{
		ProductID:     productID,
		PromotionType: promoType,
		Value:         decimal.NewFromFloat(value),
		StartDate:     start,
		EndDate:       end,
	}
	_ = repo.Create(context.Background(), p)
	return repo.promotions[p.ID]
}
