package service

import (
	"context"
	"errors"

	"apitf/internal/clock"
	"apitf/internal/dto"
	"apitf/internal/model"
	"apitf/internal/repository"

	"gorm.io/gorm"
)

// ProductService is the product ledger: it owns every stock mutation and
// guarantees that each committed change carries exactly one audit entry.
type ProductService interface {
	Insert(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ProductResponse, error)
	GetByBarcode(ctx context.Context, barcode string) (*dto.ProductResponse, error)
	SearchByDescription(ctx context.Context, description string) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	AdjustStock(ctx context.Context, id uint, qty int) (*dto.ProductResponse, error)
}

type productService struct {
	repo repository.ProductRepository
	logs LogService
	clk  clock.Clock
}

func NewProductService(repo repository.ProductRepository, logs LogService, clk clock.Clock) ProductService {
	return &productService{repo: repo, logs: logs, clk: clk}
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Barcode:     p.Barcode,
		BarcodeType: p.BarcodeType,
		Description: p.Description,
		Price:       p.Price,
		CostPrice:   p.CostPrice,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt.Format(timestampLayout),
	}
}

// Insert creates the product and writes the opening audit entry (delta =
// initial stock) in the same transaction.
func (s *productService) Insert(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	now := s.clk.Now()
	p := &model.Product{
		Barcode:     req.Barcode,
		BarcodeType: req.BarcodeType,
		Description: req.Description,
		Price:       req.Price,
		CostPrice:   req.CostPrice,
		Stock:       req.Stock,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, p); err != nil {
			return err
		}
		return s.logs.AppendTx(tx, p.ID, p.Stock, now)
	})
	if txErr != nil {
		return nil, txErr
	}
	return productToResponse(p), nil
}

func (s *productService) GetByID(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFound("Registro não existe")
		}
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) GetByBarcode(ctx context.Context, barcode string) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByBarcode(ctx, barcode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFound("Registro não existe")
		}
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) SearchByDescription(ctx context.Context, description string) ([]dto.ProductResponse, error) {
	products, err := s.repo.SearchByDescription(ctx, description)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, NewNotFound("Nenhum registro encontrado")
	}
	result := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, *productToResponse(&products[i]))
	}
	return result, nil
}

// Update replaces the descriptive fields. Stock is not touched by this path;
// the delta logged is newStock - oldStock, which is zero in normal use.
func (s *productService) Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	now := s.clk.Now()

	var p *model.Product
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		var err error
		p, err = s.repo.FindByIDForUpdateTx(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewNotFound("Registro não existe")
			}
			return err
		}

		oldStock := p.Stock
		p.Barcode = req.Barcode
		p.BarcodeType = req.BarcodeType
		p.Description = req.Description
		p.Price = req.Price
		p.CostPrice = req.CostPrice

		if err := s.repo.SaveTx(tx, p); err != nil {
			return err
		}
		return s.logs.AppendTx(tx, p.ID, p.Stock-oldStock, now)
	})
	if txErr != nil {
		return nil, txErr
	}
	return productToResponse(p), nil
}

// AdjustStock applies a signed delta to the product's stock. The read-
// modify-write runs under a per-row lock so concurrent adjustments on the
// same product serialize instead of losing updates.
func (s *productService) AdjustStock(ctx context.Context, id uint, qty int) (*dto.ProductResponse, error) {
	if qty == 0 {
		return nil, NewInvalidOperation("A quantidade a atualizar deve ser diferente de zero.")
	}
	now := s.clk.Now()

	var p *model.Product
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		var err error
		p, err = s.repo.FindByIDForUpdateTx(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewNotFound("Produto não encontrado.")
			}
			return err
		}

		if p.Stock+qty < 0 {
			return NewInsufficientStock("Estoque insuficiente para realizar a operação.")
		}

		p.Stock += qty
		if err := s.repo.SaveTx(tx, p); err != nil {
			return err
		}
		return s.logs.AppendTx(tx, p.ID, qty, now)
	})
	if txErr != nil {
		return nil, txErr
	}
	return productToResponse(p), nil
}
