package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"apitf/internal/clock"
	"apitf/internal/dto"
	"apitf/internal/model"
	"apitf/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaleService is the sale transaction processor. A batch of line items is
// committed as one atomic unit: validate availability, price through the
// promotion engine, decrement stock, append one audit entry per line, and
// persist the sale rows — all or nothing.
type SaleService interface {
	RegisterBatch(ctx context.Context, req dto.RegisterSaleRequest) (*dto.SaleBatchResponse, error)
	GetByCode(ctx context.Context, code string) (*dto.SaleBatchResponse, error)
	ReportByPeriod(ctx context.Context, start, end time.Time) ([]dto.SalesReportItem, error)
}

type saleService struct {
	repo       repository.SaleRepository
	products   repository.ProductRepository
	promotions PromotionService
	logs       LogService
	clk        clock.Clock
}

func NewSaleService(
	repo repository.SaleRepository,
	products repository.ProductRepository,
	promotions PromotionService,
	logs LogService,
	clk clock.Clock,
) SaleService {
	return &saleService{
		repo:       repo,
		products:   products,
		promotions: promotions,
		logs:       logs,
		clk:        clk,
	}
}

// RegisterBatch runs the whole batch inside one transaction:
//
//  1. Lock every referenced product, in ascending id order so that two
//     batches touching the same products never deadlock.
//  2. Validate all lines against the locked rows — existence and stock
//     sufficiency, cumulative when a product repeats across lines — and
//     price each line at the batch instant. No write happens before every
//     line has passed.
//  3. Apply: decrement stock, append one audit entry per line (delta =
//     -qty), persist the sale rows under the shared code and timestamp.
//
// The first failing line aborts the batch with its typed error.
func (s *saleService) RegisterBatch(ctx context.Context, req dto.RegisterSaleRequest) (*dto.SaleBatchResponse, error) {
	code := req.Code
	if code == "" {
		code = uuid.NewString()
	}
	now := s.clk.Now()

	type pricedLine struct {
		product  *model.Product
		qty      int
		price    decimal.Decimal // per-unit base price
		discount decimal.Decimal // per-unit promotion delta
	}

	var (
		lines []pricedLine
		sales []*model.Sale
	)

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		// 1. Lock products in ascending id order.
		ids := make([]uint, 0, len(req.Items))
		seen := make(map[uint]bool, len(req.Items))
		for _, item := range req.Items {
			if !seen[item.ProductID] {
				seen[item.ProductID] = true
				ids = append(ids, item.ProductID)
			}
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		locked := make(map[uint]*model.Product, len(ids))
		for _, id := range ids {
			p, err := s.products.FindByIDForUpdateTx(tx, id)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return NewNotFound("Produto não encontrado.")
				}
				return err
			}
			locked[id] = p
		}

		// 2. Validate and price every line before writing anything.
		remaining := make(map[uint]int, len(ids))
		for id, p := range locked {
			remaining[id] = p.Stock
		}

		lines = lines[:0]
		for _, item := range req.Items {
			p := locked[item.ProductID]
			if remaining[p.ID] < item.Qty {
				return NewInsufficientStock("Estoque insuficiente para o produto: " + p.Description)
			}
			remaining[p.ID] -= item.Qty

			promos, err := s.promotions.GetActivePromotions(ctx, p.ID, now)
			if err != nil {
				return err
			}
			unit := ComposePrice(p.Price, promos)

			lines = append(lines, pricedLine{
				product:  p,
				qty:      item.Qty,
				price:    p.Price,
				discount: p.Price.Sub(unit),
			})
		}

		// 3. Apply: stock decrements, audit entries, sale rows.
		sales = sales[:0]
		for _, line := range lines {
			p := line.product
			p.Stock -= line.qty
			if err := s.products.SaveTx(tx, p); err != nil {
				return err
			}
			if err := s.logs.AppendTx(tx, p.ID, -line.qty, now); err != nil {
				return err
			}

			sale := &model.Sale{
				Code:      code,
				ProductID: p.ID,
				Qty:       line.qty,
				Price:     line.price,
				Discount:  line.discount,
				CreatedAt: now,
			}
			if err := s.repo.CreateTx(tx, sale); err != nil {
				return err
			}
			sales = append(sales, sale)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := &dto.SaleBatchResponse{
		Code:      code,
		CreatedAt: now.Format(timestampLayout),
		Total:     decimal.Zero,
	}
	for i, sale := range sales {
		item := saleToItemResponse(sale, lines[i].product.Description)
		resp.Items = append(resp.Items, item)
		resp.Total = resp.Total.Add(item.Total)
	}
	return resp, nil
}

func saleToItemResponse(sale *model.Sale, description string) dto.SaleItemResponse {
	charged := sale.Price.Sub(sale.Discount)
	return dto.SaleItemResponse{
		ID:          sale.ID,
		ProductID:   sale.ProductID,
		Product:     description,
		Qty:         sale.Qty,
		UnitPrice:   sale.Price,
		Discount:    sale.Discount,
		ChargedUnit: charged,
		Total:       charged.Mul(decimal.NewFromInt(int64(sale.Qty))),
	}
}

func (s *saleService) GetByCode(ctx context.Context, code string) (*dto.SaleBatchResponse, error) {
	sales, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return nil, NewNotFound("Venda não encontrada.")
	}

	resp := &dto.SaleBatchResponse{
		Code:      code,
		CreatedAt: sales[0].CreatedAt.Format(timestampLayout),
		Total:     decimal.Zero,
	}
	for i := range sales {
		description := ""
		if sales[i].Product != nil {
			description = sales[i].Product.Description
		}
		item := saleToItemResponse(&sales[i], description)
		resp.Items = append(resp.Items, item)
		resp.Total = resp.Total.Add(item.Total)
	}
	return resp, nil
}

// ReportByPeriod aggregates committed sales with the sale instant in
// [start, end + 1 day), ordered ascending by instant. The reported price is
// the unit price actually charged.
func (s *saleService) ReportByPeriod(ctx context.Context, start, end time.Time) ([]dto.SalesReportItem, error) {
	rows, err := s.repo.ReportByPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, NewNotFound("Nenhuma venda encontrada para o período.")
	}

	result := make([]dto.SalesReportItem, 0, len(rows))
	for _, row := range rows {
		result = append(result, dto.SalesReportItem{
			SaleCode:           row.Code,
			ProductDescription: row.Description,
			Price:              row.Price.Sub(row.Discount),
			Quantity:           row.Qty,
			SaleDate:           row.CreatedAt.Format(timestampLayout),
		})
	}
	return result, nil
}
