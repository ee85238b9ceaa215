package service_test

import (
	"context"
	"testing"
	"time"

	"apitf/internal/clock"
	"apitf/internal/dto"
	"apitf/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildProductSvc() (service.ProductService, *stubProductRepo, *stubStockLogRepo, *clock.MockClock) {
	productRepo := newStubProductRepo()
	logRepo := newStubStockLogRepo(productRepo)
	clk := clock.NewMockClock(time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))

	logSvc := service.NewLogService(logRepo, productRepo)
	svc := service.NewProductService(productRepo, logSvc, clk)
	return svc, productRepo, logRepo, clk
}

func TestInsertProduct_LogsInitialStock(t *testing.T) {
	svc, _, logRepo, _ := buildProductSvc()

	resp, err := svc.Insert(context.Background(), dto.CreateProductRequest{
		Barcode:     "7891000100103",
		BarcodeType: "EAN13",
		Description: "Leite integral 1L",
		Price:       decimal.NewFromFloat(5.99),
		CostPrice:   decimal.NewFromFloat(3.50),
		Stock:       10,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, resp.Stock)

	// Opening audit entry: delta = initial stock.
	assert.Equal(t, []int{10}, logRepo.deltasFor(resp.ID))
}

func TestGetProduct_NotFound(t *testing.T) {
	svc, _, _, _ := buildProductSvc()

	_, err := svc.GetByID(context.Background(), 42)
	var nf *service.NotFoundError
	require.ErrorAs(t, err, &nf)

	_, err = svc.GetByBarcode(context.Background(), "0000000000000")
	require.ErrorAs(t, err, &nf)
}

func TestSearchByDescription(t *testing.T) {
	svc, productRepo, _, _ := buildProductSvc()
	seedProduct(productRepo, "Arroz branco 5kg", "7891000100110", 25.90, 8)
	seedProduct(productRepo, "Arroz integral 1kg", "7891000100127", 9.90, 4)
	seedProduct(productRepo, "Feijão preto 1kg", "7891000100134", 8.50, 6)

	results, err := svc.SearchByDescription(context.Background(), "arroz")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	_, err = svc.SearchByDescription(context.Background(), "macarrão")
	var nf *service.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestUpdateProduct_DoesNotTouchStock(t *testing.T) {
	svc, productRepo, logRepo, _ := buildProductSvc()
	p := seedProduct(productRepo, "Café torrado 500g", "7891000100141", 18.90, 15)

	resp, err := svc.Update(context.Background(), p.ID, dto.UpdateProductRequest{
		Barcode:     p.Barcode,
		BarcodeType: p.BarcodeType,
		Description: "Café torrado e moído 500g",
		Price:       decimal.NewFromFloat(19.90),
		CostPrice:   decimal.NewFromFloat(11.00),
	})
	require.NoError(t, err)
	assert.Equal(t, "Café torrado e moído 500g", resp.Description)
	assert.Equal(t, 15, resp.Stock)

	// Update logs a zero delta: the trail still records the write instant.
	assert.Equal(t, []int{0}, logRepo.deltasFor(p.ID))
}

func TestAdjustStock_ZeroDeltaRejected(t *testing.T) {
	svc, productRepo, logRepo, _ := buildProductSvc()
	p := seedProduct(productRepo, "Açúcar refinado 1kg", "7891000100158", 4.20, 30)

	_, err := svc.AdjustStock(context.Background(), p.ID, 0)
	var inv *service.InvalidOperationError
	require.ErrorAs(t, err, &inv)

	// Rejected regardless of current stock, before any lookup or write.
	assert.Empty(t, logRepo.deltasFor(p.ID))
	assert.Equal(t, 30, productRepo.products[p.ID].Stock)
}

func TestAdjustStock_InsufficientStock(t *testing.T) {
	svc, productRepo, logRepo, _ := buildProductSvc()
	p := seedProduct(productRepo, "Óleo de soja 900ml", "7891000100165", 7.80, 3)

	_, err := svc.AdjustStock(context.Background(), p.ID, -4)
	var is *service.InsufficientStockError
	require.ErrorAs(t, err, &is)

	assert.Equal(t, 3, productRepo.products[p.ID].Stock)
	assert.Empty(t, logRepo.deltasFor(p.ID))
}

func TestAdjustStock_ExactDepletion(t *testing.T) {
	svc, productRepo, _, _ := buildProductSvc()
	p := seedProduct(productRepo, "Sal refinado 1kg", "7891000100172", 2.50, 5)

	resp, err := svc.AdjustStock(context.Background(), p.ID, -5)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Stock)
	assert.Equal(t, 0, productRepo.products[p.ID].Stock)
}

func TestAdjustStock_NotFound(t *testing.T) {
	svc, _, _, _ := buildProductSvc()

	_, err := svc.AdjustStock(context.Background(), 999, 5)
	var nf *service.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestStockAudit_SumEqualsCurrentStock(t *testing.T) {
	svc, productRepo, logRepo, _ := buildProductSvc()

	resp, err := svc.Insert(context.Background(), dto.CreateProductRequest{
		Barcode:     "7891000100189",
		BarcodeType: "EAN13",
		Description: "Farinha de trigo 1kg",
		Price:       decimal.NewFromFloat(6.30),
		CostPrice:   decimal.NewFromFloat(3.90),
		Stock:       10,
	})
	require.NoError(t, err)

	_, err = svc.AdjustStock(context.Background(), resp.ID, 5)
	require.NoError(t, err)
	_, err = svc.AdjustStock(context.Background(), resp.ID, -3)
	require.NoError(t, err)

	assert.Equal(t, []int{10, 5, -3}, logRepo.deltasFor(resp.ID))

	sum := 0
	for _, d := range logRepo.deltasFor(resp.ID) {
		sum += d
	}
	assert.Equal(t, productRepo.products[resp.ID].Stock, sum)
	assert.Equal(t, 12, sum)
}
