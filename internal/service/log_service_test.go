package service_test

import (
	"context"
	"testing"
	"time"

	"apitf/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogsByProduct_ResolvesProductFields(t *testing.T) {
	productRepo := newStubProductRepo()
	logRepo := newStubStockLogRepo(productRepo)
	svc := service.NewLogService(logRepo, productRepo)

	p := seedProduct(productRepo, "Ervilha em conserva", "7891000400103", 3.10, 20)

	base := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, svc.AppendTx(nil, p.ID, 20, base))
	require.NoError(t, svc.AppendTx(nil, p.ID, -4, base.Add(2*time.Hour)))

	logs, err := svc.GetLogsByProduct(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	// Oldest first, with barcode and description resolved at read time.
	assert.Equal(t, 20, logs[0].Quantity)
	assert.Equal(t, -4, logs[1].Quantity)
	assert.Equal(t, "7891000400103", logs[0].Barcode)
	assert.Equal(t, "Ervilha em conserva", logs[0].Description)
	assert.Equal(t, "2026-07-01T09:00:00Z", logs[0].Date)
}

func TestGetLogsByProduct_ProductNotFound(t *testing.T) {
	productRepo := newStubProductRepo()
	logRepo := newStubStockLogRepo(productRepo)
	svc := service.NewLogService(logRepo, productRepo)

	_, err := svc.GetLogsByProduct(context.Background(), 55)
	var nf *service.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestGetLogsByProduct_EmptyTrail(t *testing.T) {
	productRepo := newStubProductRepo()
	logRepo := newStubStockLogRepo(productRepo)
	svc := service.NewLogService(logRepo, productRepo)

	p := seedProduct(productRepo, "Milho verde em lata", "7891000400110", 2.90, 10)

	_, err := svc.GetLogsByProduct(context.Background(), p.ID)
	var nf *service.NotFoundError
	assert.ErrorAs(t, err, &nf)
}
