package service

import (
	"context"
	"time"

	"apitf/internal/dto"
	"apitf/internal/model"
	"apitf/internal/repository"

	"gorm.io/gorm"
)

// LogService owns the append-only stock audit trail. Writes happen inside
// the caller's transaction (AppendTx) so a log entry is never committed
// without the stock mutation it records, and vice versa.
type LogService interface {
	AppendTx(tx *gorm.DB, productID uint, qty int, at time.Time) error
	GetLogsByProduct(ctx context.Context, productID uint) ([]dto.StockLogResponse, error)
}

type logService struct {
	repo        repository.StockLogRepository
	productRepo repository.ProductRepository
}

func NewLogService(repo repository.StockLogRepository, productRepo repository.ProductRepository) LogService {
	return &logService{repo: repo, productRepo: productRepo}
}

func (s *logService) AppendTx(tx *gorm.DB, productID uint, qty int, at time.Time) error {
	return s.repo.CreateTx(tx, &model.StockLog{
		ProductID: productID,
		Qty:       qty,
		CreatedAt: at,
	})
}

func (s *logService) GetLogsByProduct(ctx context.Context, productID uint) ([]dto.StockLogResponse, error) {
	exists, err := s.productRepo.Exists(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, NewNotFound("Produto não encontrado.")
	}

	logs, err := s.repo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, NewNotFound("Nenhum log encontrado para o produto.")
	}

	result := make([]dto.StockLogResponse, 0, len(logs))
	for _, l := range logs {
		barcode, description := "", ""
		if l.Product != nil {
			barcode = l.Product.Barcode
			description = l.Product.Description
		}
		result = append(result, dto.StockLogResponse{
			Date:        l.CreatedAt.Format(timestampLayout),
			Barcode:     barcode,
			Description: description,
			Quantity:    l.Qty,
		})
	}
	return result, nil
}
