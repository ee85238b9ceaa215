package service

import (
	"context"
	"errors"
	"time"

	"apitf/internal/clock"
	"apitf/internal/dto"
	"apitf/internal/model"
	"apitf/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PromotionService manages promotion rows and selects the ones active at a
// given instant. Value semantics are validated here, at write time, and
// trusted later by the pricing fold.
type PromotionService interface {
	Insert(ctx context.Context, req dto.PromotionRequest) (*dto.PromotionResponse, error)
	Update(ctx context.Context, id uint, req dto.PromotionRequest) (*dto.PromotionResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.PromotionResponse, error)
	GetByProductAndPeriod(ctx context.Context, productID uint, start, end time.Time) ([]dto.PromotionResponse, error)

	// GetActivePromotions returns the promotions whose inclusive window
	// contains at, in application order (latest-ending, latest-starting
	// first). May be empty; that is not an error.
	GetActivePromotions(ctx context.Context, productID uint, at time.Time) ([]model.Promotion, error)

	// GetActiveNow is the HTTP-facing variant: it reads the clock once at
	// entry and delegates to GetActivePromotions.
	GetActiveNow(ctx context.Context, productID uint) ([]dto.PromotionResponse, error)
}

type promotionService struct {
	repo        repository.PromotionRepository
	productRepo repository.ProductRepository
	clk         clock.Clock
}

func NewPromotionService(repo repository.PromotionRepository, productRepo repository.ProductRepository, clk clock.Clock) PromotionService {
	return &promotionService{repo: repo, productRepo: productRepo, clk: clk}
}

// validatePromotion is a pure function: it checks the business constraints
// on a promotion payload and returns field-level messages, empty when valid.
func validatePromotion(req dto.PromotionRequest) map[string]string {
	fields := make(map[string]string)

	if req.PromotionType != model.PromotionPercentage && req.PromotionType != model.PromotionFixed {
		fields["promotiontype"] = "O tipo de promoção deve ser 0 (desconto percentual) ou 1 (desconto fixo)"
	}
	if !req.Value.IsPositive() {
		fields["value"] = "O valor da promoção deve ser maior que zero"
	} else if req.PromotionType == model.PromotionPercentage && req.Value.GreaterThan(decimal.NewFromInt(100)) {
		fields["value"] = "Para desconto percentual, o valor deve estar entre 0 e 100"
	}
	if req.StartDate.IsZero() {
		fields["startdate"] = "A data de início da promoção é obrigatória"
	}
	if req.EndDate.IsZero() {
		fields["enddate"] = "A data fim da promoção é obrigatória"
	}
	if !req.StartDate.IsZero() && !req.EndDate.IsZero() && req.EndDate.Before(req.StartDate) {
		fields["enddate"] = "A data fim deve ser posterior à data de início"
	}

	return fields
}

func promotionToResponse(p *model.Promotion) *dto.PromotionResponse {
	return &dto.PromotionResponse{
		ID:            p.ID,
		ProductID:     p.ProductID,
		PromotionType: p.PromotionType,
		Value:         p.Value,
		StartDate:     p.StartDate.Format(timestampLayout),
		EndDate:       p.EndDate.Format(timestampLayout),
	}
}

func (s *promotionService) Insert(ctx context.Context, req dto.PromotionRequest) (*dto.PromotionResponse, error) {
	if fields := validatePromotion(req); len(fields) > 0 {
		return nil, NewInvalidEntity(fields)
	}

	exists, err := s.productRepo.Exists(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, NewNotFound("Produto não encontrado.")
	}

	p := &model.Promotion{
		ProductID:     req.ProductID,
		PromotionType: req.PromotionType,
		Value:         req.Value,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return promotionToResponse(p), nil
}

func (s *promotionService) Update(ctx context.Context, id uint, req dto.PromotionRequest) (*dto.PromotionResponse, error) {
	if fields := validatePromotion(req); len(fields) > 0 {
		return nil, NewInvalidEntity(fields)
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFound("Registro não existe")
		}
		return nil, err
	}

	p.ProductID = req.ProductID
	p.PromotionType = req.PromotionType
	p.Value = req.Value
	p.StartDate = req.StartDate
	p.EndDate = req.EndDate

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return promotionToResponse(p), nil
}

func (s *promotionService) GetByID(ctx context.Context, id uint) (*dto.PromotionResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFound("Registro não existe")
		}
		return nil, err
	}
	return promotionToResponse(p), nil
}

func (s *promotionService) GetByProductAndPeriod(ctx context.Context, productID uint, start, end time.Time) ([]dto.PromotionResponse, error) {
	exists, err := s.productRepo.Exists(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, NewNotFound("Produto não encontrado.")
	}

	promotions, err := s.repo.FindByProductAndPeriod(ctx, productID, start, end)
	if err != nil {
		return nil, err
	}
	if len(promotions) == 0 {
		return nil, NewNotFound("Nenhuma promoção encontrada para o período especificado.")
	}

	result := make([]dto.PromotionResponse, 0, len(promotions))
	for i := range promotions {
		result = append(result, *promotionToResponse(&promotions[i]))
	}
	return result, nil
}

func (s *promotionService) GetActivePromotions(ctx context.Context, productID uint, at time.Time) ([]model.Promotion, error) {
	return s.repo.FindActive(ctx, productID, at)
}

func (s *promotionService) GetActiveNow(ctx context.Context, productID uint) ([]dto.PromotionResponse, error) {
	exists, err := s.productRepo.Exists(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, NewNotFound("Produto não encontrado.")
	}

	promotions, err := s.repo.FindActive(ctx, productID, s.clk.Now())
	if err != nil {
		return nil, err
	}
	result := make([]dto.PromotionResponse, 0, len(promotions))
	for i := range promotions {
		result = append(result, *promotionToResponse(&promotions[i]))
	}
	return result, nil
}
