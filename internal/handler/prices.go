package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"apitf/internal/apierror"
	"apitf/internal/clock"
	"apitf/internal/dto"
	"apitf/internal/repository"
	"apitf/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// PricesHandler serves the public price check endpoint: the product's list
// price with active promotions already composed in. Responses are cached in
// Redis with a short TTL since the effective price changes whenever a
// promotion window opens or closes.
type PricesHandler struct {
	repo       repository.ProductRepository
	promotions service.PromotionService
	rdb        *redis.Client
	clk        clock.Clock
	ttl        time.Duration
}

func NewPricesHandler(
	repo repository.ProductRepository,
	promotions service.PromotionService,
	rdb *redis.Client,
	clk clock.Clock,
	ttl time.Duration,
) *PricesHandler {
	return &PricesHandler{repo: repo, promotions: promotions, rdb: rdb, clk: clk, ttl: ttl}
}

func (h *PricesHandler) GetByBarcode(c *gin.Context) {
	barcode := c.Param("barcode")
	ctx := c.Request.Context()
	cacheKey := "price:" + barcode

	// 1. Try Redis cache
	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.PriceCheckResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	// 2. Cache miss — query DB and compose the effective price
	product, err := h.repo.FindByBarcode(ctx, barcode)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Produto não encontrado."))
		return
	}

	promos, err := h.promotions.GetActivePromotions(ctx, product.ID, h.clk.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	effective := service.ComposePrice(product.Price, promos)

	resp := dto.PriceCheckResponse{
		Barcode:        product.Barcode,
		Description:    product.Description,
		Price:          product.Price,
		EffectivePrice: effective,
		HasPromotion:   len(promos) > 0,
		Stock:          product.Stock,
	}

	// 3. Populate cache — best effort, ignore errors
	if h.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), cacheKey, b, h.ttl).Err()
		}
	}

	c.JSON(http.StatusOK, resp)
}
