package router

import (
	"time"

	"apitf/internal/clock"
	"apitf/internal/config"
	"apitf/internal/handler"
	"apitf/internal/middleware"
	"apitf/internal/repository"
	"apitf/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, clk clock.Clock) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	productRepo := repository.NewProductRepository(db)
	promotionRepo := repository.NewPromotionRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	stockLogRepo := repository.NewStockLogRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	logSvc := service.NewLogService(stockLogRepo, productRepo)
	productSvc := service.NewProductService(productRepo, logSvc, clk)
	promotionSvc := service.NewPromotionService(promotionRepo, productRepo, clk)
	saleSvc := service.NewSaleService(saleRepo, productRepo, promotionSvc, logSvc, clk)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productsH := handler.NewProductsHandler(productSvc)
	promotionsH := handler.NewPromotionsHandler(promotionSvc)
	salesH := handler.NewSalesHandler(saleSvc, cfg.ReportStoragePath)
	logsH := handler.NewLogsHandler(logSvc)
	pricesH := handler.NewPricesHandler(productRepo, promotionSvc, rdb, clk,
		time.Duration(cfg.PriceCacheTTLSeconds)*time.Second)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	// Price check — public, cached
	r.GET("/v1/prices/:barcode", pricesH.GetByBarcode)

	v1 := r.Group("/v1")
	{
		products := v1.Group("/products")
		{
			products.POST("", productsH.Insert)
			products.GET("/search", productsH.SearchByDescription)
			products.GET("/barcode/:barcode", productsH.GetByBarcode)
			products.GET("/:id", productsH.GetByID)
			products.PUT("/:id", productsH.Update)
			products.PATCH("/:id/stock", productsH.AdjustStock)
		}

		promotions := v1.Group("/promotions")
		{
			promotions.POST("", promotionsH.Insert)
			promotions.PATCH("/:id", promotionsH.Update)
			promotions.GET("/:id", promotionsH.GetByID)
			promotions.GET("/product/:productId/active", promotionsH.GetActive)
			promotions.GET("/product/:productId/period", promotionsH.GetByProductAndPeriod)
		}

		sales := v1.Group("/sales")
		{
			sales.POST("", salesH.Register)
			sales.GET("/report", salesH.Report)
			sales.GET("/report/pdf", salesH.ReportPDF)
			sales.GET("/:code", salesH.GetByCode)
		}

		v1.GET("/logs/product/:productId", logsH.GetByProduct)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
