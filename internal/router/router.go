package router

import (
	"time"

	"lavkapos/internal/config"
	"lavkapos/internal/handler"
	"lavkapos/internal/middleware"
	"lavkapos/internal/repository"
	"lavkapos/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← JSON store
func New(cfg *config.Config, repo repository.ProfileRepository) *gin.Engine {
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
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Services ─────────────────────────────────────────────────────────────
	profileSvc := service.NewProfileService(repo)
	catalogSvc := service.NewCatalogService(repo)
	stockSvc := service.NewStockService(repo)
	orderSvc := service.NewOrderService(repo)
	reportSvc := service.NewReportService(repo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	profilesH := handler.NewProfilesHandler(profileSvc)
	productsH := handler.NewProductsHandler(catalogSvc)
	stockH := handler.NewStockHandler(stockSvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	reportsH := handler.NewReportsHandler(reportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(repo))

	v1 := r.Group("/v1")
	{
		v1.GET("/profiles", profilesH.List)
		v1.POST("/profiles", profilesH.Create)
		v1.DELETE("/profiles/:profile", profilesH.Delete)

		p := v1.Group("/profiles/:profile")
		{
			p.GET("/products", productsH.List)
			p.POST("/products", productsH.Create)
			p.PUT("/products/:name", productsH.Update)
			p.DELETE("/products/:name", productsH.Delete)

			p.GET("/stock", stockH.Warehouse)
			p.POST("/stock/replenish", stockH.Replenish)
			p.POST("/stock/adjust", stockH.Adjust)
			p.GET("/stock/history/:name", stockH.History)

			p.POST("/orders", ordersH.Place)
			p.GET("/orders", ordersH.List)
			p.GET("/orders/:number", ordersH.Get)
			p.GET("/orders/:number/receipt", ordersH.Receipt)

			p.GET("/stats/daily", reportsH.Daily)
			p.GET("/reports/sales", reportsH.Sales)
			p.GET("/reports/sales/export", reportsH.SalesExport)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
