package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/luzbrill/pos-terminal/internal/config"
	"github.com/luzbrill/pos-terminal/internal/presentation/http/handler"
	"github.com/luzbrill/pos-terminal/internal/presentation/http/middleware"
	"github.com/luzbrill/pos-terminal/pkg/capability"
	"github.com/luzbrill/pos-terminal/pkg/utils"
)

// Setup configures all routes for the application
func Setup(
	cfg *config.Config,
	verifier *utils.TokenVerifier,
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
	lookupHandler *handler.LookupHandler,
) *gin.Engine {
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.MetricsMiddleware())

	limits := middleware.DefaultRateLimiterConfig()
	if cfg.RateLimit.Requests > 0 && cfg.RateLimit.Duration > 0 {
		limits.RequestsPerSecond = float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration)
		limits.BurstSize = cfg.RateLimit.Requests
	}
	rateLimiter := middleware.NewTerminalRateLimiter(limits)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(verifier))
	v1.Use(rateLimiter.Middleware())
	{
		carts := v1.Group("/carts")
		{
			carts.POST("", cartHandler.Create)
			carts.GET("/:id", cartHandler.Get)
			carts.DELETE("/:id", cartHandler.Delete)
			carts.POST("/:id/lines", cartHandler.AddLine)
			carts.PATCH("/:id/lines/:index", cartHandler.UpdateLine)
			carts.DELETE("/:id/lines/:index", cartHandler.RemoveLine)
			carts.PUT("/:id/client", cartHandler.SetClient)
			carts.PUT("/:id/tender", cartHandler.SetTender)
			carts.POST("/:id/submit", middleware.RequireCapability(capability.SaleCreate), checkoutHandler.Submit)
			carts.POST("/:id/load/:sale_id", middleware.RequireCapability(capability.SaleCreate), checkoutHandler.LoadForEdit)
		}

		sales := v1.Group("/sales")
		{
			sales.GET("/:id", middleware.RequireCapability(capability.SaleView), checkoutHandler.GetSale)
			sales.POST("/:id/confirm", middleware.RequireCapability(capability.SaleCreate), checkoutHandler.ConfirmPending)
			sales.POST("/:id/annul", middleware.RequireCapability(capability.SaleAnnul), checkoutHandler.Annul)
		}

		items := v1.Group("/items")
		{
			items.GET("", lookupHandler.ListItems)
			items.GET("/lookup/:code", lookupHandler.LookupItem)
		}

		clients := v1.Group("/clients")
		{
			clients.GET("", lookupHandler.ListClients)
			clients.GET("/:id", lookupHandler.GetClient)
		}
	}

	return router
}
