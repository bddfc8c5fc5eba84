package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jpmanalo/bakepos-counter/internal/config"
	"github.com/jpmanalo/bakepos-counter/internal/presentation/http/handler"
	"github.com/jpmanalo/bakepos-counter/internal/presentation/http/middleware"
	"github.com/jpmanalo/bakepos-counter/pkg/utils"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Session  *handler.SessionHandler
	Catalog  *handler.CatalogHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Receipt  *handler.ReceiptHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
	Log        *zap.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		// Public routes (no session required)
		v1.POST("/auth/session", h.Session.Start)

		// Protected routes (session required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewSessionRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Catalog
	protected.GET("/catalog", h.Catalog.GetCatalog)
	protected.POST("/catalog/refresh", h.Catalog.Refresh)

	// Cart and payment panel
	protected.GET("/cart", h.Cart.GetCart)
	protected.POST("/cart/items", h.Cart.AddItem)
	protected.DELETE("/cart/items/:product_id", h.Cart.RemoveItem)
	protected.PUT("/cart/payment", h.Cart.SetPayment)

	// Checkout
	protected.POST("/checkout", h.Checkout.Checkout)

	// Sales journal
	protected.GET("/receipts", h.Receipt.List)
	protected.GET("/receipts/:id", h.Receipt.Get)
	protected.POST("/receipts/:id/print", h.Receipt.Print)
	protected.GET("/printer/status", h.Receipt.PrinterStatus)
}
