package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/config"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/http/handlers"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/http/middleware"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/service"
)

func SetupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	storefrontHandler *handlers.StorefrontHandler,
	orderHandler *handlers.OrderHandler,
	productHandler *handlers.ProductHandler,
	withdrawalHandler *handlers.WithdrawalHandler,
	notificationHandler *handlers.NotificationHandler,
	profileHandler *handlers.ProfileHandler,
	dashboardHandler *handlers.DashboardHandler,
	healthHandler *handlers.HealthHandler,
	wsHandler *handlers.WSHandler,
	seedHandler *handlers.SeedHandler,
	tokenManager *service.TokenManager,
	sellers middleware.SellerGetter,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	if seedHandler != nil && cfg.Env == "development" {
		api.POST("/seed", seedHandler.Seed)
	}

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod))
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.POST("/logout", authHandler.Logout)
	}

	// Публичная витрина
	api.GET("/storefront/products", storefrontHandler.ListProducts)
	api.GET("/ws", wsHandler.Handle)

	// Уведомления доступны и замороженным продавцам
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(tokenManager))
	{
		protected.GET("/notifications", notificationHandler.List)
		protected.GET("/notifications/unread/count", notificationHandler.CountUnread)
		protected.POST("/notifications/:id/read", middleware.UUIDValidator("id"), notificationHandler.MarkAsRead)
		protected.POST("/notifications/read-all", notificationHandler.MarkAllAsRead)
	}

	// Операции кабинета: закрыты для замороженных продавцов
	operations := api.Group("/")
	operations.Use(middleware.AuthMiddleware(tokenManager))
	operations.Use(middleware.FrozenGuard(sellers))
	{
		operations.GET("/profile", profileHandler.GetProfile)
		operations.PATCH("/profile/settings", profileHandler.UpdateSettings)

		operations.GET("/dashboard/summary", dashboardHandler.GetSummary)
		operations.GET("/dashboard/transactions", dashboardHandler.ListTransactions)

		operations.GET("/orders", orderHandler.ListOrders)
		operations.GET("/orders/:id", middleware.UUIDValidator("id"), orderHandler.GetOrder)
		operations.POST("/orders/:id/pick", middleware.UUIDValidator("id"), orderHandler.PickOrder)
		operations.PATCH("/orders/:id/status", middleware.UUIDValidator("id"), orderHandler.UpdateStatus)
		operations.GET("/orders/:id/history", middleware.UUIDValidator("id"), orderHandler.ListStatusHistory)
		operations.DELETE("/orders/:id", middleware.UUIDValidator("id"), orderHandler.DeleteOrder)

		operations.GET("/products", productHandler.ListInventory)
		operations.GET("/products/candidates", productHandler.ListCandidates)
		operations.POST("/products", productHandler.AddProduct)
		operations.DELETE("/products/:id", middleware.UUIDValidator("id"), productHandler.RemoveProduct)

		operations.POST("/withdrawals", withdrawalHandler.CreateWithdrawal)
		operations.GET("/withdrawals", withdrawalHandler.ListWithdrawals)
		operations.GET("/withdrawals/:id", middleware.UUIDValidator("id"), withdrawalHandler.GetWithdrawal)
	}

	return r
}
