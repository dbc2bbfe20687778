package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/cache"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/config"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/db"
	httpHandlers "github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/http/handlers"
	httpRouter "github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/http/router"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/logger"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/metrics"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/repository"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/service"
	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/ws"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	logLevel := "info"
	if cfg.Env == "development" {
		logLevel = "debug"
		logger.Init(logLevel)
		logger.SetTextFormatter()
	} else {
		logger.Init(logLevel)
	}

	// Подключение к базе и миграции.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("main: ошибка подключения к базе: %v", err)
	}
	defer safeClose(dbConn)

	if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
		log.Fatalf("main: ошибка миграций: %v", err)
	}

	// Кэш: Redis если задан адрес, иначе встроенное хранилище в памяти.
	var store cache.Store
	if cfg.RedisAddr != "" {
		redisStore, err := cache.NewRedisStore(ctx, cfg.RedisAddr)
		if err != nil {
			log.Fatalf("main: ошибка подключения к redis: %v", err)
		}
		store = redisStore
	} else {
		store = cache.NewMemoryStore()
		log.Printf("main: REDIS_ADDR не задан, кэш работает в памяти процесса")
	}

	// Вспомогательные сервисы и метрики.
	tokenManager := service.NewTokenManager(cfg.JWTSecret, cfg.RefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	storeMetrics := metrics.NewStoreMetrics()

	// Репозитории.
	sellerRepo := repository.NewSellerRepository(dbConn)
	productRepo := repository.NewProductRepository(dbConn)
	orderRepo := repository.NewOrderRepository(dbConn)
	withdrawalRepo := repository.NewWithdrawalRepository(dbConn)
	notificationRepo := repository.NewNotificationRepository(dbConn)
	transactionRepo := repository.NewTransactionRepository(dbConn)

	// Вебсокеты.
	hub := ws.NewHub()
	go hub.Run()

	// Сервисы.
	authService := service.NewAuthService(sellerRepo, tokenManager)
	notificationService := service.NewNotificationService(notificationRepo, hub)
	orderService := service.NewOrderService(orderRepo, notificationService, storeMetrics)
	catalogService := service.NewCatalogService(sellerRepo, productRepo, store, service.CatalogConfig{
		TTL:         cfg.CatalogCacheTTL,
		MaxProducts: cfg.CatalogCacheMax,
		ChunkSize:   cfg.CatalogChunk,
	}, storeMetrics)
	productService := service.NewProductService(productRepo)
	withdrawalService := service.NewWithdrawalService(withdrawalRepo, sellerRepo, storeMetrics)
	sellerService := service.NewSellerService(sellerRepo)
	dashboardService := service.NewDashboardService(sellerRepo, orderRepo, productRepo, withdrawalRepo, notificationRepo, transactionRepo, store)
	seedService := service.NewSeedService(sellerRepo, productRepo, orderRepo, withdrawalRepo)

	// HTTP хэндлеры.
	authHandler := httpHandlers.NewAuthHandler(authService)
	storefrontHandler := httpHandlers.NewStorefrontHandler(catalogService)
	orderHandler := httpHandlers.NewOrderHandler(orderService)
	productHandler := httpHandlers.NewProductHandler(productService)
	withdrawalHandler := httpHandlers.NewWithdrawalHandler(withdrawalService)
	notificationHandler := httpHandlers.NewNotificationHandler(notificationService)
	profileHandler := httpHandlers.NewProfileHandler(sellerService)
	dashboardHandler := httpHandlers.NewDashboardHandler(dashboardService)
	healthHandler := httpHandlers.NewHealthHandler(dbConn)
	wsHandler := httpHandlers.NewWSHandler(hub, tokenManager)
	seedHandler := httpHandlers.NewSeedHandler(seedService)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, authHandler, storefrontHandler, orderHandler, productHandler, withdrawalHandler, notificationHandler, profileHandler, dashboardHandler, healthHandler, wsHandler, seedHandler, tokenManager, sellerRepo)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	}()

	log.Printf("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("main: ошибка закрытия базы: %v", err)
	}
}
