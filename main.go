package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/controllers"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/database"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/kafka"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/middleware"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/models"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/repository"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/routes"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/services"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	cfg, err := LoadConfig()
	if err != nil {
		logger.Fatal("Config load failed", zap.Error(err))
	}

	// --- Database ---
	if err := database.Connect(
		cfg.PostgresHost, cfg.PostgresPort,
		cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresDB,
		cfg.PostgresSSLMode, cfg.PostgresTimeZone,
	); err != nil {
		logger.Fatal("DB connection failed", zap.Error(err))
	}
	if err := database.DB.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.ProductVariant{},
		&models.HomepageSlide{},
		&models.Discount{},
		&models.ShippingRule{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		logger.Fatal("Migration failed", zap.Error(err))
	}

	// --- Redis (cart store) ---
	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		logger.Fatal("Redis connection failed", zap.Error(err))
	}

	// --- Kafka producer ---
	producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.OrderEventsTopic)

	// --- HTTP router ---
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimit(rate.Limit(50), 100))

	// Request timeout middleware
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// --- Dependency injection ---
	categoryRepo := repository.NewGormCategoryRepository(database.DB)
	slideRepo := repository.NewGormHomepageSlideRepository(database.DB)
	productRepo := repository.NewGormProductRepository(database.DB)
	discountRepo := repository.NewGormDiscountRepository(database.DB)
	shippingRepo := repository.NewGormShippingRuleRepository(database.DB)
	orderRepo := repository.NewGormOrderRepository(database.DB)
	cartRepo := repository.NewCartRepository(redisClient, cfg.CartTTL)

	clock := services.SystemClock()
	catalogService := services.NewCatalogService(productRepo, logger)
	categoryService := services.NewCategoryService(categoryRepo, logger)
	slideService := services.NewHomepageSlideService(slideRepo, logger)
	discountService := services.NewDiscountService(discountRepo, clock, logger)
	shippingService := services.NewShippingService(shippingRepo, logger)
	sequence := services.NewOrderNumberSequence(orderRepo)
	orderService := services.NewOrderService(
		orderRepo, cartRepo, catalogService, shippingService,
		discountService, sequence, producer, clock, cfg.TaxRate, logger,
	)

	productController := controllers.NewProductController(catalogService)
	cartController := controllers.NewCartController(cartRepo, catalogService, logger)
	discountController := controllers.NewDiscountController(discountService)
	shippingController := controllers.NewShippingController(shippingService)
	orderController := controllers.NewOrderController(orderService)
	categoryController := controllers.NewCategoryController(categoryService)
	homepageController := controllers.NewHomepageController(slideService)

	routes.RegisterRoutes(r, productController, cartController, discountController, shippingController, orderController, categoryController, homepageController)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "service": "storefront"})
	})

	// --- HTTP server ---
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Info("Storefront service started", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Initiating graceful shutdown...")
	httpShutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(httpShutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}
	if err := producer.Close(); err != nil {
		logger.Error("Kafka producer close error", zap.Error(err))
	}
	if err := redisClient.Close(); err != nil {
		logger.Error("Redis close error", zap.Error(err))
	}
	if err := database.Close(); err != nil {
		logger.Error("Database close error", zap.Error(err))
	}

	log.Println("Storefront service stopped gracefully")
}
