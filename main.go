package main

import (
	"log"

	"drop-service/catalog"
	"drop-service/controllers"
	"drop-service/logger"
	"drop-service/middleware"
	"drop-service/providers"
	"drop-service/repository"
	"drop-service/routes"
	"drop-service/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	// Load configuration
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatal("[DropService] ❌ Failed to load config:", err)
	}

	// Initialize logger
	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal("[DropService] ❌ Failed to initialize logger:", err)
	}
	defer zlog.Sync()

	// Inventory store
	redisClient := repository.NewRedisClient(cfg.RedisURL)
	inventoryRepo := repository.NewRedisInventoryRepository(redisClient)

	// Catalog (read-only, refreshed out of band by the import tooling)
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatal("[DropService] ❌ Failed to load catalog:", err)
	}

	// Stripe + Printful setup
	stripeSvc := services.NewStripeService(cfg.StripeSecretKey, cfg.StripeWebhookSecret)
	printful := providers.NewPrintfulProvider(cfg.PrintfulAPIKey)

	checkoutSvc := services.NewCheckoutService(cat, inventoryRepo, stripeSvc, services.CheckoutConfig{
		AllowedCountries:           cfg.AllowedCountries,
		FreeShippingThresholdCents: cfg.FreeShippingThresholdCents,
		ShippingFeeCents:           cfg.ShippingFeeCents,
	}, zlog)
	webhookSvc := services.NewWebhookService(inventoryRepo, printful, cfg.PrintfulAutoConfirm, zlog)

	// HTTP server
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.Metrics())

	cc := controllers.NewCheckoutController(checkoutSvc)
	wc := controllers.NewWebhookController(stripeSvc, webhookSvc, zlog)
	ic := controllers.NewInventoryController(cat, inventoryRepo)
	routes.RegisterRoutes(r, cc, wc, ic)

	log.Println("[DropService] ✅ Running on port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("[DropService] ❌ Server failed:", err)
	}
}
