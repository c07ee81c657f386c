// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/javlonbek/shoeshop-backend/internal/config"
	"github.com/javlonbek/shoeshop-backend/internal/handlers"
	"github.com/javlonbek/shoeshop-backend/internal/middleware"
	"github.com/javlonbek/shoeshop-backend/internal/services"
	"github.com/javlonbek/shoeshop-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	notificationService := services.NewNotificationService(cfg)
	storageService, _ := services.NewStorageService(cfg)

	authService := services.NewAuthService(db, cfg.JWT.AccessTokenTTL)
	brandService := services.NewBrandService(db)
	productService := services.NewProductService(db, brandService)
	orderService := services.NewOrderService(db)
	adminService := services.NewAdminService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	brandHandler := handlers.NewBrandHandler(brandService, storageService)
	productHandler := handlers.NewProductHandler(productService, storageService)
	orderHandler := handlers.NewOrderHandler(orderService, notificationService)
	adminHandler := handlers.NewAdminHandler(adminService, productService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.AuditLogMiddleware(db))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
		}

		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/new-arrivals", productHandler.GetNewArrivals)
			products.GET("/on-sale", productHandler.GetOnSale)
			products.GET("/featured", productHandler.GetFeatured)
			products.GET("/:id", productHandler.GetProduct)
			products.GET("/:id/images", productHandler.GetProductImages)
			products.GET("/:id/sizes", productHandler.GetProductSizes)

			// Authenticated routes
			protected := products.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", productHandler.CreateProduct)
				protected.PUT("/:id", productHandler.UpdateProduct)
				protected.DELETE("/:id", productHandler.DeleteProduct)
				protected.POST("/:id/duplicate", productHandler.DuplicateProduct)
				protected.POST("/:id/sizes", productHandler.AddProductSize)
				protected.PUT("/:id/sizes/:size", productHandler.UpdateProductSize)
				protected.DELETE("/:id/sizes/:size", productHandler.RemoveProductSize)
				protected.POST("/upload-images", middleware.UploadRateLimit(), productHandler.UploadProductImages)
			}
		}

		// Brand routes
		brands := v1.Group("/brands")
		{
			brands.GET("", brandHandler.GetBrands)
			brands.GET("/:id", brandHandler.GetBrand)

			protected := brands.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", brandHandler.CreateBrand)
				protected.PUT("/:id", brandHandler.UpdateBrand)
				protected.DELETE("/:id", brandHandler.DeleteBrand)
				protected.POST("/upload-logo", middleware.UploadRateLimit(), brandHandler.UploadBrandLogo)
			}
		}

		// Order routes
		orders := v1.Group("/orders")
		{
			orders.POST("", middleware.OrderRateLimit(), orderHandler.CreateOrder)

			protected := orders.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.GET("", orderHandler.GetOrders)
				protected.GET("/:id", orderHandler.GetOrder)
				protected.PUT("/:id/status", orderHandler.UpdateOrderStatus)
				protected.POST("/bulk-status", orderHandler.BulkUpdateOrderStatus)
			}
		}

		// Category routes
		categories := v1.Group("/categories")
		{
			categories.GET("", getCategoriesHandler)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired())
		{
			admin.GET("/dashboard/stats", adminHandler.GetDashboard)
			admin.POST("/products/bulk", adminHandler.BulkProductAction)
			admin.POST("/sizes/bulk", adminHandler.BulkSizeAction)
			admin.POST("/brands/bulk", adminHandler.BulkBrandAction)
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}

func getCategoriesHandler(c *gin.Context) {
	categories := []map[string]interface{}{
		{"id": "men", "name": "Erkaklar", "name_ru": "Мужчины"},
		{"id": "women", "name": "Ayollar", "name_ru": "Женщины"},
		{"id": "unisex", "name": "Uniseks", "name_ru": "Унисекс"},
	}

	utils.SuccessResponse(c, gin.H{
		"categories": categories,
	})
}
