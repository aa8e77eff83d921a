package main

import (
	"log"

	"order_manager/internal/config"
	"order_manager/internal/database"
	"order_manager/internal/handlers"
	"order_manager/internal/migrations"
	"order_manager/internal/models"
	"order_manager/internal/redis"
	"order_manager/internal/repository"
	"order_manager/internal/services"
	"order_manager/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db, cfg.AdvanceAmountLabel); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fileStore, err := storage.NewFileStore(cfg.UploadDir)
	if err != nil {
		log.Fatal("Failed to initialize file storage:", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	distributorRepo := repository.NewDistributorRepository(db)
	executiveRepo := repository.NewExecutiveRepository(db)
	productRepo := repository.NewProductRepository(db)
	paymentTermRepo := repository.NewPaymentTermRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	lineItemRepo := repository.NewLineItemRepository(db)
	relationRepo := repository.NewRelationRepository(db)
	scannedRepo := repository.NewScannedProductRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, distributorRepo, executiveRepo, redisClient,
		cfg.JWTSecret, cfg.JWTExpirationDays, cfg.CacheTTL)
	adminService := services.NewAdminService(userRepo, distributorRepo, executiveRepo, productRepo,
		paymentTermRepo, redisClient, fileStore)
	distributorService := services.NewDistributorService(cartRepo, orderRepo, productRepo,
		distributorRepo, relationRepo, redisClient, fileStore, cfg.CacheTTL)
	salesService := services.NewSalesService(orderRepo, lineItemRepo, relationRepo)
	scanService := services.NewScanService(orderRepo, relationRepo, scannedRepo, productRepo)
	planningService := services.NewPlanningService(orderRepo, lineItemRepo, paymentTermRepo, cfg.AdvanceAmountLabel)
	accountsService := services.NewAccountsService(orderRepo, paymentTermRepo, cfg.AdvanceAmountLabel)
	managerService := services.NewManagerService(orderRepo, executiveRepo)
	orderService := services.NewOrderService(orderRepo, lineItemRepo, scannedRepo)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(authService)
	adminHandler := handlers.NewAdminHandler(adminService, fileStore)
	distributorHandler := handlers.NewDistributorHandler(distributorService)
	executiveHandler := handlers.NewExecutiveHandler(salesService, scanService)
	planningHandler := handlers.NewPlanningHandler(planningService)
	accountsHandler := handlers.NewAccountsHandler(accountsService)
	managerHandler := handlers.NewManagerHandler(managerService)
	orderHandler := handlers.NewOrderHandler(orderService)

	rateLimit, err := handlers.RateLimit(cfg.RateLimit)
	if err != nil {
		log.Fatal("Invalid rate limit format:", err)
	}

	// Setup routes
	router := gin.Default()
	router.Use(rateLimit)

	router.POST("/api/login", userHandler.Login)

	api := router.Group("/api")
	api.Use(handlers.AuthMiddleware(authService))
	{
		api.GET("/me", userHandler.Me)

		admin := api.Group("/admin")
		admin.Use(handlers.RequireRoles(models.RoleSystemAdmin))
		{
			admin.POST("/distributors", adminHandler.CreateDistributor)
			admin.POST("/distributors/:id/attachments", adminHandler.UploadDistributorAttachment)
			admin.POST("/user-roles", adminHandler.CreateUserRole)
			admin.POST("/executives", adminHandler.CreateExecutive)
			admin.POST("/managers", adminHandler.CreateManager)
			admin.POST("/products", adminHandler.CreateProduct)
			admin.POST("/product-categories", adminHandler.CreateProductCategory)
			admin.POST("/product-sub-categories", adminHandler.CreateProductSubCategory)
			admin.POST("/products/:id/images", adminHandler.UploadProductImage)
			admin.POST("/payment-terms", adminHandler.CreatePaymentTerm)
			admin.POST("/orders/assign-sales", executiveHandler.AssignOrder)
			admin.POST("/orders/assign-stores", executiveHandler.AssignStoresOrder)
		}

		api.GET("/products", adminHandler.ListProducts)
		api.GET("/products/:id/images", adminHandler.ListProductImages)
		api.GET("/payment-terms", adminHandler.ListPaymentTerms)

		distributor := api.Group("/distributor")
		distributor.Use(handlers.RequireRoles(models.RoleDistributor))
		{
			distributor.POST("/cart", distributorHandler.AddToCart)
			distributor.GET("/cart", distributorHandler.GetCart)
			distributor.POST("/orders", distributorHandler.PlaceOrders)
			distributor.GET("/orders", distributorHandler.ListOrders)
			distributor.GET("/orders/:id", distributorHandler.GetOrder)
			distributor.POST("/orders/:id/accept", distributorHandler.AcceptOrder)
			distributor.POST("/orders/:id/reject", distributorHandler.RejectOrder)
		}

		sales := api.Group("/sales")
		sales.Use(handlers.RequireRoles(models.RoleSalesExecutive))
		{
			sales.GET("/orders/assigned", executiveHandler.ListAssignedOrders)
			sales.GET("/orders/under-process", executiveHandler.ListOrdersUnderProcess)
			sales.GET("/orders/accepted", executiveHandler.ListAcceptedOrders)
			sales.GET("/orders/rejected", executiveHandler.ListRejectedOrders)
			sales.POST("/orders/:id/line-items", executiveHandler.AddLineItems)
			sales.PUT("/orders/:id", executiveHandler.UpdateOrderDetails)
			sales.POST("/orders/:id/sap-reference", executiveHandler.AddSapReferenceNumber)
		}

		stores := api.Group("/stores")
		stores.Use(handlers.RequireRoles(models.RoleStoresExecutive))
		{
			stores.GET("/orders", executiveHandler.ListStoresOrders)
			stores.POST("/scan", executiveHandler.ScanStores)
		}

		scan := api.Group("/scan")
		scan.Use(handlers.RequireRoles(
			models.RoleWindingExecutive,
			models.RoleAssemblyExecutive,
			models.RoleTestingExecutive,
			models.RolePackingExecutive,
			models.RoleQCExecutive,
		))
		{
			scan.POST("", executiveHandler.ScanStage)
			scan.GET("/progress/:product_id", executiveHandler.StageProgress)
		}

		planning := api.Group("/planning")
		planning.Use(handlers.RequireRoles(models.RolePlanning))
		{
			planning.GET("/orders", planningHandler.ListOrders)
			planning.POST("/orders/:id/deadlines", planningHandler.AddDeadlines)
		}

		accounts := api.Group("/accounts")
		accounts.Use(handlers.RequireRoles(models.RoleAccounts))
		{
			accounts.GET("/orders", accountsHandler.ListAdvancePendingOrders)
			accounts.POST("/orders/:id/approve", accountsHandler.ApproveAdvancePayment)
		}

		manager := api.Group("/manager")
		manager.Use(handlers.RequireRoles(models.RoleManager))
		{
			manager.GET("/orders", managerHandler.ListOrders)
			manager.GET("/executives", managerHandler.ListExecutives)
			manager.GET("/orders/export", managerHandler.ExportOrders)
		}

		orders := api.Group("/orders")
		orders.Use(handlers.RequireRoles(
			models.RoleSystemAdmin,
			models.RoleManager,
			models.RoleSalesExecutive,
			models.RoleStoresExecutive,
			models.RoleWindingExecutive,
			models.RoleAssemblyExecutive,
			models.RoleTestingExecutive,
			models.RolePackingExecutive,
			models.RoleQCExecutive,
			models.RolePlanning,
			models.RoleAccounts,
		))
		{
			orders.GET("/:id", orderHandler.GetOrder)
			orders.GET("/:id/line-items", orderHandler.GetLineItems)
		}

		api.GET("/units/:unit_id/label", orderHandler.UnitLabel)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
