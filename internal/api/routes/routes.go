package routes

import (
	"parts-inventory-backend/internal/api/handlers"
	"parts-inventory-backend/internal/api/middleware"
	"parts-inventory-backend/internal/config"
	"parts-inventory-backend/internal/repository"
	"parts-inventory-backend/internal/service"
	"parts-inventory-backend/internal/supplier"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, connectors []supplier.Connector) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := service.NewValidator()

	// Initialize storage
	store := repository.NewStore(db)
	locks := service.NewProjectLocks()

	// Initialize services
	planner := service.NewPlanningService(store, locks, cfg.AllocationReserveAcrossProjects)
	componentService := service.NewComponentService(store, validator)
	locationService := service.NewLocationService(store, validator)
	projectService := service.NewProjectService(store, planner, locks, validator)
	aggregator := service.NewOfferAggregator(store, planner, locks, connectors, cfg.SupplierTimeout(), cfg.SupplierMaxConcurrency)
	offerService := service.NewOfferService(store, locks)
	consumptionService := service.NewConsumptionService(store, locks)
	exportService := service.NewExportService(store, planner)
	reportService := service.NewReportService(store)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	componentHandler := handlers.NewComponentHandler(componentService, reportService)
	locationHandler := handlers.NewLocationHandler(locationService)
	projectHandler := handlers.NewProjectHandler(projectService)
	offerHandler := handlers.NewOfferHandler(aggregator, offerService)
	orderHandler := handlers.NewOrderHandler(consumptionService, exportService, cfg.ExportCSVBOM)
	reportHandler := handlers.NewReportHandler(reportService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Component routes
		components := v1.Group("/components")
		{
			components.GET("", componentHandler.ListComponents)
			components.POST("", componentHandler.CreateComponent)
			components.GET("/:id", componentHandler.GetComponent)
			components.PUT("/:id", componentHandler.UpdateComponent)
			components.DELETE("/:id", componentHandler.DeleteComponent)
			components.POST("/:id/stock/add", componentHandler.AddStock)
			components.POST("/:id/stock/use", componentHandler.UseStock)
			components.POST("/:id/stock/adjust", componentHandler.AdjustStock)
			components.GET("/:id/transactions", componentHandler.GetComponentTransactions)
		}

		// Location routes
		locations := v1.Group("/locations")
		{
			locations.GET("", locationHandler.ListLocations)
			locations.POST("", locationHandler.CreateLocation)
			locations.GET("/racks", locationHandler.ListRacks)
			locations.GET("/drawers", locationHandler.ListDrawers)
			locations.GET("/boxes", locationHandler.ListBoxes)
			locations.GET("/:id", locationHandler.GetLocation)
			locations.DELETE("/:id", locationHandler.DeleteLocation)
		}

		// Project routes
		projects := v1.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)

			projects.POST("/:id/items", projectHandler.AddItem)
			projects.PUT("/:id/items/:itemId", projectHandler.UpdateItem)
			projects.DELETE("/:id/items/:itemId", projectHandler.DeleteItem)
			projects.PUT("/:id/items/:itemId/fulfilled", projectHandler.SetItemFulfilled)

			projects.POST("/:id/offers/search", offerHandler.SearchOffers)
			projects.GET("/:id/offers", offerHandler.ListOffers)
			projects.POST("/:id/offers/auto-select", offerHandler.AutoSelect)

			projects.POST("/:id/consume", orderHandler.Consume)
			projects.GET("/:id/order", orderHandler.GetOrderLines)
			projects.GET("/:id/order.csv", orderHandler.ExportCSV)
			projects.GET("/:id/order.xlsx", orderHandler.ExportXLSX)
		}

		// Offer routes
		offers := v1.Group("/offers")
		{
			offers.POST("/:id/select", offerHandler.SelectOffer)
		}

		// Report routes
		reports := v1.Group("/reports")
		{
			reports.GET("/summary", reportHandler.Summary)
			reports.GET("/low-stock", reportHandler.LowStock)
			reports.GET("/consumption", reportHandler.Consumption)
		}

		v1.GET("/transactions", reportHandler.ListTransactions)
	}

	return router
}
