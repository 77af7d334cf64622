package api

import (
	"net/http"

	authDelivery "legox-backend/internal/auth/delivery"
	authUsecase "legox-backend/internal/auth/usecase"
	catalogDelivery "legox-backend/internal/catalog/delivery"
	catalogUsecase "legox-backend/internal/catalog/usecase"
	listingDelivery "legox-backend/internal/listing/delivery"
	listingUsecase "legox-backend/internal/listing/usecase"
	statsDelivery "legox-backend/internal/stats/delivery"
	statsUsecase "legox-backend/internal/stats/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, catalogUc catalogUsecase.CatalogUsecase, listingUc listingUsecase.ListingUsecase, salesUc statsUsecase.SalesUsecase) {
	authHandler := authDelivery.NewAuthHandler(authUc)
	catalogHandler := catalogDelivery.NewCatalogHandler(catalogUc)
	listingHandler := listingDelivery.NewListingHandler(listingUc)
	statsHandler := statsDelivery.NewStatsHandler(salesUc)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"info": "This is an API for LegoExchanger Project."})
	})

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", authDelivery.AuthMiddleware(authUc), authHandler.Me)
		}

		// Profile routes (protected)
		api.PUT("/profile", authDelivery.AuthMiddleware(authUc), authHandler.UpdateProfile)

		// Catalog routes (public, read-only reference data)
		api.GET("/themes", catalogHandler.GetThemes)
		api.GET("/icons", catalogHandler.GetIcons)

		// Sets and sales statistics (public)
		api.GET("/sets/:year", statsHandler.GetSets)
		api.GET("/sets/:year/:theme", statsHandler.GetSets)
		api.GET("/set/:key", statsHandler.GetSet)
		api.GET("/sales", statsHandler.GetSales)

		// Own listings (protected)
		mysets := api.Group("/mysets")
		mysets.Use(authDelivery.AuthMiddleware(authUc))
		{
			mysets.GET("", listingHandler.GetMySets)
			mysets.POST("", listingHandler.CreateMySet)
			mysets.DELETE("/:key", listingHandler.DeleteMySet)
		}
	}
}
