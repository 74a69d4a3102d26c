package routes

import (
	"os"

	"carligo-backend/config"
	"carligo-backend/controllers"
	"carligo-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
		allowedOrigins = append(allowedOrigins, frontend)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	sessions := r.Group("/sessions")
	{
		sessions.POST("", controllers.Login)

		sessions.Use(utils.AuthMiddleware())
		sessions.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Vehicle routes
		vehicles := api.Group("/vehicles")
		{
			vehicles.POST("", controllers.CreateVehicle)
			vehicles.GET("", controllers.GetVehicles)
			vehicles.GET("/:id", controllers.GetVehicle)
			vehicles.PUT("/:id", controllers.UpdateVehicle)
			vehicles.DELETE("/:id", controllers.DeleteVehicle)
		}

		// Client routes
		clients := api.Group("/clients")
		{
			clients.POST("", controllers.CreateClient)
			clients.GET("", controllers.GetClients)
			clients.GET("/:id", controllers.GetClient)
			clients.PUT("/:id", controllers.UpdateClient)
			clients.DELETE("/:id", controllers.DeleteClient)
		}

		// Booking routes: bookings originate in the storefront, this
		// layer only reads and patches them
		bookings := api.Group("/bookings")
		{
			bookings.GET("", controllers.GetBookings)
			bookings.GET("/:id", controllers.GetBooking)
			bookings.PUT("/:id", controllers.UpdateBooking)
		}

		// Supplement routes
		supplements := api.Group("/supplements")
		{
			supplements.POST("", controllers.CreateSupplement)
			supplements.GET("", controllers.GetSupplements)
			supplements.PUT("/:id", controllers.UpdateSupplement)
			supplements.DELETE("/:id", controllers.DeleteSupplement)
		}

		// Admin account routes
		accounts := api.Group("/accounts")
		{
			accounts.GET("", controllers.GetAccounts)
			accounts.POST("", controllers.CreateAccount)
			accounts.PUT("/:id", controllers.UpdateAccount)
			accounts.DELETE("/:id", controllers.DeleteAccount)
		}

		// Stats routes
		statsController := controllers.StatsController{}
		api.GET("/stats", statsController.GetStats)
	}

	return r
}
