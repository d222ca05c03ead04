package routes

import (
	"github.com/lastiz/calorizator/controllers"
	"github.com/lastiz/calorizator/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	api := r.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.GET("/logout", middlewares.AuthMiddleware(), controllers.Logout)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.GET("/ingredients", controllers.GetIngredients)
		protected.POST("/ingredients", controllers.CreateIngredient)
		protected.PUT("/ingredients", controllers.UpdateIngredient)
		protected.DELETE("/ingredients", controllers.DeleteIngredient)

		protected.GET("/products", controllers.GetProducts)
		protected.POST("/products", controllers.CreateProduct)
		protected.PUT("/products", controllers.UpdateProduct)
		protected.DELETE("/products", controllers.DeleteProduct)

		protected.GET("/profile/me", controllers.GetProfile)
	}

	return r
}
