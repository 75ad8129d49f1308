package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Anujkalose911/vitalis-ecommerce-full-stack/controllers/cart"
)

// SetupCartRoutes registers all "/cart/*" endpoints.
func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB) {
	cart := api.Group("/cart")
	{
		cart.POST("", cartControllers.AddToCart(db))
		cart.GET("", cartControllers.GetCartItems(db))
		cart.GET("/user/:id", cartControllers.GetUserCart(db))
		cart.PUT("/:id", cartControllers.UpdateCartItem(db))
		cart.DELETE("/:id", cartControllers.RemoveFromCart(db))
	}
}
