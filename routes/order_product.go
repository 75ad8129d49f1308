package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderProductControllers "github.com/Anujkalose911/vitalis-ecommerce-full-stack/controllers/orderproduct"
)

// SetupOrderProductRoutes registers all "/order-products/*" endpoints.
func SetupOrderProductRoutes(api *gin.RouterGroup, db *gorm.DB) {
	entries := api.Group("/order-products")
	{
		entries.POST("", orderProductControllers.AddProductToOrder(db))
		entries.GET("/:order_id", orderProductControllers.GetOrderProducts(db))
		entries.DELETE("", orderProductControllers.DeleteOrderProduct(db))
	}
}
