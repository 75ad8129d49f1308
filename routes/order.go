package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Anujkalose911/vitalis-ecommerce-full-stack/controllers/order"
)

// SetupOrderRoutes registers all "/orders/*" endpoints.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	orders := api.Group("/orders")
	{
		orders.POST("", orderControllers.CreateOrderHandler(db))
		orders.GET("", orderControllers.GetOrdersHandler(db))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		orders.GET("/user/:id", orderControllers.GetUserOrdersHandler(db))
		orders.GET("/:id", orderControllers.GetOrderByIDHandler(db))
		orders.PUT("/:id", orderControllers.UpdateOrderStatusHandler(db))
		orders.DELETE("/:id", orderControllers.DeleteOrderHandler(db))
	}
}
