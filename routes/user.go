package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/Anujkalose911/vitalis-ecommerce-full-stack/controllers/user"
	"github.com/Anujkalose911/vitalis-ecommerce-full-stack/middleware"
)

// SetupUserRoutes registers all "/users/*" endpoints.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB) {
	users := api.Group("/users")
	{
		users.POST("", userControllers.CreateUser(db))
		users.POST("/login", userControllers.Login(db))
		users.GET("", userControllers.GetUsers(db))
		users.GET("/me", middleware.ValidateToken, userControllers.Me(db))
		users.GET("/:id", userControllers.GetUser(db))
		users.PUT("/:id", userControllers.UpdateUser(db))
		users.DELETE("/:id", userControllers.DeleteUser(db))
	}
}
