package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/Anujkalose911/vitalis-ecommerce-full-stack/controllers/product"
)

// SetupProductRoutes registers all "/products/*" endpoints.
func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB) {
	products := api.Group("/products")
	{
		products.POST("", productcontroller.CreateProduct(db))
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/categories", productcontroller.GetProductsByCategories(db))
		products.GET("/search", productcontroller.SearchProducts(db))
		products.GET("/export", productcontroller.ExportProductsToExcel(db))
		products.GET("/:id", productcontroller.GetProductByID(db))
		products.PUT("/:id", productcontroller.UpdateProduct(db))
		products.DELETE("/:id", productcontroller.DeleteProduct(db))
	}
}
