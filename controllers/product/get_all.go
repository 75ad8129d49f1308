package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Anujkalose911/vitalis-ecommerce-full-stack/models"
)

// GET /api/products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, models.ProductResponses(products))
	}
}

// GET /api/products/categories?categories=a,b
func GetProductsByCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Query("categories")
		categories := strings.Split(raw, ",")
		if raw == "" || categories[0] == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No categories provided"})
			return
		}

		var products []models.Product
		if err := db.Where("category IN ?", categories).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, models.ProductResponses(products))
	}
}

// GET /api/products/search?q=term
//
// Case-insensitive substring match over name and description. LOWER/LIKE
// instead of ILIKE so the query runs on both supported drivers.
func SearchProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := strings.TrimSpace(c.Query("q"))
		if query == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No search query provided"})
			return
		}

		pattern := "%" + strings.ToLower(query) + "%"
		var products []models.Product
		if err := db.
			Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search products"})
			return
		}
		c.JSON(http.StatusOK, models.ProductResponses(products))
	}
}
