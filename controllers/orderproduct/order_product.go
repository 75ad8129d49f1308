package orderProductControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Anujkalose911/vitalis-ecommerce-full-stack/models"
)

type AddOrderProductRequest struct {
	OrderID   *uint `json:"order_id"`
	ProductID *uint `json:"product_id"`
	Quantity  *int  `json:"quantity"`
}

type DeleteOrderProductRequest struct {
	OrderID   *uint `json:"order_id"`
	ProductID *uint `json:"product_id"`
}

// POST /api/order-products
func AddProductToOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddOrderProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}
		if req.OrderID == nil || req.ProductID == nil || req.Quantity == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
			return
		}

		entry := models.OrderProduct{
			OrderID:   *req.OrderID,
			ProductID: *req.ProductID,
			Quantity:  *req.Quantity,
		}
		if err := db.Create(&entry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product to order"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":       "Product added to order successfully",
			"order_product": entry.Response(),
		})
	}
}

// GET /api/order-products/:order_id
func GetOrderProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("order_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}
		var entries []models.OrderProduct
		if err := db.Where("order_id = ?", orderID).Find(&entries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order products"})
			return
		}
		out := make([]models.OrderProductResponse, 0, len(entries))
		for _, e := range entries {
			out = append(out, e.Response())
		}
		c.JSON(http.StatusOK, out)
	}
}

// DELETE /api/order-products
func DeleteOrderProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DeleteOrderProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		var entry models.OrderProduct
		if err := db.Where("order_id = ? AND product_id = ?", req.OrderID, req.ProductID).
			First(&entry).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		if err := db.Where("order_id = ? AND product_id = ?", entry.OrderID, entry.ProductID).
			Delete(&models.OrderProduct{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order product deleted successfully"})
	}
}
