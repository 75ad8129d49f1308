package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Anujkalose911/vitalis-ecommerce-full-stack/models"
)

type AddToCartRequest struct {
	UserID    *uint `json:"user_id"`
	ProductID *uint `json:"product_id"`
	Quantity  *int  `json:"quantity"`
}

type UpdateCartRequest struct {
	Quantity *int `json:"quantity"`
}

// POST /api/cart
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}
		if req.UserID == nil || req.ProductID == nil || req.Quantity == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}
		if *req.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be greater than zero"})
			return
		}

		var user models.User
		userErr := db.First(&user, "user_id = ?", *req.UserID).Error
		var product models.Product
		productErr := db.First(&product, "product_id = ?", *req.ProductID).Error
		if errors.Is(userErr, gorm.ErrRecordNotFound) || errors.Is(productErr, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User or Product not found"})
			return
		}
		if userErr != nil || productErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate user or product"})
			return
		}

		if product.Stock < *req.Quantity {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient stock available"})
			return
		}

		item := models.Cart{
			UserID:    *req.UserID,
			ProductID: *req.ProductID,
			Quantity:  *req.Quantity,
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Item added to cart", "cart": item.Response()})
	}
}

// GET /api/cart
func GetCartItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []models.Cart
		if err := db.Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart items"})
			return
		}
		c.JSON(http.StatusOK, models.CartResponses(items))
	}
}

// GET /api/cart/user/:id
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}
		var items []models.Cart
		if err := db.Where("user_id = ?", id).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart items"})
			return
		}
		c.JSON(http.StatusOK, models.CartResponses(items))
	}
}

// PUT /api/cart/:id
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart ID"})
			return
		}
		var item models.Cart
		if err := db.First(&item, "cart_id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		var req UpdateCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}
		if req.Quantity != nil {
			if *req.Quantity <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be greater than zero"})
				return
			}
			item.Quantity = *req.Quantity
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart updated", "cart": item.Response()})
	}
}

// DELETE /api/cart/:id
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart ID"})
			return
		}
		var item models.Cart
		if err := db.First(&item, "cart_id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		if err := db.Delete(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
	}
}
