package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Anujkalose911/vitalis-ecommerce-full-stack/models"
)

// -------- Request Structs --------

type OrderItemInput struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type CreateOrderRequest struct {
	UserID        uint             `json:"user_id"`
	TotalAmount   *float64         `json:"total_amount"`
	Items         []OrderItemInput `json:"items"`
	PaymentStatus string           `json:"payment_status"`
	PaymentMethod string           `json:"payment_method"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// -------- Errors --------

// ProductNotFoundError aborts placement when a line item references a
// product that does not exist.
type ProductNotFoundError struct {
	ProductID uint
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Product %d not found", e.ProductID)
}

// InsufficientStockError aborts placement when a line item asks for more
// units than the product has on hand.
type InsufficientStockError struct {
	Name      string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for product %s. Available: %d, Requested: %d",
		e.Name, e.Available, e.Requested)
}

// -------- Core Logic --------

// PlaceOrder validates stock, decrements inventory, and writes the order
// header plus one order_product row per item as a single transaction. Any
// failure rolls the whole call back; no partial state survives. Product
// rows are locked FOR UPDATE so concurrent placements against the same
// product serialize instead of both reading stale stock.
//
// The stored total is recomputed server-side from the locked product
// prices; the client-supplied figure only gates field presence.
func PlaceOrder(db *gorm.DB, req CreateOrderRequest) (*models.Order, []models.OrderLine, error) {
	paymentStatus := req.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = "Pending"
	}

	var (
		order models.Order
		lines []models.OrderLine
	)
	err := db.Transaction(func(tx *gorm.DB) error {
		var (
			total float64
			items []models.OrderProduct
		)
		for _, item := range req.Items {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "product_id = ?", item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &ProductNotFoundError{ProductID: item.ProductID}
				}
				return err
			}

			if product.Stock < item.Quantity {
				return &InsufficientStockError{
					Name:      product.Name,
					Available: product.Stock,
					Requested: item.Quantity,
				}
			}

			product.Stock -= item.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			total += product.Price * float64(item.Quantity)
			items = append(items, models.OrderProduct{
				ProductID: product.ProductID,
				Quantity:  item.Quantity,
			})
			lines = append(lines, models.OrderLine{
				ProductID:   product.ProductID,
				Quantity:    item.Quantity,
				Price:       product.Price,
				ProductName: product.Name,
			})
		}

		order = models.Order{
			UserID:        req.UserID,
			TotalAmount:   total,
			Status:        models.OrderStatusPending,
			PaymentStatus: paymentStatus,
			PaymentMethod: req.PaymentMethod,
		}
		if err := tx.Omit(clause.Associations).Create(&order).Error; err != nil {
			return err
		}

		// The header insert populated order.OrderID; line rows key off it.
		for i := range items {
			items[i].OrderID = order.OrderID
			if err := tx.Omit(clause.Associations).Create(&items[i]).Error; err != nil {
				return err
			}
		}
		order.Items = items
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &order, lines, nil
}

// -------- Handlers --------

// POST /api/orders
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
			return
		}
		if req.UserID == 0 || req.TotalAmount == nil || len(req.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
			return
		}
		for _, item := range req.Items {
			if item.ProductID == 0 {
				c.JSON(http.StatusBadRequest, gin.H{"message": "product_id is required for each item"})
				return
			}
			if item.Quantity <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity must be greater than zero"})
				return
			}
		}

		order, lines, err := PlaceOrder(db, req)
		if err != nil {
			var notFound *ProductNotFoundError
			var noStock *InsufficientStockError
			switch {
			case errors.As(err, &notFound):
				c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			case errors.As(err, &noStock):
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating order: " + err.Error()})
			}
			return
		}

		resp := order.Response(lines)
		broadcastNewOrder(resp)
		c.JSON(http.StatusCreated, resp)
	}
}

// GET /api/orders
func GetOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items.Product").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
			return
		}
		out := make([]models.OrderResponse, 0, len(orders))
		for _, o := range orders {
			out = append(out, o.Response(models.ResolveOrderLines(o.Items)))
		}
		c.JSON(http.StatusOK, out)
	}
}

// GET /api/orders/:id
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}
		var order models.Order
		if err := db.Preload("Items.Product").First(&order, "order_id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, order.Response(models.ResolveOrderLines(order.Items)))
	}
}

// GET /api/orders/user/:id
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}
		var orders []models.Order
		if err := db.Where("user_id = ?", id).Preload("Items.Product").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
			return
		}
		out := make([]models.OrderResponse, 0, len(orders))
		for _, o := range orders {
			out = append(out, o.Response(models.ResolveOrderLines(o.Items)))
		}
		c.JSON(http.StatusOK, out)
	}
}

// PUT /api/orders/:id (status only)
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}
		var order models.Order
		if err := db.Preload("Items.Product").First(&order, "order_id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}
		status, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		order.Status = status
		if err := db.Model(&models.Order{}).Where("order_id = ?", id).
			Update("status", status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Order updated successfully",
			"order":   order.Response(models.ResolveOrderLines(order.Items)),
		})
	}
}

// DELETE /api/orders/:id
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}
		var order models.Order
		if err := db.First(&order, "order_id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", id).Delete(&models.OrderProduct{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
