package models

import (
	"errors"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// ParseOrderStatus maps a request value onto the status enum.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch OrderStatus(status) {
	case OrderStatusPending:
		return OrderStatusPending, nil
	case OrderStatusShipped:
		return OrderStatusShipped, nil
	case OrderStatusDelivered:
		return OrderStatusDelivered, nil
	case OrderStatusCancelled:
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

type Order struct {
	OrderID       uint        `gorm:"column:order_id;primaryKey;autoIncrement" json:"order_id"`
	UserID        uint        `gorm:"column:user_id;not null;index" json:"user_id"`
	TotalAmount   float64     `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	OrderDate     time.Time   `gorm:"autoCreateTime" json:"order_date"`
	Status        OrderStatus `gorm:"type:varchar(20);default:'Pending';not null" json:"status"`
	PaymentStatus string      `gorm:"size:20;default:'Pending';not null" json:"payment_status"`
	PaymentMethod string      `gorm:"size:50" json:"payment_method"`

	Items []OrderProduct `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
}

// OrderLine is one resolved line of an order: the order_product row joined
// with the product's name and price.
type OrderLine struct {
	ProductID   uint    `json:"product_id"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	ProductName string  `json:"product_name"`
}

// ResolveOrderLines builds the line views from order_product rows whose
// Product association is already loaded. It performs no queries.
func ResolveOrderLines(items []OrderProduct) []OrderLine {
	lines := make([]OrderLine, 0, len(items))
	for _, op := range items {
		lines = append(lines, OrderLine{
			ProductID:   op.ProductID,
			Quantity:    op.Quantity,
			Price:       op.Product.Price,
			ProductName: op.Product.Name,
		})
	}
	return lines
}

type OrderResponse struct {
	OrderID       uint        `json:"order_id"`
	UserID        uint        `json:"user_id"`
	TotalAmount   float64     `json:"total_amount"`
	OrderDate     string      `json:"order_date"`
	Status        OrderStatus `json:"status"`
	PaymentStatus string      `json:"payment_status"`
	PaymentMethod string      `json:"payment_method"`
	Items         []OrderLine `json:"items"`
}

// Response serializes the order header together with its resolved lines.
// Callers supply the lines so the transform stays free of database access.
func (o Order) Response(lines []OrderLine) OrderResponse {
	return OrderResponse{
		OrderID:       o.OrderID,
		UserID:        o.UserID,
		TotalAmount:   o.TotalAmount,
		OrderDate:     o.OrderDate.Format(TimestampLayout),
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		PaymentMethod: o.PaymentMethod,
		Items:         lines,
	}
}
