package models

// OrderProduct resolves the many-to-many relation between orders and
// products. The composite key means one row per (order, product) pair.
type OrderProduct struct {
	OrderID   uint `gorm:"column:order_id;primaryKey;autoIncrement:false" json:"order_id"`
	ProductID uint `gorm:"column:product_id;primaryKey;autoIncrement:false" json:"product_id"`
	Quantity  int  `gorm:"not null" json:"quantity"`

	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

type OrderProductResponse struct {
	OrderID   uint `json:"order_id"`
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

func (op OrderProduct) Response() OrderProductResponse {
	return OrderProductResponse{
		OrderID:   op.OrderID,
		ProductID: op.ProductID,
		Quantity:  op.Quantity,
	}
}
