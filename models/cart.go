package models

import "time"

type Cart struct {
	CartID    uint      `gorm:"column:cart_id;primaryKey;autoIncrement" json:"cart_id"`
	UserID    uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	ProductID uint      `gorm:"column:product_id;not null;index" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	AddedOn   time.Time `gorm:"autoCreateTime" json:"added_on"`
}

func (Cart) TableName() string { return "cart" }

type CartResponse struct {
	CartID    uint   `json:"cart_id"`
	UserID    uint   `json:"user_id"`
	ProductID uint   `json:"product_id"`
	Quantity  int    `json:"quantity"`
	AddedOn   string `json:"added_on"`
}

func (c Cart) Response() CartResponse {
	return CartResponse{
		CartID:    c.CartID,
		UserID:    c.UserID,
		ProductID: c.ProductID,
		Quantity:  c.Quantity,
		AddedOn:   c.AddedOn.Format(TimestampLayout),
	}
}

func CartResponses(items []Cart) []CartResponse {
	out := make([]CartResponse, 0, len(items))
	for _, c := range items {
		out = append(out, c.Response())
	}
	return out
}
