package models

// Categories is the fixed set of product categories the store sells.
var Categories = []string{
	"Fitness Equipment",
	"Wellness & Self-care",
	"Hair & Skin Products",
	"Health Supplements",
}

// ValidCategory reports whether category is one of the fixed set.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

type Product struct {
	ProductID   uint    `gorm:"column:product_id;primaryKey;autoIncrement" json:"product_id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    string  `gorm:"size:50;not null" json:"category"`
	Stock       int     `gorm:"not null" json:"stock"`
	ImageURL    string  `gorm:"size:255;not null" json:"image_url"`

	CartItems  []Cart         `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	OrderLines []OrderProduct `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

type ProductResponse struct {
	ProductID   uint    `json:"product_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"image_url"`
}

func (p Product) Response() ProductResponse {
	return ProductResponse{
		ProductID:   p.ProductID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
	}
}

// ProductResponses maps a result set to its wire shape.
func ProductResponses(products []Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, p.Response())
	}
	return out
}
