package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserResponse_OmitsPassword(t *testing.T) {
	u := User{
		UserID:           1,
		FName:            "Ada",
		LName:            "Lovelace",
		Email:            "ada@example.com",
		Password:         "$2a$10$hash",
		RegistrationDate: time.Date(2024, 3, 1, 10, 30, 5, 0, time.UTC),
	}

	data, err := json.Marshal(u.Response())
	require.NoError(t, err)

	assert.NotContains(t, string(data), "password")
	assert.NotContains(t, string(data), "$2a$10$hash")
	assert.Contains(t, string(data), `"registration_date":"2024-03-01 10:30:05"`)
}

func TestCartResponse_TimestampFormat(t *testing.T) {
	c := Cart{
		CartID:    9,
		UserID:    1,
		ProductID: 2,
		Quantity:  3,
		AddedOn:   time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
	}
	assert.Equal(t, "2024-12-31 23:59:59", c.Response().AddedOn)
}

func TestResolveOrderLines(t *testing.T) {
	items := []OrderProduct{
		{
			OrderID:   42,
			ProductID: 1,
			Quantity:  3,
			Product:   Product{ProductID: 1, Name: "Yoga Mat", Price: 20.0},
		},
		{
			OrderID:   42,
			ProductID: 2,
			Quantity:  1,
			Product:   Product{ProductID: 2, Name: "Vitamin C", Price: 9.5},
		},
	}

	lines := ResolveOrderLines(items)
	require.Len(t, lines, 2)
	assert.Equal(t, OrderLine{ProductID: 1, Quantity: 3, Price: 20.0, ProductName: "Yoga Mat"}, lines[0])
	assert.Equal(t, OrderLine{ProductID: 2, Quantity: 1, Price: 9.5, ProductName: "Vitamin C"}, lines[1])
}

func TestOrderResponse(t *testing.T) {
	o := Order{
		OrderID:       42,
		UserID:        7,
		TotalAmount:   69.5,
		OrderDate:     time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC),
		Status:        OrderStatusPending,
		PaymentStatus: "Pending",
		PaymentMethod: "card",
	}
	resp := o.Response([]OrderLine{{ProductID: 1, Quantity: 3, Price: 20.0, ProductName: "Yoga Mat"}})

	assert.Equal(t, "2024-06-15 08:00:00", resp.OrderDate)
	assert.Equal(t, OrderStatusPending, resp.Status)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Yoga Mat", resp.Items[0].ProductName)
}

func TestParseOrderStatus(t *testing.T) {
	for _, valid := range []string{"Pending", "Shipped", "Delivered", "Cancelled"} {
		got, err := ParseOrderStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, OrderStatus(valid), got)
	}
	_, err := ParseOrderStatus("Refunded")
	assert.Error(t, err)
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory("Fitness Equipment"))
	assert.True(t, ValidCategory("Health Supplements"))
	assert.False(t, ValidCategory("fitness equipment"))
	assert.False(t, ValidCategory("Gadgets"))
}
