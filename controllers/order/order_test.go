package orderControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Anujkalose911/vitalis-ecommerce-full-stack/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func productRows(stock int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"product_id", "name", "description", "price", "category", "stock", "image_url",
	}).AddRow(1, "Yoga Mat", "Non-slip mat", 20.0, "Fitness Equipment", stock, "/img/mat.png")
}

func floatPtr(f float64) *float64 { return &f }

func TestPlaceOrder_Success(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE product_id = \$1(.|\n)*FOR UPDATE`).
		WillReturnRows(productRows(5))
	// stock 5 - 3 = 2 written back
	mock.ExpectExec(`UPDATE "products" SET`).
		WithArgs("Yoga Mat", "Non-slip mat", 20.0, "Fitness Equipment", 2, "/img/mat.png", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(42))
	mock.ExpectExec(`INSERT INTO "order_products"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	order, lines, err := PlaceOrder(db, CreateOrderRequest{
		UserID:      7,
		TotalAmount: floatPtr(999), // client figure is ignored
		Items:       []OrderItemInput{{ProductID: 1, Quantity: 3}},
	})
	require.NoError(t, err)

	assert.Equal(t, uint(42), order.OrderID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "Pending", order.PaymentStatus)
	assert.Equal(t, 60.0, order.TotalAmount) // 3 x 20.0, server-computed
	require.Len(t, lines, 1)
	assert.Equal(t, "Yoga Mat", lines[0].ProductName)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 20.0, lines[0].Price)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrder_InsufficientStockRollsBack(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE product_id = \$1(.|\n)*FOR UPDATE`).
		WillReturnRows(productRows(2))
	mock.ExpectRollback()

	_, _, err := PlaceOrder(db, CreateOrderRequest{
		UserID:      7,
		TotalAmount: floatPtr(60),
		Items:       []OrderItemInput{{ProductID: 1, Quantity: 3}},
	})
	require.Error(t, err)

	var noStock *InsufficientStockError
	require.ErrorAs(t, err, &noStock)
	assert.Equal(t, "Insufficient stock for product Yoga Mat. Available: 2, Requested: 3", err.Error())

	// no order row, no line row, no stock update reached the database
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrder_ProductNotFoundRollsBack(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE product_id = \$1(.|\n)*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"product_id"}))
	mock.ExpectRollback()

	_, _, err := PlaceOrder(db, CreateOrderRequest{
		UserID:      7,
		TotalAmount: floatPtr(60),
		Items:       []OrderItemInput{{ProductID: 7, Quantity: 1}},
	})
	require.Error(t, err)

	var notFound *ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Product 7 not found", err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrder_SecondOrderSeesDecrementedStock(t *testing.T) {
	db, mock := newMockDB(t)

	// first order: stock 5, quantity 3 -> stock 2
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE product_id = \$1(.|\n)*FOR UPDATE`).
		WillReturnRows(productRows(5))
	mock.ExpectExec(`UPDATE "products" SET`).
		WithArgs("Yoga Mat", "Non-slip mat", 20.0, "Fitness Equipment", 2, "/img/mat.png", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(1))
	mock.ExpectExec(`INSERT INTO "order_products"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// second identical order: stock is now 2, quantity 3 fails
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE product_id = \$1(.|\n)*FOR UPDATE`).
		WillReturnRows(productRows(2))
	mock.ExpectRollback()

	req := CreateOrderRequest{
		UserID:      7,
		TotalAmount: floatPtr(60),
		Items:       []OrderItemInput{{ProductID: 1, Quantity: 3}},
	}

	_, _, err := PlaceOrder(db, req)
	require.NoError(t, err)

	_, _, err = PlaceOrder(db, req)
	var noStock *InsufficientStockError
	require.ErrorAs(t, err, &noStock)
	assert.Equal(t, 2, noStock.Available)
	assert.Equal(t, 3, noStock.Requested)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func postOrder(t *testing.T, db *gorm.DB, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/orders", CreateOrderHandler(db))

	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrderHandler_MissingFields(t *testing.T) {
	cases := []struct {
		name string
		body map[string]interface{}
	}{
		{"no user", map[string]interface{}{"total_amount": 60.0, "items": []map[string]interface{}{{"product_id": 1, "quantity": 1}}}},
		{"no total", map[string]interface{}{"user_id": 7, "items": []map[string]interface{}{{"product_id": 1, "quantity": 1}}}},
		{"no items", map[string]interface{}{"user_id": 7, "total_amount": 60.0}},
		{"empty items", map[string]interface{}{"user_id": 7, "total_amount": 60.0, "items": []map[string]interface{}{}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postOrder(t, nil, tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "Missing required fields")
		})
	}
}

func TestCreateOrderHandler_RejectsBadItems(t *testing.T) {
	w := postOrder(t, nil, map[string]interface{}{
		"user_id":      7,
		"total_amount": 60.0,
		"items":        []map[string]interface{}{{"quantity": 1}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "product_id is required for each item")

	w = postOrder(t, nil, map[string]interface{}{
		"user_id":      7,
		"total_amount": 60.0,
		"items":        []map[string]interface{}{{"product_id": 1, "quantity": 0}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Quantity must be greater than zero")
}

func TestCreateOrderHandler_StatusMapping(t *testing.T) {
	// product absent -> 404
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"product_id"}))
	mock.ExpectRollback()

	w := postOrder(t, db, map[string]interface{}{
		"user_id":      7,
		"total_amount": 60.0,
		"items":        []map[string]interface{}{{"product_id": 9, "quantity": 1}},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product 9 not found")

	// insufficient stock -> 400
	db, mock = newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "products"`).
		WillReturnRows(productRows(1))
	mock.ExpectRollback()

	w = postOrder(t, db, map[string]interface{}{
		"user_id":      7,
		"total_amount": 60.0,
		"items":        []map[string]interface{}{{"product_id": 1, "quantity": 2}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Insufficient stock for product Yoga Mat")
}

func TestCreateOrderHandler_Success(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "products"`).
		WillReturnRows(productRows(5))
	mock.ExpectExec(`UPDATE "products" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(11))
	mock.ExpectExec(`INSERT INTO "order_products"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := postOrder(t, db, map[string]interface{}{
		"user_id":        7,
		"total_amount":   999.0,
		"items":          []map[string]interface{}{{"product_id": 1, "quantity": 3}},
		"payment_method": "card",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp models.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint(11), resp.OrderID)
	assert.Equal(t, models.OrderStatusPending, resp.Status)
	assert.Equal(t, "Pending", resp.PaymentStatus)
	assert.Equal(t, "card", resp.PaymentMethod)
	assert.Equal(t, 60.0, resp.TotalAmount)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Yoga Mat", resp.Items[0].ProductName)

	assert.NoError(t, mock.ExpectationsWereMet())
}
