package orderitemcontroller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Adibayuluthfiansyah/fullstack-test/models"
	"github.com/Adibayuluthfiansyah/fullstack-test/routes"
)

func setupRouter(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Category{}, &models.Customer{}, &models.Product{},
		&models.Order{}, &models.OrderItem{},
	))
	r := gin.New()
	routes.SetupRoutes(r, db)
	return db, r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// seedOrderAndProduct creates the full chain an order item references.
func seedOrderAndProduct(t *testing.T, db *gorm.DB) (models.Order, models.Product) {
	t.Helper()
	customer := models.Customer{
		Name: "Budi", Email: "budi@example.com", Password: "x",
		Phone: "0812", Address: "Jl. Merdeka",
	}
	require.NoError(t, db.Create(&customer).Error)
	category := models.Category{Name: "Elektronik", Description: "Perangkat"}
	require.NoError(t, db.Create(&category).Error)
	product := models.Product{
		Name: "Laptop", Description: "Laptop 14 inci",
		Price: 7500000, Stock: 5, CategoryID: category.ID,
	}
	require.NoError(t, db.Create(&product).Error)
	order := models.Order{
		CustomerID:  customer.ID,
		OrderDate:   time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		TotalAmount: 7500000,
	}
	require.NoError(t, db.Create(&order).Error)
	return order, product
}

func TestCreateOrderItem(t *testing.T) {
	db, r := setupRouter(t)
	order, product := seedOrderAndProduct(t, db)

	w := doRequest(t, r, http.MethodPost, "/order-items", gin.H{
		"order_id":   order.ID,
		"product_id": product.ID,
		"quantity":   2,
		"price":      7500000,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	assert.Equal(t, "Order Item berhasil ditambahkan.", body["message"])
	data := body["data"].(map[string]any)

	// The parent order (with its customer) and the product come embedded.
	gotOrder := data["order"].(map[string]any)
	assert.Equal(t, order.ID, gotOrder["id"])
	assert.Equal(t, order.CustomerID, gotOrder["customer"].(map[string]any)["id"])
	assert.Equal(t, product.ID, data["product"].(map[string]any)["id"])
}

func TestCreateOrderItemUnknownReferences(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/order-items", gin.H{
		"order_id":   "missing-order",
		"product_id": "missing-product",
		"quantity":   1,
		"price":      100,
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := decode(t, w)["errors"].(map[string]any)
	assert.Contains(t, errs, "order_id")
	assert.Contains(t, errs, "product_id")
}

func TestCreateOrderItemZeroQuantity(t *testing.T) {
	db, r := setupRouter(t)
	order, product := seedOrderAndProduct(t, db)

	w := doRequest(t, r, http.MethodPost, "/order-items", gin.H{
		"order_id":   order.ID,
		"product_id": product.ID,
		"quantity":   0,
		"price":      100,
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := decode(t, w)["errors"].(map[string]any)
	messages := errs["quantity"].([]any)
	assert.Contains(t, messages, "The quantity field must be at least 1.")
}

func TestUpdateOrderItemQuantity(t *testing.T) {
	db, r := setupRouter(t)
	order, product := seedOrderAndProduct(t, db)
	item := models.OrderItem{
		OrderID: order.ID, ProductID: product.ID, Quantity: 1, Price: 7500000,
	}
	require.NoError(t, db.Create(&item).Error)

	w := doRequest(t, r, http.MethodPut, "/order-items/"+item.ID, gin.H{"quantity": 3})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Order Item berhasil diupdate.", body["message"])
	assert.EqualValues(t, 3, body["data"].(map[string]any)["quantity"])

	w = doRequest(t, r, http.MethodPut, "/order-items/"+item.ID, gin.H{"quantity": 3})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Tidak ada perubahan pada data order item.", decode(t, w)["message"])
}

func TestUpdateOrderItemNotFound(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(t, r, http.MethodPut, "/order-items/missing-id", gin.H{"quantity": 2})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order Item tidak ditemukan.", decode(t, w)["message"])
}

func TestDeleteOrderItem(t *testing.T) {
	db, r := setupRouter(t)
	order, product := seedOrderAndProduct(t, db)
	item := models.OrderItem{
		OrderID: order.ID, ProductID: product.ID, Quantity: 1, Price: 7500000,
	}
	require.NoError(t, db.Create(&item).Error)

	w := doRequest(t, r, http.MethodDelete, "/order-items/"+item.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Order Item berhasil dihapus.", decode(t, w)["message"])

	var count int64
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&count).Error)
	assert.Zero(t, count)
}
