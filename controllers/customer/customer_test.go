package customercontroller_test

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

func customerPayload() gin.H {
	return gin.H{
		"name":     "Budi Santoso",
		"email":    "budi@example.com",
		"password": "rahasia123",
		"phone":    "081234567890",
		"address":  "Jl. Merdeka No. 1, Surabaya",
	}
}

func TestCreateCustomer(t *testing.T) {
	db, r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/customers", customerPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	assert.Equal(t, "Customer berhasil ditambahkan.", body["message"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "budi@example.com", data["email"])
	assert.NotContains(t, data, "password", "the password hash must never be serialized")

	// Stored password is a hash, not the plaintext.
	var stored models.Customer
	require.NoError(t, db.First(&stored, "id = ?", data["id"]).Error)
	assert.NotEqual(t, "rahasia123", stored.Password)
	assert.NotEmpty(t, stored.Password)
}

func TestCreateCustomerMissingEmail(t *testing.T) {
	_, r := setupRouter(t)

	payload := customerPayload()
	delete(payload, "email")
	w := doRequest(t, r, http.MethodPost, "/customers", payload)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := decode(t, w)["errors"].(map[string]any)
	assert.Contains(t, errs, "email")
}

func TestCreateCustomerDuplicateEmail(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/customers", customerPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodPost, "/customers", customerPayload())
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := decode(t, w)["errors"].(map[string]any)
	messages := errs["email"].([]any)
	assert.Contains(t, messages, "The email has already been taken.")
}

func TestUpdateCustomerOwnEmail(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/customers", customerPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w)["data"].(map[string]any)["id"].(string)

	// Resubmitting the customer's own email is not a uniqueness violation.
	w = doRequest(t, r, http.MethodPut, "/customers/"+id, gin.H{"email": "budi@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Tidak ada perubahan pada data customer.", decode(t, w)["message"])
}

func TestUpdateCustomerPasswordAlwaysCounts(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/customers", customerPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w)["data"].(map[string]any)["id"].(string)

	w = doRequest(t, r, http.MethodPut, "/customers/"+id, gin.H{"password": "rahasia123"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Customer berhasil diupdate.", decode(t, w)["message"])
}

func TestUpdateCustomerShortPassword(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/customers", customerPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w)["data"].(map[string]any)["id"].(string)

	w = doRequest(t, r, http.MethodPut, "/customers/"+id, gin.H{"password": "abc"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := decode(t, w)["errors"].(map[string]any)
	assert.Contains(t, errs, "password")
}

func TestDeleteCustomerWithoutOrders(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/customers", customerPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w)["data"].(map[string]any)["id"].(string)

	w = doRequest(t, r, http.MethodDelete, "/customers/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Customer berhasil dihapus.", decode(t, w)["message"])
}

func TestDeleteCustomerWithOrdersBlocked(t *testing.T) {
	db, r := setupRouter(t)

	customer := models.Customer{
		Name: "Siti", Email: "siti@example.com", Password: "x",
		Phone: "0812", Address: "Jl. Pahlawan",
	}
	require.NoError(t, db.Create(&customer).Error)
	order := models.Order{
		CustomerID: customer.ID, OrderDate: time.Now(), TotalAmount: 5000,
	}
	require.NoError(t, db.Create(&order).Error)

	w := doRequest(t, r, http.MethodDelete, "/customers/"+customer.ID, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Customer tidak dapat dihapus karena memiliki data order.", decode(t, w)["message"])

	var count int64
	require.NoError(t, db.Model(&models.Customer{}).Where("id = ?", customer.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count, "the customer row must survive a blocked delete")
}

func TestDeleteCustomerNotFound(t *testing.T) {
	_, r := setupRouter(t)

	w := doRequest(t, r, http.MethodDelete, "/customers/missing-id", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Customer tidak ditemukan.", decode(t, w)["message"])
}
