//go:build integration
// +build integration

package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MarcoProfi00/ez-electronics-sub000/auth"
	"github.com/MarcoProfi00/ez-electronics-sub000/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db := testutil.SetupTestDB(t)
	r := gin.New()
	SetupRoutes(r, db, auth.NewTokenStore(nil))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, r *gin.Engine, username, role string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/users", "", gin.H{
		"username": username, "name": "Test", "surname": "User",
		"password": "password123", "role": role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/sessions", "", gin.H{
		"username": username, "password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestShoppingFlowOverHTTP(t *testing.T) {
	r := setupRouter(t)

	manager := registerAndLogin(t, r, "mallory", "Manager")
	customer := registerAndLogin(t, r, "alice", "Customer")

	// Manager stocks the catalog.
	w := doJSON(t, r, http.MethodPost, "/products", manager, gin.H{
		"model": "iPhone13", "category": "Smartphone",
		"selling_price": 200.0, "quantity": 3,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Customers cannot create products.
	w = doJSON(t, r, http.MethodPost, "/products", customer, gin.H{
		"model": "Pixel 8", "category": "Smartphone",
		"selling_price": 150.0, "quantity": 1,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Duplicate model is a conflict.
	w = doJSON(t, r, http.MethodPost, "/products", manager, gin.H{
		"model": "iPhone13", "category": "Smartphone",
		"selling_price": 180.0, "quantity": 1,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Customer shops: two units, then checkout.
	w = doJSON(t, r, http.MethodPost, "/carts/current/iPhone13", customer, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = doJSON(t, r, http.MethodPost, "/carts/current/iPhone13", customer, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPatch, "/carts/current", customer, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"paid":true`)

	// Checkout on the fresh empty state is a 404.
	w = doJSON(t, r, http.MethodPatch, "/carts/current", customer, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// History shows the paid cart.
	w = doJSON(t, r, http.MethodGet, "/carts/history", customer, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"quantity":2`)

	// One unit of stock is left after the checkout, so another add works.
	w = doJSON(t, r, http.MethodPost, "/carts/current/iPhone13", customer, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Managers watch the carts, customers may not.
	w = doJSON(t, r, http.MethodGet, "/carts/all", manager, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodGet, "/carts/all", customer, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Unknown model is a 404 on add.
	w = doJSON(t, r, http.MethodPost, "/carts/current/Nokia3310", customer, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReviewFlowOverHTTP(t *testing.T) {
	r := setupRouter(t)

	manager := registerAndLogin(t, r, "mallory", "Manager")
	customer := registerAndLogin(t, r, "alice", "Customer")

	w := doJSON(t, r, http.MethodPost, "/products", manager, gin.H{
		"model": "Dishwasher", "category": "Appliance",
		"selling_price": 400.0, "quantity": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/reviews/Dishwasher", customer, gin.H{
		"score": 5, "comment": "spotless",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/reviews/Dishwasher", customer, gin.H{
		"score": 1, "comment": "second thoughts",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodGet, "/reviews/Dishwasher", manager, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "spotless")

	// Score outside 1..5 is rejected by validation.
	w = doJSON(t, r, http.MethodPost, "/reviews/Dishwasher", customer, gin.H{
		"score": 9, "comment": "over the top",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserEndpointsOverHTTP(t *testing.T) {
	r := setupRouter(t)

	admin := registerAndLogin(t, r, "root", "Admin")
	customer := registerAndLogin(t, r, "alice", "Customer")

	// A customer cannot list users, the admin can.
	w := doJSON(t, r, http.MethodGet, "/users", customer, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodGet, "/users?role=Customer", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
	assert.NotContains(t, w.Body.String(), "root")

	// Customers fetch themselves only.
	w = doJSON(t, r, http.MethodGet, "/users/alice", customer, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodGet, "/users/root", customer, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Wrong password is a 401.
	w = doJSON(t, r, http.MethodPost, "/sessions", "", gin.H{
		"username": "alice", "password": "nope-nope",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
