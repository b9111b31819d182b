package public

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopfront/internal/config"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupHandlerTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:public_handler_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	if err := models.SeedDemoCatalog(db); err != nil {
		t.Fatalf("seed demo catalog failed: %v", err)
	}
	models.DB = db

	cfg := &config.Config{}
	cfg.Session.TTLMinutes = 60
	container := provider.NewContainer(cfg)
	handler := New(container)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(sessionIDKey, "test-session")
		c.Next()
	})
	r.GET("/api/v1/public/products", handler.GetProducts)
	r.GET("/api/v1/public/products/featured", handler.GetFeaturedProducts)
	r.GET("/api/v1/public/products/:id", handler.GetProductByID)
	r.GET("/api/v1/public/categories", handler.GetCategories)
	r.GET("/api/v1/cart", handler.GetCart)
	r.POST("/api/v1/cart/items", handler.AddCartItem)
	r.POST("/api/v1/cart/items/:product_id/quantity", handler.ChangeCartItemQuantity)
	r.DELETE("/api/v1/cart/items/:product_id", handler.DeleteCartItem)
	r.POST("/api/v1/checkout/validate", handler.ValidateCheckout)
	r.POST("/api/v1/checkout/submit", handler.SubmitCheckout)
	return r
}

type envelope struct {
	StatusCode int             `json:"status_code"`
	Msg        string          `json:"msg"`
	Data       json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) envelope {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body failed: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("%s %s status want 200 got %d", method, path, w.Code)
	}
	var resp envelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal envelope failed: %v", err)
	}
	return resp
}

func TestGetProducts(t *testing.T) {
	r := setupHandlerTest(t)

	resp := doRequest(t, r, http.MethodGet, "/api/v1/public/products", nil)
	if resp.StatusCode != 0 {
		t.Fatalf("status_code want 0 got %d", resp.StatusCode)
	}
	var data struct {
		Items []ProductView `json:"items"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("unmarshal data failed: %v", err)
	}
	if len(data.Items) != 6 {
		t.Fatalf("items want 6 got %d", len(data.Items))
	}
	if data.Items[0].Name != "Product 1" || data.Items[0].Category != "electronics" {
		t.Fatalf("first item mismatch: %+v", data.Items[0])
	}
	if data.Items[0].Currency != "USD" {
		t.Fatalf("currency want USD got %s", data.Items[0].Currency)
	}
}

func TestGetProductsFiltered(t *testing.T) {
	r := setupHandlerTest(t)

	resp := doRequest(t, r, http.MethodGet, "/api/v1/public/products?search=product+5&category=electronics", nil)
	var data struct {
		Items []ProductView `json:"items"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("unmarshal data failed: %v", err)
	}
	if len(data.Items) != 1 || data.Items[0].Name != "Product 5" {
		t.Fatalf("filtered items mismatch: %+v", data.Items)
	}

	resp = doRequest(t, r, http.MethodGet, "/api/v1/public/products?category=furniture", nil)
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("unmarshal data failed: %v", err)
	}
	if len(data.Items) != 0 {
		t.Fatalf("unknown category want empty items got %d", len(data.Items))
	}
}

func TestGetProductByID(t *testing.T) {
	r := setupHandlerTest(t)

	resp := doRequest(t, r, http.MethodGet, "/api/v1/public/products/2", nil)
	var view ProductView
	if err := json.Unmarshal(resp.Data, &view); err != nil {
		t.Fatalf("unmarshal data failed: %v", err)
	}
	if view.Name != "Product 2" || view.Category != "clothing" {
		t.Fatalf("product view mismatch: %+v", view)
	}

	resp = doRequest(t, r, http.MethodGet, "/api/v1/public/products/999", nil)
	if resp.StatusCode != 404 {
		t.Fatalf("missing product status_code want 404 got %d", resp.StatusCode)
	}

	resp = doRequest(t, r, http.MethodGet, "/api/v1/public/products/abc", nil)
	if resp.StatusCode != 400 {
		t.Fatalf("bad product id status_code want 400 got %d", resp.StatusCode)
	}
}

func TestGetCategories(t *testing.T) {
	r := setupHandlerTest(t)

	resp := doRequest(t, r, http.MethodGet, "/api/v1/public/categories", nil)
	var data struct {
		Items []models.Category `json:"items"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("unmarshal data failed: %v", err)
	}
	if len(data.Items) != 2 {
		t.Fatalf("categories want 2 got %d", len(data.Items))
	}
}

type cartViewResp struct {
	Lines []struct {
		ProductID uint   `json:"product_id"`
		Name      string `json:"name"`
		Price     string `json:"price"`
		Quantity  int    `json:"quantity"`
	} `json:"lines"`
	Total   string `json:"total"`
	Count   int    `json:"count"`
	IsEmpty bool   `json:"is_empty"`
}

func TestCartFlow(t *testing.T) {
	r := setupHandlerTest(t)

	resp := doRequest(t, r, http.MethodGet, "/api/v1/cart", nil)
	var cart cartViewResp
	if err := json.Unmarshal(resp.Data, &cart); err != nil {
		t.Fatalf("unmarshal cart failed: %v", err)
	}
	if !cart.IsEmpty {
		t.Fatalf("new cart should be empty")
	}

	resp = doRequest(t, r, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": 1})
	if err := json.Unmarshal(resp.Data, &cart); err != nil {
		t.Fatalf("unmarshal cart failed: %v", err)
	}
	if len(cart.Lines) != 1 || cart.Lines[0].Quantity != 1 {
		t.Fatalf("default quantity should be 1, got %+v", cart.Lines)
	}

	resp = doRequest(t, r, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": 2, "quantity": 2})
	if err := json.Unmarshal(resp.Data, &cart); err != nil {
		t.Fatalf("unmarshal cart failed: %v", err)
	}
	if cart.Total != "399.97" {
		t.Fatalf("total want 399.97 got %s", cart.Total)
	}
	if cart.Count != 3 {
		t.Fatalf("count want 3 got %d", cart.Count)
	}

	resp = doRequest(t, r, http.MethodPost, "/api/v1/cart/items/1/quantity", gin.H{"delta": -10})
	if err := json.Unmarshal(resp.Data, &cart); err != nil {
		t.Fatalf("unmarshal cart failed: %v", err)
	}
	if cart.Lines[0].Quantity != 1 {
		t.Fatalf("quantity should clamp to 1, got %d", cart.Lines[0].Quantity)
	}

	// 增量 0 是合法无操作
	resp = doRequest(t, r, http.MethodPost, "/api/v1/cart/items/1/quantity", gin.H{"delta": 0})
	if resp.StatusCode != 0 {
		t.Fatalf("zero delta should be accepted, got %d %s", resp.StatusCode, resp.Msg)
	}
	if err := json.Unmarshal(resp.Data, &cart); err != nil {
		t.Fatalf("unmarshal cart failed: %v", err)
	}
	if cart.Lines[0].Quantity != 1 {
		t.Fatalf("zero delta should leave quantity alone, got %d", cart.Lines[0].Quantity)
	}

	resp = doRequest(t, r, http.MethodDelete, "/api/v1/cart/items/2", nil)
	if err := json.Unmarshal(resp.Data, &cart); err != nil {
		t.Fatalf("unmarshal cart failed: %v", err)
	}
	if len(cart.Lines) != 1 || cart.Lines[0].ProductID != 1 {
		t.Fatalf("remaining line mismatch: %+v", cart.Lines)
	}
}

func TestAddCartItemErrors(t *testing.T) {
	r := setupHandlerTest(t)

	resp := doRequest(t, r, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": 999})
	if resp.StatusCode != 400 || resp.Msg != "product not available" {
		t.Fatalf("unknown product want 400 got %d %s", resp.StatusCode, resp.Msg)
	}

	resp = doRequest(t, r, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": 1, "quantity": -1})
	if resp.StatusCode != 400 {
		t.Fatalf("negative quantity want 400 got %d", resp.StatusCode)
	}

	// 显式 0 与未传数量不同：未传默认 1，显式 0 拒绝
	resp = doRequest(t, r, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": 1, "quantity": 0})
	if resp.StatusCode != 400 || resp.Msg != "quantity must be at least 1" {
		t.Fatalf("explicit zero quantity want 400 got %d %s", resp.StatusCode, resp.Msg)
	}

	resp = doRequest(t, r, http.MethodPost, "/api/v1/cart/items", gin.H{})
	if resp.StatusCode != 400 {
		t.Fatalf("missing product_id want 400 got %d", resp.StatusCode)
	}
}

func validCheckoutPayload() gin.H {
	return gin.H{
		"cardNumber": "4111111111111111",
		"cardName":   "Jane Doe",
		"expiryDate": "12/30",
		"cvv":        "123",
		"address":    "1 Main St",
		"city":       "Springfield",
		"state":      "IL",
		"zipCode":    "62704",
		"country":    "USA",
	}
}

func TestValidateCheckout(t *testing.T) {
	r := setupHandlerTest(t)

	resp := doRequest(t, r, http.MethodPost, "/api/v1/checkout/validate", validCheckoutPayload())
	var data struct {
		Valid  bool              `json:"valid"`
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("unmarshal data failed: %v", err)
	}
	if !data.Valid || len(data.Errors) != 0 {
		t.Fatalf("valid form want valid=true, got %+v", data)
	}

	payload := validCheckoutPayload()
	payload["expiryDate"] = "13/25"
	resp = doRequest(t, r, http.MethodPost, "/api/v1/checkout/validate", payload)
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("unmarshal data failed: %v", err)
	}
	if data.Valid || data.Errors["expiryDate"] != "Expiry date must be in MM/YY format" {
		t.Fatalf("invalid expiry want field error, got %+v", data)
	}
}

func TestSubmitCheckout(t *testing.T) {
	r := setupHandlerTest(t)

	doRequest(t, r, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": 1, "quantity": 2})

	resp := doRequest(t, r, http.MethodPost, "/api/v1/checkout/submit", validCheckoutPayload())
	if resp.StatusCode != 0 {
		t.Fatalf("submit status_code want 0 got %d %s", resp.StatusCode, resp.Msg)
	}
	var receipt struct {
		ConfirmationNo string `json:"confirmation_no"`
		Total          string `json:"total"`
		Currency       string `json:"currency"`
	}
	if err := json.Unmarshal(resp.Data, &receipt); err != nil {
		t.Fatalf("unmarshal receipt failed: %v", err)
	}
	if receipt.ConfirmationNo == "" || receipt.Total != "199.98" || receipt.Currency != "USD" {
		t.Fatalf("receipt mismatch: %+v", receipt)
	}

	// 提交不清空购物车
	var cart cartViewResp
	resp = doRequest(t, r, http.MethodGet, "/api/v1/cart", nil)
	if err := json.Unmarshal(resp.Data, &cart); err != nil {
		t.Fatalf("unmarshal cart failed: %v", err)
	}
	if cart.IsEmpty {
		t.Fatalf("submit should not clear the cart")
	}
}

func TestSubmitCheckoutRejectsInvalidForm(t *testing.T) {
	r := setupHandlerTest(t)

	payload := validCheckoutPayload()
	payload["cardNumber"] = "1234"
	payload["country"] = ""

	resp := doRequest(t, r, http.MethodPost, "/api/v1/checkout/submit", payload)
	if resp.StatusCode != 400 {
		t.Fatalf("invalid form status_code want 400 got %d", resp.StatusCode)
	}
	var data struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("unmarshal data failed: %v", err)
	}
	if len(data.Errors) != 2 {
		t.Fatalf("want 2 field errors got %v", data.Errors)
	}
	if data.Errors["cardNumber"] != "Card number must be 16 digits" {
		t.Fatalf("card number message mismatch: %v", data.Errors)
	}
}
