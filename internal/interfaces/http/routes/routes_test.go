package routes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/session"
	"github.com/your-org/storefront-backend/internal/domain/user"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-backend/internal/interfaces/http/routes"
	"github.com/your-org/storefront-backend/internal/pkg/ai"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
	"github.com/your-org/storefront-backend/internal/state"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.App.Name = "storefront-test"
	cfg.Session.TokenSecret = "this-is-a-test-secret-of-32-chars!!"
	cfg.Session.TokenExpiry = time.Hour
	cfg.Admin.Email = "admin@gmail.com"
	cfg.Admin.Password = "Dark360@"
	cfg.AI.Timeout = time.Second

	container := state.NewSeededContainer()
	users := user.NewService(container.Users())
	catalogService := catalog.NewService(container.Stores(), container.Categories(), container.Products())
	orders := order.NewService(container.Orders(), container.Products())
	sessions := session.NewManager(cfg, users, container.Stores())
	carts := cart.NewManager()
	checkoutService := checkout.NewService(carts, sessions, orders, container.Stores())
	aiService := ai.NewService(cfg)
	tokens := auth.NewTokenManager(cfg)

	r := gin.New()
	api := r.Group("/api/v1")
	api.Use(middleware.Resolve(sessions, tokens))

	routes.SetupAuthRoutes(api, sessions)
	routes.SetupStorefrontRoutes(api, catalogService, sessions)
	routes.SetupCartRoutes(api, carts, catalogService)
	routes.SetupCheckoutRoutes(api, checkoutService, sessions)
	routes.SetupOrderRoutes(api, orders)
	routes.SetupAdminRoutes(api, catalogService, orders, users, sessions, aiService)

	return r
}

// client keeps the session token across requests like a browser would
type client struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func newClient(t *testing.T, router *gin.Engine) *client {
	return &client{t: t, router: router}
}

func (c *client) do(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	if token := w.Header().Get("X-Session-Token"); token != "" {
		c.token = token
	}
	return w
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Data
}

func dataList(t *testing.T, w *httptest.ResponseRecorder) []any {
	t.Helper()

	var body struct {
		Data []any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Data
}

func TestSessionTokenIssuedOnFirstRequest(t *testing.T) {
	c := newClient(t, testRouter(t))

	w := c.do(http.MethodGet, "/api/v1/stores", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, c.token)

	// The token binds subsequent requests to the same session
	w = c.do(http.MethodGet, "/api/v1/auth/me", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-Session-Token"))
}

func TestListStores(t *testing.T) {
	c := newClient(t, testRouter(t))

	w := c.do(http.MethodGet, "/api/v1/stores", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, dataList(t, w), 3)
}

func TestProductSearch(t *testing.T) {
	c := newClient(t, testRouter(t))

	w := c.do(http.MethodGet, "/api/v1/products?store_id=store1&q=mandala", "")
	require.Equal(t, http.StatusOK, w.Code)

	list := dataList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "p1", list[0].(map[string]any)["id"])
}

func TestAdminEndpointsRequireAdminSession(t *testing.T) {
	c := newClient(t, testRouter(t))

	w := c.do(http.MethodGet, "/api/v1/admin/stats", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminLoginAndStats(t *testing.T) {
	c := newClient(t, testRouter(t))

	w := c.do(http.MethodPost, "/api/v1/auth/admin/login", `{"email":"admin@gmail.com","password":"Dark360@"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodGet, "/api/v1/admin/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	stats := dataField(t, w)
	assert.Equal(t, 4.0, stats["total_orders"])
	assert.Equal(t, 303.0, stats["total_revenue"])
	assert.Equal(t, 12.0, stats["active_products"])
}

func TestAdminLoginWrongPassword(t *testing.T) {
	c := newClient(t, testRouter(t))

	w := c.do(http.MethodPost, "/api/v1/auth/admin/login", `{"email":"admin@gmail.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = c.do(http.MethodGet, "/api/v1/admin/stats", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminStoreScopedStats(t *testing.T) {
	c := newClient(t, testRouter(t))

	c.do(http.MethodPost, "/api/v1/auth/admin/login", `{"email":"admin@gmail.com","password":"Dark360@"}`)
	w := c.do(http.MethodPost, "/api/v1/auth/admin/store", `{"store_id":"store1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodGet, "/api/v1/admin/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	stats := dataField(t, w)
	assert.Equal(t, 2.0, stats["total_orders"])
	assert.Equal(t, 68.0, stats["total_revenue"])
	assert.Equal(t, 4.0, stats["active_products"])
}

func TestAdminCreateProductRequiresEnteredStore(t *testing.T) {
	c := newClient(t, testRouter(t))
	c.do(http.MethodPost, "/api/v1/auth/admin/login", `{"email":"admin@gmail.com","password":"Dark360@"}`)

	w := c.do(http.MethodPost, "/api/v1/admin/products", `{"name":"New Thing","category":"Earrings","price":5,"stock":3}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	c.do(http.MethodPost, "/api/v1/auth/admin/store", `{"store_id":"store1"}`)
	w = c.do(http.MethodPost, "/api/v1/admin/products", `{"name":"New Thing","category":"Earrings","price":5,"stock":3}`)
	require.Equal(t, http.StatusCreated, w.Code)

	created := dataField(t, w)
	assert.Equal(t, "store1", created["store_id"])
	assert.Equal(t, 0.0, created["rating"])
}

func TestCartFlow(t *testing.T) {
	c := newClient(t, testRouter(t))

	w := c.do(http.MethodPost, "/api/v1/cart/items", `{"product_id":"p1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodPost, "/api/v1/cart/items", `{"product_id":"p1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodGet, "/api/v1/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Items  []map[string]any `json:"items"`
			Totals struct {
				LineCount int     `json:"line_count"`
				Subtotal  float64 `json:"subtotal"`
			} `json:"totals"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data.Items, 1)
	assert.Equal(t, 2, body.Data.Totals.LineCount)
	assert.Equal(t, 50.0, body.Data.Totals.Subtotal)
}

func TestCartAddUnknownProduct(t *testing.T) {
	c := newClient(t, testRouter(t))

	w := c.do(http.MethodPost, "/api/v1/cart/items", `{"product_id":"p99"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutRequiresCustomer(t *testing.T) {
	c := newClient(t, testRouter(t))
	c.do(http.MethodPost, "/api/v1/cart/items", `{"product_id":"p1"}`)

	w := c.do(http.MethodPost, "/api/v1/checkout", `{"shipping":{"first_name":"John","last_name":"Doe","email":"john@example.com","address":"123 Main St","city":"NYC","zip":"10001"},"payment_method":"COD"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFullCheckoutFlow(t *testing.T) {
	c := newClient(t, testRouter(t))

	w := c.do(http.MethodPost, "/api/v1/auth/login", `{"email":"john@example.com","password":"password123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	c.do(http.MethodPost, "/api/v1/cart/items", `{"product_id":"p1"}`)
	c.do(http.MethodPost, "/api/v1/cart/items", `{"product_id":"p3"}`)

	w = c.do(http.MethodPost, "/api/v1/checkout", `{"shipping":{"first_name":"John","last_name":"Doe","email":"john@example.com","address":"123 Main St","city":"New York","zip":"10001"},"payment_method":"Razorpay"}`)
	require.Equal(t, http.StatusOK, w.Code)

	payment := dataField(t, w)
	checkoutID, _ := payment["checkout_id"].(string)
	require.NotEmpty(t, checkoutID)
	assert.Equal(t, 37.0, payment["amount"])
	assert.Equal(t, "USD", payment["currency"])

	w = c.do(http.MethodPost, "/api/v1/checkout/"+checkoutID+"/confirm", "")
	require.Equal(t, http.StatusCreated, w.Code)

	orderID, _ := dataField(t, w)["order_id"].(string)
	require.NotEmpty(t, orderID)

	// Public tracking finds the new order by exact id
	w = c.do(http.MethodGet, "/api/v1/orders/"+orderID, "")
	require.Equal(t, http.StatusOK, w.Code)

	tracked := dataField(t, w)
	assert.Equal(t, "Pending", tracked["status"])
	assert.Equal(t, 37.0, tracked["total"])

	// Cart is empty after a confirmed checkout
	w = c.do(http.MethodGet, "/api/v1/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	var cartBody struct {
		Data struct {
			Items []any `json:"items"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cartBody))
	assert.Empty(t, cartBody.Data.Items)
}

func TestCheckoutCancelKeepsCart(t *testing.T) {
	c := newClient(t, testRouter(t))

	c.do(http.MethodPost, "/api/v1/auth/login", `{"email":"john@example.com","password":"password123"}`)
	c.do(http.MethodPost, "/api/v1/cart/items", `{"product_id":"p1"}`)

	w := c.do(http.MethodPost, "/api/v1/checkout", `{"shipping":{"first_name":"John","last_name":"Doe","email":"john@example.com","address":"123 Main St","city":"New York","zip":"10001"},"payment_method":"COD"}`)
	require.Equal(t, http.StatusOK, w.Code)
	checkoutID, _ := dataField(t, w)["checkout_id"].(string)

	w = c.do(http.MethodPost, "/api/v1/checkout/"+checkoutID+"/cancel", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodGet, "/api/v1/cart", "")
	var cartBody struct {
		Data struct {
			Items []any `json:"items"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cartBody))
	assert.Len(t, cartBody.Data.Items, 1)
}

func TestTrackUnknownOrder(t *testing.T) {
	c := newClient(t, testRouter(t))

	w := c.do(http.MethodGet, "/api/v1/orders/o999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenerateDescriptionMock(t *testing.T) {
	c := newClient(t, testRouter(t))
	c.do(http.MethodPost, "/api/v1/auth/admin/login", `{"email":"admin@gmail.com","password":"Dark360@"}`)

	w := c.do(http.MethodPost, "/api/v1/admin/products/description", `{"name":"Quilled Bookmark","category":"Home Decor","keywords":"paper, handmade"}`)
	require.Equal(t, http.StatusOK, w.Code)

	description, _ := dataField(t, w)["description"].(string)
	assert.Contains(t, description, "[AI MOCK]")
	assert.Contains(t, description, "Quilled Bookmark")
}
