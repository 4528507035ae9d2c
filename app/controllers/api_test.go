package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/app/controllers"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/app/models"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/app/routes"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/app/services"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/auth"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/router"
)

type testAPI struct {
	srv          *httptest.Server
	tokens       *auth.TokenService
	users        *memUserRepo
	transactions *memTransactionRepo
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	tokens := auth.NewTokenService("test-secret")
	users := newMemUserRepo()
	categories := newMemCategoryRepo()
	products := newMemProductRepo()
	transactions := newMemTransactionRepo()

	authSvc := services.NewAuthService(users, tokens)
	catalogSvc := services.NewCatalogService(categories, products, nil)
	transSvc := services.NewTransactionService(transactions, products, users)

	r := router.New()
	routes.Register(r, routes.Controllers{
		Auth:         controllers.NewAuthController(authSvc),
		User:         controllers.NewUserController(authSvc),
		Category:     controllers.NewCategoryController(catalogSvc),
		Product:      controllers.NewProductController(catalogSvc),
		Transaction:  controllers.NewTransactionController(transSvc),
		TokenService: tokens,
	})

	srv := httptest.NewServer(r.Handler())
	t.Cleanup(srv.Close)

	return &testAPI{srv: srv, tokens: tokens, users: users, transactions: transactions}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, a.srv.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&decoded) //nolint:errcheck
	return resp, decoded
}

// addUser inserts a user directly and returns a valid token for it.
func (a *testAPI) addUser(t *testing.T, name string, role models.Role) (*models.User, string) {
	t.Helper()

	hash, err := auth.HashPassword("secret")
	require.NoError(t, err)
	u := &models.User{Name: name, Password: hash, Role: role}
	require.NoError(t, a.users.Create(nil, u))

	token, err := a.tokens.Generate(u.ID.Hex(), u.Name, u.Role)
	require.NoError(t, err)
	return u, token
}

func TestGuestLifecycle(t *testing.T) {
	api := newTestAPI(t)

	resp, body := api.do(t, http.MethodPost, "/register", "",
		map[string]string{"name": "guest", "email": "guest@example.com", "password": "guest"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "User has been added!", body["message"])

	resp, body = api.do(t, http.MethodPost, "/register", "",
		map[string]string{"name": "guest", "password": "other"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "User already exist!", body["error"])

	resp, body = api.do(t, http.MethodPost, "/login", "",
		map[string]string{"name": "guest", "password": "guest"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	claims, err := api.tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "guest", claims.Name)
	assert.Equal(t, models.RoleUser, claims.Role)
	require.NotNil(t, claims.ExpiresAt)

	resp, body = api.do(t, http.MethodGet, "/user", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "guest", body["name"])
}

func TestLoginFailures(t *testing.T) {
	api := newTestAPI(t)
	api.addUser(t, "guest", models.RoleUser)

	resp, body := api.do(t, http.MethodPost, "/login", "",
		map[string]string{"name": "guest", "password": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Username / Password cannot be empty!", body["error"])

	resp, body = api.do(t, http.MethodPost, "/login", "",
		map[string]string{"name": "nobody", "password": "x"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User not found", body["error"])

	resp, body = api.do(t, http.MethodPost, "/login", "",
		map[string]string{"name": "guest", "password": "wrong"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", body["error"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	api := newTestAPI(t)

	resp, body := api.do(t, http.MethodGet, "/user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Access Denied", body["error"])

	resp, body = api.do(t, http.MethodGet, "/user", "garbage.token.here", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid Token", body["error"])

	// The user list, by contrast, is open.
	resp, _ = api.do(t, http.MethodGet, "/users", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTransactionLifecycle(t *testing.T) {
	api := newTestAPI(t)
	user, userToken := api.addUser(t, "guest", models.RoleUser)
	_, adminToken := api.addUser(t, "boss", models.RoleAdmin)

	resp, body := api.do(t, http.MethodPost, "/transactions", userToken, map[string]interface{}{
		"cart":        []map[string]interface{}{{"productId": primitive.NewObjectID().Hex(), "quantity": 2}},
		"totalAmount": 39.98,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Transaction has been added!", body["message"])

	// An empty cart never reaches the store.
	resp, body = api.do(t, http.MethodPost, "/transactions", userToken, map[string]interface{}{
		"cart":        []map[string]interface{}{},
		"totalAmount": 0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Cart must hold at least one item with quantity 1 or more!", body["error"])

	all, err := api.transactions.All(nil)
	require.NoError(t, err)
	require.Len(t, all, 1)
	trans := all[0]
	assert.Equal(t, user.ID, trans.User, "owner comes from the token, not the body")
	assert.Equal(t, models.StatusPending, trans.Status)

	// Status update is Admin-only.
	resp, body = api.do(t, http.MethodPut, "/transactions", userToken,
		map[string]string{"TransId": trans.ID.Hex(), "status": "completed"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "You are not allowed to do this!", body["error"])

	resp, body = api.do(t, http.MethodPut, "/transactions", adminToken,
		map[string]string{"TransId": trans.ID.Hex(), "status": "completed"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Transaction has been updated!", body["message"])

	resp, body = api.do(t, http.MethodPut, "/transactions", adminToken,
		map[string]string{"TransId": primitive.NewObjectID().Hex(), "status": "completed"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Transaction doesn't exist!", body["error"])
}

func TestTransactionReadsAreSelfOnly(t *testing.T) {
	api := newTestAPI(t)
	user, userToken := api.addUser(t, "guest", models.RoleUser)
	other, _ := api.addUser(t, "victim", models.RoleUser)
	_, adminToken := api.addUser(t, "boss", models.RoleAdmin)

	resp, body := api.do(t, http.MethodGet, "/transactions/"+other.ID.Hex(), userToken, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "You are not allowed to check this!", body["error"])

	// Admin gets no bypass on owner-scoped reads.
	resp, body = api.do(t, http.MethodGet, "/transactions/"+other.ID.Hex(), adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "You are not allowed to check this!", body["error"])

	resp, _ = api.do(t, http.MethodGet, "/transactions/"+user.ID.Hex(), userToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTransactionShowMissingIsNull(t *testing.T) {
	api := newTestAPI(t)
	user, userToken := api.addUser(t, "guest", models.RoleUser)

	path := fmt.Sprintf("/transactions/%s/%s", user.ID.Hex(), primitive.NewObjectID().Hex())
	req, err := http.NewRequest(http.MethodGet, api.srv.URL+path, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+userToken)

	resp, err := api.srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var decoded interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	assert.Nil(t, decoded)
}

func TestCategoryEndpoints(t *testing.T) {
	api := newTestAPI(t)

	// The catalogue is open: no token on any of these.
	resp, body := api.do(t, http.MethodPost, "/categories", "",
		map[string]string{"name": "Books"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Category has been added!", body["message"])

	resp, body = api.do(t, http.MethodPost, "/categories", "",
		map[string]string{"name": "Books"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Category already exist!", body["error"])

	// Name below the minimum length fails validation.
	resp, body = api.do(t, http.MethodPost, "/categories", "",
		map[string]string{"name": "B"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "Validation failed", body["error"])

	// Updates carry the id in the body.
	resp, body = api.do(t, http.MethodPut, "/categories", "",
		map[string]string{"id": primitive.NewObjectID().Hex(), "name": "Magazines"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Category not found!", body["error"])

	resp, _ = api.do(t, http.MethodGet, "/categories", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProductEndpoints(t *testing.T) {
	api := newTestAPI(t)

	resp, body := api.do(t, http.MethodPost, "/products", "",
		map[string]interface{}{"name": "Mouse", "price": 19.99})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Product has been added!", body["message"])

	resp, body = api.do(t, http.MethodPost, "/products", "",
		map[string]interface{}{"name": "Mouse", "price": 24.99})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Product already exist!", body["error"])

	resp, body = api.do(t, http.MethodPut, "/products", "",
		map[string]interface{}{"id": primitive.NewObjectID().Hex(), "name": "Trackball", "price": 29.99})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Product doesn't exist!", body["error"])

	resp, body = api.do(t, http.MethodDelete, "/products/"+primitive.NewObjectID().Hex(), "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Product not found!", body["error"])

	// A free product is allowed; a negative price is not.
	resp, body = api.do(t, http.MethodPost, "/products", "",
		map[string]interface{}{"name": "Sticker", "price": 0})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Product has been added!", body["message"])

	resp, body = api.do(t, http.MethodPost, "/products", "",
		map[string]interface{}{"name": "Refund", "price": -1})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "Validation failed", body["error"])
}
