// Package routes declares the HTTP surface of the API.
package routes

import (
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/app/controllers"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/auth"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/metrics"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/middleware"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/router"
)

// Controllers bundles everything the route table mounts.
type Controllers struct {
	Auth         *controllers.AuthController
	User         *controllers.UserController
	Category     *controllers.CategoryController
	Product      *controllers.ProductController
	Transaction  *controllers.TransactionController
	TokenService *auth.TokenService
}

// Register mounts every route on r. Only the caller's own profile and the
// transaction endpoints (bar the global list) sit behind a bearer token;
// the catalogue, including its writes, is open.
func Register(r *router.Router, c Controllers) {
	r.Post("/login", "auth.login", c.Auth.Login)
	r.Post("/register", "auth.register", c.Auth.Register)

	r.Get("/users", "users.index", c.User.Index)

	r.Get("/categories", "categories.index", c.Category.Index)
	r.Get("/categories/{id}", "categories.show", c.Category.Show)
	r.Post("/categories", "categories.store", c.Category.Store)
	r.Put("/categories", "categories.update", c.Category.Update)
	r.Delete("/categories/{id}", "categories.delete", c.Category.Delete)

	r.Get("/products", "products.index", c.Product.Index)
	r.Get("/products/{id}", "products.show", c.Product.Show)
	r.Get("/products/category/{categoryId}", "products.byCategory", c.Product.ByCategory)
	r.Post("/products", "products.store", c.Product.Store)
	r.Put("/products", "products.update", c.Product.Update)
	r.Delete("/products/{id}", "products.delete", c.Product.Delete)

	r.Get("/transactions", "transactions.index", c.Transaction.Index)

	r.Get("/metrics", "metrics", metrics.Handler())

	authed := r.Group("/", middleware.Auth(c.TokenService))

	authed.Get("/user", "users.show", c.User.Show)

	authed.Post("/transactions", "transactions.store", c.Transaction.Store)
	authed.Put("/transactions", "transactions.update", c.Transaction.Update)
	authed.Get("/transactions/{userId}", "transactions.forUser", c.Transaction.ListForUser)
	authed.Get("/transactions/{userId}/{id}", "transactions.show", c.Transaction.Show)
}
