package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/app/services"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/bind"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/response"
)

type productInput struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description string  `json:"description" validate:"nullable,max=1000"`
	Price       float64 `json:"price" validate:"numeric,gte=0"`
	Stock       int     `json:"stock" validate:"nullable,integer,gte=0"`
	Category    string  `json:"category" validate:"nullable"`
	Image       string  `json:"image" validate:"nullable,url"`
}

func (in productInput) toInput() services.ProductInput {
	return services.ProductInput{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    in.Category,
		Image:       in.Image,
	}
}

type ProductController struct {
	service *services.CatalogService
}

func NewProductController(service *services.CatalogService) *ProductController {
	return &ProductController{service: service}
}

func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.ListProducts(r.Context())
	if err != nil {
		response.Internal(w, err)
		return
	}
	response.JSON(w, http.StatusOK, products)
}

// Show returns one product with its category resolved, or null when the
// id matches nothing.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	product, err := c.service.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Internal(w, err)
		return
	}
	response.JSON(w, http.StatusOK, product)
}

func (c *ProductController) ByCategory(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.ListProductsByCategory(r.Context(), chi.URLParam(r, "categoryId"))
	if err != nil {
		response.Internal(w, err)
		return
	}
	response.JSON(w, http.StatusOK, products)
}

func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	var in productInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	err := c.service.CreateProduct(r.Context(), in.toInput())
	switch {
	case err == nil:
		response.Message(w, "Product has been added!")
	case errors.Is(err, services.ErrProductExists):
		response.Error(w, http.StatusUnauthorized, "Product already exist!")
	case errors.Is(err, services.ErrCategoryNotFound):
		response.Error(w, http.StatusNotFound, "Category not found!")
	default:
		response.Internal(w, err)
	}
}

// Update rewrites a product. The target id travels in the request body,
// not the path.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	var in productInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	err := c.service.UpdateProduct(r.Context(), in.ID, in.toInput())
	switch {
	case err == nil:
		response.Message(w, "Product has been updated!")
	case errors.Is(err, services.ErrProductNotFound):
		response.Error(w, http.StatusUnauthorized, "Product doesn't exist!")
	case errors.Is(err, services.ErrCategoryNotFound):
		response.Error(w, http.StatusNotFound, "Category not found!")
	default:
		response.Internal(w, err)
	}
}

func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	err := c.service.DeleteProduct(r.Context(), chi.URLParam(r, "id"))
	switch {
	case err == nil:
		response.Message(w, "Product has been deleted!")
	case errors.Is(err, services.ErrProductNotFound):
		response.Error(w, http.StatusNotFound, "Product not found!")
	default:
		response.Internal(w, err)
	}
}
