package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/app/services"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/bind"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/response"
)

type categoryInput struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"nullable,max=500"`
}

type CategoryController struct {
	service *services.CatalogService
}

func NewCategoryController(service *services.CatalogService) *CategoryController {
	return &CategoryController{service: service}
}

func (c *CategoryController) Index(w http.ResponseWriter, r *http.Request) {
	categories, err := c.service.ListCategories(r.Context())
	if err != nil {
		response.Internal(w, err)
		return
	}
	response.JSON(w, http.StatusOK, categories)
}

// Show returns one category, or null when the id matches nothing.
func (c *CategoryController) Show(w http.ResponseWriter, r *http.Request) {
	category, err := c.service.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Internal(w, err)
		return
	}
	response.JSON(w, http.StatusOK, category)
}

func (c *CategoryController) Store(w http.ResponseWriter, r *http.Request) {
	var in categoryInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	err := c.service.CreateCategory(r.Context(), in.Name, in.Description)
	switch {
	case err == nil:
		response.Message(w, "Category has been added!")
	case errors.Is(err, services.ErrCategoryExists):
		response.Error(w, http.StatusUnauthorized, "Category already exist!")
	default:
		response.Internal(w, err)
	}
}

// Update rewrites a category. The target id travels in the request body,
// not the path.
func (c *CategoryController) Update(w http.ResponseWriter, r *http.Request) {
	var in categoryInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	err := c.service.UpdateCategory(r.Context(), in.ID, in.Name, in.Description)
	switch {
	case err == nil:
		response.Message(w, "Category has been updated!")
	case errors.Is(err, services.ErrCategoryNotFound):
		response.Error(w, http.StatusNotFound, "Category not found!")
	default:
		response.Internal(w, err)
	}
}

// Delete removes a category and detaches it from any products that
// reference it.
func (c *CategoryController) Delete(w http.ResponseWriter, r *http.Request) {
	err := c.service.DeleteCategory(r.Context(), chi.URLParam(r, "id"))
	switch {
	case err == nil:
		response.Message(w, "Category has been deleted!")
	case errors.Is(err, services.ErrCategoryNotFound):
		response.Error(w, http.StatusNotFound, "Category not found!")
	default:
		response.Internal(w, err)
	}
}
