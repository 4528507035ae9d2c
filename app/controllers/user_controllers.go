package controllers

import (
	"errors"
	"net/http"

	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/app/services"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/middleware"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/response"
)

type UserController struct {
	service *services.AuthService
}

func NewUserController(service *services.AuthService) *UserController {
	return &UserController{service: service}
}

// Index lists every user. Password hashes never serialise.
func (c *UserController) Index(w http.ResponseWriter, r *http.Request) {
	users, err := c.service.ListUsers(r.Context())
	if err != nil {
		response.Internal(w, err)
		return
	}
	response.JSON(w, http.StatusOK, users)
}

// Show returns the record of the authenticated caller, resolved from the
// verified token's subject id.
func (c *UserController) Show(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromCtx(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Access Denied")
		return
	}

	user, err := c.service.Profile(r.Context(), claims.ID)
	switch {
	case err == nil:
		response.JSON(w, http.StatusOK, user)
	case errors.Is(err, services.ErrUserNotFound):
		// A valid token whose subject no longer exists resolves to null.
		response.JSON(w, http.StatusOK, nil)
	default:
		response.Internal(w, err)
	}
}
