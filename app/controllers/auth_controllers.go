// Package controllers contains the HTTP handlers. Each controller is a thin
// net/http layer: decode the body, call a service, map the result onto the
// API's wire contract. Every failure is answered locally as {"error": ...}.
package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/app/services"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/logger"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/response"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// Login exchanges name/password for a signed token. All credential failures
// come back as 400 with messages that distinguish unknown user from wrong
// password at this layer only.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	json.NewDecoder(r.Body).Decode(&body) //nolint:errcheck

	token, err := c.service.Login(r.Context(), body.Name, body.Password)
	switch {
	case err == nil:
		response.Token(w, token)
	case errors.Is(err, services.ErrEmptyCredentials):
		response.Error(w, http.StatusBadRequest, "Username / Password cannot be empty!")
	case errors.Is(err, services.ErrUserNotFound):
		response.Error(w, http.StatusBadRequest, "User not found")
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Error(w, http.StatusBadRequest, "Invalid credentials")
	default:
		response.Internal(w, err)
	}
}

// Register creates a new account with the default role.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	json.NewDecoder(r.Body).Decode(&body) //nolint:errcheck

	err := c.service.Register(r.Context(), body.Name, body.Email, body.Password)
	switch {
	case err == nil:
		logger.WithCtx(r.Context()).Info("user registered", "name", body.Name)
		response.Message(w, "User has been added!")
	case errors.Is(err, services.ErrUserExists):
		response.Error(w, http.StatusUnauthorized, "User already exist!")
	default:
		response.Internal(w, err)
	}
}
