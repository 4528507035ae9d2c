package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/app/models"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/app/services"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/logger"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/middleware"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/response"
)

type TransactionController struct {
	service *services.TransactionService
}

func NewTransactionController(service *services.TransactionService) *TransactionController {
	return &TransactionController{service: service}
}

// Index lists every transaction with owner and products resolved.
func (c *TransactionController) Index(w http.ResponseWriter, r *http.Request) {
	views, err := c.service.ListAll(r.Context())
	if err != nil {
		response.Internal(w, err)
		return
	}
	response.JSON(w, http.StatusOK, views)
}

// Store creates a pending transaction. The owner is taken from the verified
// token claims; any user id in the request body is ignored.
func (c *TransactionController) Store(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromCtx(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Access Denied")
		return
	}

	var body struct {
		Cart        []services.CartItem `json:"cart"`
		TotalAmount float64             `json:"totalAmount"`
	}
	json.NewDecoder(r.Body).Decode(&body) //nolint:errcheck

	if err := c.service.Create(r.Context(), claims.ID, body.Cart, body.TotalAmount); err != nil {
		if errors.Is(err, services.ErrInvalidCart) {
			response.Error(w, http.StatusBadRequest, "Cart must hold at least one item with quantity 1 or more!")
			return
		}
		response.Internal(w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("transaction created",
		"user_id", claims.ID,
		"items", len(body.Cart),
		"total", body.TotalAmount,
	)
	response.Message(w, "Transaction has been added!")
}

// Update overwrites a transaction's status. Admin only.
func (c *TransactionController) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromCtx(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Access Denied")
		return
	}

	var body struct {
		TransID string        `json:"TransId"`
		Status  models.Status `json:"status"`
	}
	json.NewDecoder(r.Body).Decode(&body) //nolint:errcheck

	err := c.service.UpdateStatus(r.Context(), claims.Role, body.TransID, body.Status)
	switch {
	case err == nil:
		response.Message(w, "Transaction has been updated!")
	case errors.Is(err, services.ErrForbidden):
		response.Error(w, http.StatusBadRequest, "You are not allowed to do this!")
	case errors.Is(err, services.ErrTransactionNotFound):
		response.Error(w, http.StatusBadRequest, "Transaction doesn't exist!")
	case errors.Is(err, services.ErrInvalidStatus):
		response.Error(w, http.StatusBadRequest, "Invalid status!")
	default:
		response.Internal(w, err)
	}
}

// ListForUser lists the transactions of {userId}. Self-only: the path
// parameter must match the caller's token subject.
func (c *TransactionController) ListForUser(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromCtx(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Access Denied")
		return
	}

	views, err := c.service.ListForUser(r.Context(), claims.ID, chi.URLParam(r, "userId"))
	switch {
	case err == nil:
		response.JSON(w, http.StatusOK, views)
	case errors.Is(err, services.ErrForbidden):
		response.Error(w, http.StatusBadRequest, "You are not allowed to check this!")
	default:
		response.Internal(w, err)
	}
}

// Show returns one transaction of {userId}, or null when no match.
func (c *TransactionController) Show(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromCtx(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Access Denied")
		return
	}

	view, err := c.service.GetOne(r.Context(), claims.ID, chi.URLParam(r, "userId"), chi.URLParam(r, "id"))
	switch {
	case err == nil:
		response.JSON(w, http.StatusOK, view)
	case errors.Is(err, services.ErrForbidden):
		response.Error(w, http.StatusBadRequest, "You are not allowed to check this!")
	default:
		response.Internal(w, err)
	}
}
