package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/app/models"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/app/repositories"
)

// CartItem is one entry of an incoming order.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// TransactionService implements order creation, role-gated status updates
// and owner-scoped reads.
//
// Two access rules coexist and are intentionally NOT unified: status updates
// require the Admin role and ignore ownership, while reads are strictly
// self-only and Admin does not bypass them.
type TransactionService struct {
	transactions repositories.TransactionRepository
	products     repositories.ProductRepository
	users        repositories.UserRepository
}

func NewTransactionService(
	transactions repositories.TransactionRepository,
	products repositories.ProductRepository,
	users repositories.UserRepository,
) *TransactionService {
	return &TransactionService{transactions: transactions, products: products, users: users}
}

// Create persists a pending transaction owned by ownerID, which is always
// the authenticated caller's id from the verified token, never a value from
// the request body. The cart must hold at least one item and every quantity
// must be 1 or more; beyond that, product references and totalAmount are
// stored as supplied: existence, stock and amount consistency are not
// checked here.
func (s *TransactionService) Create(ctx context.Context, ownerID string, cart []CartItem, totalAmount float64) error {
	uid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return fmt.Errorf("parse owner id: %w", err)
	}

	if len(cart) == 0 {
		return ErrInvalidCart
	}

	items := make([]models.LineItem, 0, len(cart))
	for _, item := range cart {
		if item.Quantity < 1 {
			return ErrInvalidCart
		}
		pid, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			return fmt.Errorf("parse product id %q: %w", item.ProductID, err)
		}
		items = append(items, models.LineItem{Product: pid, Quantity: item.Quantity})
	}

	t := models.Transaction{
		User:        uid,
		Products:    items,
		TotalAmount: totalAmount,
		Status:      models.StatusPending,
		CreatedAt:   time.Now(),
	}
	return s.transactions.Create(ctx, &t)
}

// UpdateStatus overwrites a transaction's status. Only the Admin role may
// call it; the transaction's owner is irrelevant. The new status must be one
// of the known values, but no transition rule is applied: completed back to
// pending is accepted.
func (s *TransactionService) UpdateStatus(ctx context.Context, callerRole models.Role, transID string, status models.Status) error {
	if callerRole != models.RoleAdmin {
		return ErrForbidden
	}
	if !status.Valid() {
		return ErrInvalidStatus
	}

	id, err := primitive.ObjectIDFromHex(transID)
	if err != nil {
		return ErrTransactionNotFound
	}

	t, err := s.transactions.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrTransactionNotFound
	}

	return s.transactions.UpdateStatus(ctx, id, status)
}

// ListForUser returns userID's transactions with line items resolved.
// The caller may only list their own: callerID must equal userID.
func (s *TransactionService) ListForUser(ctx context.Context, callerID, userID string) ([]models.TransactionView, error) {
	if callerID != userID {
		return nil, ErrForbidden
	}

	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("parse user id: %w", err)
	}

	ts, err := s.transactions.FindByUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	return s.resolveAll(ctx, ts, false)
}

// GetOne returns a single transaction scoped to userID, with both owner and
// line items resolved. Same self-only rule as ListForUser. A missing match
// is (nil, nil), not an error.
func (s *TransactionService) GetOne(ctx context.Context, callerID, userID, transID string) (*models.TransactionView, error) {
	if callerID != userID {
		return nil, ErrForbidden
	}

	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("parse user id: %w", err)
	}
	tid, err := primitive.ObjectIDFromHex(transID)
	if err != nil {
		return nil, nil
	}

	t, err := s.transactions.FindOneForUser(ctx, tid, uid)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}

	views, err := s.resolveAll(ctx, []models.Transaction{*t}, true)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// ListAll returns every transaction with owner and line items resolved.
func (s *TransactionService) ListAll(ctx context.Context) ([]models.TransactionView, error) {
	ts, err := s.transactions.All(ctx)
	if err != nil {
		return nil, err
	}
	return s.resolveAll(ctx, ts, true)
}

// resolveAll joins transactions against the product catalogue (and the users
// collection when withUser is set). Dangling references resolve to nil.
func (s *TransactionService) resolveAll(ctx context.Context, ts []models.Transaction, withUser bool) ([]models.TransactionView, error) {
	productIDs := make([]primitive.ObjectID, 0)
	seen := map[primitive.ObjectID]bool{}
	for _, t := range ts {
		for _, item := range t.Products {
			if !seen[item.Product] {
				seen[item.Product] = true
				productIDs = append(productIDs, item.Product)
			}
		}
	}

	catalog, err := s.products.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	owners := map[primitive.ObjectID]*models.User{}
	if withUser {
		for _, t := range ts {
			if _, ok := owners[t.User]; ok {
				continue
			}
			u, err := s.users.FindByID(ctx, t.User)
			if err != nil {
				return nil, err
			}
			owners[t.User] = u
		}
	}

	views := make([]models.TransactionView, 0, len(ts))
	for _, t := range ts {
		items := make([]models.LineItemView, 0, len(t.Products))
		for _, item := range t.Products {
			var p *models.Product
			if found, ok := catalog[item.Product]; ok {
				cp := found
				p = &cp
			}
			items = append(items, models.LineItemView{Product: p, Quantity: item.Quantity})
		}

		view := models.TransactionView{
			ID:          t.ID,
			Products:    items,
			TotalAmount: t.TotalAmount,
			Status:      t.Status,
			CreatedAt:   t.CreatedAt,
		}
		if withUser {
			view.User = owners[t.User]
		}
		views = append(views, view)
	}
	return views, nil
}
