package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/app/models"
)

// In-memory repository fakes. All of them follow the same convention as the
// mongo implementations: finders return (nil, nil) when nothing matches.

type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]*models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	u := *user
	r.users[user.ID] = &u
	return nil
}

func (r *fakeUserRepo) FindByName(_ context.Context, name string) (*models.User, error) {
	for _, u := range r.users {
		if u.Name == name {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) All(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

type fakeCategoryRepo struct {
	categories map[primitive.ObjectID]*models.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[primitive.ObjectID]*models.Category{}}
}

func (r *fakeCategoryRepo) Create(_ context.Context, cat *models.Category) error {
	if cat.ID.IsZero() {
		cat.ID = primitive.NewObjectID()
	}
	c := *cat
	r.categories[cat.ID] = &c
	return nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, cat *models.Category) error {
	c := *cat
	r.categories[cat.ID] = &c
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) FindByName(_ context.Context, name string) (*models.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Category, error) {
	out := map[primitive.ObjectID]models.Category{}
	for _, id := range ids {
		if c, ok := r.categories[id]; ok {
			out[id] = *c
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) All(_ context.Context) ([]models.Category, error) {
	out := make([]models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[primitive.ObjectID]*models.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[primitive.ObjectID]*models.Product{}}
}

func (r *fakeProductRepo) Create(_ context.Context, p *models.Product) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *models.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) FindByName(_ context.Context, name string) (*models.Product, error) {
	for _, p := range r.products {
		if p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Product, error) {
	out := map[primitive.ObjectID]models.Product{}
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out[id] = *p
		}
	}
	return out, nil
}

func (r *fakeProductRepo) FindByCategory(_ context.Context, catID primitive.ObjectID) ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range r.products {
		if p.Category == catID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) All(_ context.Context) ([]models.Product, error) {
	out := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductRepo) ClearCategory(_ context.Context, catID primitive.ObjectID) error {
	for _, p := range r.products {
		if p.Category == catID {
			p.Category = primitive.NilObjectID
		}
	}
	return nil
}

type fakeTransactionRepo struct {
	transactions map[primitive.ObjectID]*models.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: map[primitive.ObjectID]*models.Transaction{}}
}

func (r *fakeTransactionRepo) Create(_ context.Context, t *models.Transaction) error {
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	cp := *t
	r.transactions[t.ID] = &cp
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Transaction, error) {
	t, ok := r.transactions[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTransactionRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status models.Status) error {
	if t, ok := r.transactions[id]; ok {
		t.Status = status
	}
	return nil
}

func (r *fakeTransactionRepo) FindByUser(_ context.Context, userID primitive.ObjectID) ([]models.Transaction, error) {
	out := []models.Transaction{}
	for _, t := range r.transactions {
		if t.User == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) FindOneForUser(_ context.Context, id, userID primitive.ObjectID) (*models.Transaction, error) {
	t, ok := r.transactions[id]
	if !ok || t.User != userID {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTransactionRepo) All(_ context.Context) ([]models.Transaction, error) {
	out := make([]models.Transaction, 0, len(r.transactions))
	for _, t := range r.transactions {
		out = append(out, *t)
	}
	return out, nil
}
