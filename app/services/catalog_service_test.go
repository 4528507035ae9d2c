package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type catalogFixture struct {
	svc        *CatalogService
	categories *fakeCategoryRepo
	products   *fakeProductRepo
}

// newCatalogFixture wires the service with a nil cache, which is a
// pass-through: every read goes to the repositories.
func newCatalogFixture() catalogFixture {
	categories := newFakeCategoryRepo()
	products := newFakeProductRepo()
	return catalogFixture{
		svc:        NewCatalogService(categories, products, nil),
		categories: categories,
		products:   products,
	}
}

func TestCategoryCRUD(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()

	require.NoError(t, f.svc.CreateCategory(ctx, "Books", "Printed matter"))
	assert.ErrorIs(t, f.svc.CreateCategory(ctx, "Books", ""), ErrCategoryExists)

	cats, err := f.svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	id := cats[0].ID.Hex()

	require.NoError(t, f.svc.UpdateCategory(ctx, id, "Books", "All printed matter"))
	got, err := f.svc.GetCategory(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "All printed matter", got.Description)

	require.NoError(t, f.svc.DeleteCategory(ctx, id))
	got, err = f.svc.GetCategory(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCategoryNotFoundSentinels(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()

	missing := primitive.NewObjectID().Hex()
	assert.ErrorIs(t, f.svc.UpdateCategory(ctx, missing, "x", ""), ErrCategoryNotFound)
	assert.ErrorIs(t, f.svc.UpdateCategory(ctx, "bad-id", "x", ""), ErrCategoryNotFound)
	assert.ErrorIs(t, f.svc.DeleteCategory(ctx, missing), ErrCategoryNotFound)
}

func TestGetCategoryMissingIsNil(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()

	got, err := f.svc.GetCategory(ctx, primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = f.svc.GetCategory(ctx, "bad-id")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductCRUDResolvesCategory(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()

	require.NoError(t, f.svc.CreateCategory(ctx, "Electronics", ""))
	cats, err := f.svc.ListCategories(ctx)
	require.NoError(t, err)
	catID := cats[0].ID.Hex()

	in := ProductInput{Name: "Mouse", Price: 19.99, Stock: 10, Category: catID}
	require.NoError(t, f.svc.CreateProduct(ctx, in))
	assert.ErrorIs(t, f.svc.CreateProduct(ctx, in), ErrProductExists)

	views, err := f.svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.NotNil(t, views[0].Category)
	assert.Equal(t, "Electronics", views[0].Category.Name)

	id := views[0].ID.Hex()
	in.Price = 14.99
	require.NoError(t, f.svc.UpdateProduct(ctx, id, in))

	got, err := f.svc.GetProduct(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 14.99, got.Price)

	require.NoError(t, f.svc.DeleteProduct(ctx, id))
	got, err = f.svc.GetProduct(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductUnknownCategoryRejected(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()

	in := ProductInput{Name: "Mouse", Price: 19.99, Category: primitive.NewObjectID().Hex()}
	assert.ErrorIs(t, f.svc.CreateProduct(ctx, in), ErrCategoryNotFound)

	in.Category = "bad-id"
	assert.ErrorIs(t, f.svc.CreateProduct(ctx, in), ErrCategoryNotFound)
}

func TestProductWithoutCategory(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()

	require.NoError(t, f.svc.CreateProduct(ctx, ProductInput{Name: "Cable", Price: 4.99}))

	views, err := f.svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Nil(t, views[0].Category)
}

func TestDeleteCategoryDetachesProducts(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()

	require.NoError(t, f.svc.CreateCategory(ctx, "Electronics", ""))
	cats, err := f.svc.ListCategories(ctx)
	require.NoError(t, err)
	catID := cats[0].ID.Hex()

	require.NoError(t, f.svc.CreateProduct(ctx, ProductInput{Name: "Mouse", Price: 19.99, Category: catID}))
	require.NoError(t, f.svc.DeleteCategory(ctx, catID))

	views, err := f.svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1, "product survives its category")
	assert.Nil(t, views[0].Category)
}

func TestListProductsByCategory(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()

	require.NoError(t, f.svc.CreateCategory(ctx, "Electronics", ""))
	cats, err := f.svc.ListCategories(ctx)
	require.NoError(t, err)
	catID := cats[0].ID.Hex()

	require.NoError(t, f.svc.CreateProduct(ctx, ProductInput{Name: "Mouse", Price: 19.99, Category: catID}))
	require.NoError(t, f.svc.CreateProduct(ctx, ProductInput{Name: "Cable", Price: 4.99}))

	views, err := f.svc.ListProductsByCategory(ctx, catID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Mouse", views[0].Name)

	views, err = f.svc.ListProductsByCategory(ctx, "bad-id")
	require.NoError(t, err)
	assert.Empty(t, views)
}
