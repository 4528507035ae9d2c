package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/app/models"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/app/repositories"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/cache"
)

const (
	categoriesCacheKey = "catalog:categories"
	productsCacheKey   = "catalog:products"
	catalogCacheTTL    = time.Minute
)

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	Category    string
	Image       string
}

// CatalogService implements category and product CRUD. List reads go
// through a best-effort redis cache invalidated by every catalogue write.
type CatalogService struct {
	categories repositories.CategoryRepository
	products   repositories.ProductRepository
	cache      *cache.Cache
}

func NewCatalogService(
	categories repositories.CategoryRepository,
	products repositories.ProductRepository,
	c *cache.Cache,
) *CatalogService {
	return &CatalogService{categories: categories, products: products, cache: c}
}

// ── Categories ──

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	var cached []models.Category
	if s.cache.Get(ctx, categoriesCacheKey, &cached) {
		return cached, nil
	}

	cats, err := s.categories.All(ctx)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, categoriesCacheKey, cats, catalogCacheTTL)
	return cats, nil
}

// GetCategory returns (nil, nil) for an unknown or unparseable id.
func (s *CatalogService) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return s.categories.FindByID(ctx, oid)
}

func (s *CatalogService) CreateCategory(ctx context.Context, name, description string) error {
	existing, err := s.categories.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrCategoryExists
	}

	cat := models.Category{Name: name, Description: description}
	if err := s.categories.Create(ctx, &cat); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id, name, description string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrCategoryNotFound
	}

	cat, err := s.categories.FindByID(ctx, oid)
	if err != nil {
		return err
	}
	if cat == nil {
		return ErrCategoryNotFound
	}

	cat.Name = name
	cat.Description = description
	if err := s.categories.Update(ctx, cat); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

// DeleteCategory removes a category. Products referencing it keep existing
// with their category reference cleared rather than being deleted.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrCategoryNotFound
	}

	cat, err := s.categories.FindByID(ctx, oid)
	if err != nil {
		return err
	}
	if cat == nil {
		return ErrCategoryNotFound
	}

	if err := s.products.ClearCategory(ctx, oid); err != nil {
		return err
	}
	if err := s.categories.Delete(ctx, oid); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

// ── Products ──

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.ProductView, error) {
	var cached []models.ProductView
	if s.cache.Get(ctx, productsCacheKey, &cached) {
		return cached, nil
	}

	products, err := s.products.All(ctx)
	if err != nil {
		return nil, err
	}

	views, err := s.resolveProducts(ctx, products)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, productsCacheKey, views, catalogCacheTTL)
	return views, nil
}

// GetProduct returns (nil, nil) for an unknown or unparseable id.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.ProductView, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	p, err := s.products.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	views, err := s.resolveProducts(ctx, []models.Product{*p})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *CatalogService) ListProductsByCategory(ctx context.Context, catID string) ([]models.ProductView, error) {
	oid, err := primitive.ObjectIDFromHex(catID)
	if err != nil {
		return []models.ProductView{}, nil
	}

	products, err := s.products.FindByCategory(ctx, oid)
	if err != nil {
		return nil, err
	}
	return s.resolveProducts(ctx, products)
}

func (s *CatalogService) CreateProduct(ctx context.Context, in ProductInput) error {
	existing, err := s.products.FindByName(ctx, in.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrProductExists
	}

	catID, err := s.resolveCategoryID(ctx, in.Category)
	if err != nil {
		return err
	}

	p := models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    catID,
		Image:       in.Image,
		CreatedAt:   time.Now(),
	}
	if err := s.products.Create(ctx, &p); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, in ProductInput) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrProductNotFound
	}

	p, err := s.products.FindByID(ctx, oid)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrProductNotFound
	}

	catID, err := s.resolveCategoryID(ctx, in.Category)
	if err != nil {
		return err
	}

	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.Stock = in.Stock
	p.Category = catID
	p.Image = in.Image
	if err := s.products.Update(ctx, p); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrProductNotFound
	}

	p, err := s.products.FindByID(ctx, oid)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrProductNotFound
	}

	if err := s.products.Delete(ctx, oid); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

// resolveCategoryID maps an optional category hex string to an object id.
// Empty means "no category"; anything else must name an existing category.
func (s *CatalogService) resolveCategoryID(ctx context.Context, id string) (primitive.ObjectID, error) {
	if id == "" {
		return primitive.NilObjectID, nil
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrCategoryNotFound
	}
	cat, err := s.categories.FindByID(ctx, oid)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if cat == nil {
		return primitive.NilObjectID, ErrCategoryNotFound
	}
	return oid, nil
}

func (s *CatalogService) resolveProducts(ctx context.Context, products []models.Product) ([]models.ProductView, error) {
	catIDs := make([]primitive.ObjectID, 0)
	seen := map[primitive.ObjectID]bool{}
	for _, p := range products {
		if p.Category.IsZero() || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		catIDs = append(catIDs, p.Category)
	}

	cats, err := s.categories.FindByIDs(ctx, catIDs)
	if err != nil {
		return nil, err
	}

	views := make([]models.ProductView, 0, len(products))
	for _, p := range products {
		var cat *models.Category
		if found, ok := cats[p.Category]; ok {
			cc := found
			cat = &cc
		}
		views = append(views, p.Resolve(cat))
	}
	return views, nil
}

func (s *CatalogService) invalidate(ctx context.Context) {
	_ = s.cache.Del(ctx, categoriesCacheKey, productsCacheKey)
}
