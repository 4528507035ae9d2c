package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/app/models"
)

// ProductRepository handles persistence for Product documents.
type ProductRepository interface {
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindByName(ctx context.Context, name string) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Product, error)
	FindByCategory(ctx context.Context, catID primitive.ObjectID) ([]models.Product, error)
	All(ctx context.Context) ([]models.Product, error)
	// ClearCategory drops the category reference from every product in the
	// given category. Used when a category is deleted.
	ClearCategory(ctx context.Context, catID primitive.ObjectID) error
}

// MongoProductRepository is the MongoDB-backed ProductRepository.
type MongoProductRepository struct {
	col *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{col: db.Collection("products")}
}

func (r *MongoProductRepository) Create(ctx context.Context, p *models.Product) error {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return fmt.Errorf("products: insert: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = id
	}
	return nil
}

func (r *MongoProductRepository) Update(ctx context.Context, p *models.Product) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return fmt.Errorf("products: update: %w", err)
	}
	return nil
}

func (r *MongoProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("products: delete: %w", err)
	}
	return nil
}

func (r *MongoProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoProductRepository) FindByName(ctx context.Context, name string) (*models.Product, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *MongoProductRepository) findOne(ctx context.Context, filter bson.M) (*models.Product, error) {
	var p models.Product
	err := r.col.FindOne(ctx, filter).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("products: find: %w", err)
	}
	return &p, nil
}

func (r *MongoProductRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Product, error) {
	out := make(map[primitive.ObjectID]models.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("products: find by ids: %w", err)
	}
	defer cur.Close(ctx)

	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("products: decode: %w", err)
	}
	for _, p := range products {
		out[p.ID] = p
	}
	return out, nil
}

func (r *MongoProductRepository) FindByCategory(ctx context.Context, catID primitive.ObjectID) ([]models.Product, error) {
	return r.findAll(ctx, bson.M{"category": catID})
}

func (r *MongoProductRepository) All(ctx context.Context) ([]models.Product, error) {
	return r.findAll(ctx, bson.M{})
}

func (r *MongoProductRepository) findAll(ctx context.Context, filter bson.M) ([]models.Product, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("products: find all: %w", err)
	}
	defer cur.Close(ctx)

	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("products: decode all: %w", err)
	}
	return products, nil
}

func (r *MongoProductRepository) ClearCategory(ctx context.Context, catID primitive.ObjectID) error {
	_, err := r.col.UpdateMany(ctx,
		bson.M{"category": catID},
		bson.M{"$unset": bson.M{"category": ""}},
	)
	if err != nil {
		return fmt.Errorf("products: clear category: %w", err)
	}
	return nil
}
