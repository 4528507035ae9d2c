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

// CategoryRepository handles persistence for Category documents.
type CategoryRepository interface {
	Create(ctx context.Context, cat *models.Category) error
	Update(ctx context.Context, cat *models.Category) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Category, error)
	All(ctx context.Context) ([]models.Category, error)
}

// MongoCategoryRepository is the MongoDB-backed CategoryRepository.
type MongoCategoryRepository struct {
	col *mongo.Collection
}

func NewMongoCategoryRepository(db *mongo.Database) *MongoCategoryRepository {
	return &MongoCategoryRepository{col: db.Collection("categories")}
}

func (r *MongoCategoryRepository) Create(ctx context.Context, cat *models.Category) error {
	res, err := r.col.InsertOne(ctx, cat)
	if err != nil {
		return fmt.Errorf("categories: insert: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		cat.ID = id
	}
	return nil
}

func (r *MongoCategoryRepository) Update(ctx context.Context, cat *models.Category) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": cat.ID}, cat)
	if err != nil {
		return fmt.Errorf("categories: update: %w", err)
	}
	return nil
}

func (r *MongoCategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("categories: delete: %w", err)
	}
	return nil
}

func (r *MongoCategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoCategoryRepository) FindByName(ctx context.Context, name string) (*models.Category, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *MongoCategoryRepository) findOne(ctx context.Context, filter bson.M) (*models.Category, error) {
	var cat models.Category
	err := r.col.FindOne(ctx, filter).Decode(&cat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("categories: find: %w", err)
	}
	return &cat, nil
}

func (r *MongoCategoryRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Category, error) {
	out := make(map[primitive.ObjectID]models.Category, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("categories: find by ids: %w", err)
	}
	defer cur.Close(ctx)

	var cats []models.Category
	if err := cur.All(ctx, &cats); err != nil {
		return nil, fmt.Errorf("categories: decode: %w", err)
	}
	for _, c := range cats {
		out[c.ID] = c
	}
	return out, nil
}

func (r *MongoCategoryRepository) All(ctx context.Context) ([]models.Category, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("categories: find all: %w", err)
	}
	defer cur.Close(ctx)

	cats := []models.Category{}
	if err := cur.All(ctx, &cats); err != nil {
		return nil, fmt.Errorf("categories: decode all: %w", err)
	}
	return cats, nil
}
