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

// TransactionRepository handles persistence for Transaction documents.
// UpdateStatus overwrites the single status field; concurrent updates on the
// same document are last-write-wins, relying on mongo's per-document
// atomicity only.
type TransactionRepository interface {
	Create(ctx context.Context, t *models.Transaction) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Transaction, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.Status) error
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Transaction, error)
	FindOneForUser(ctx context.Context, id, userID primitive.ObjectID) (*models.Transaction, error)
	All(ctx context.Context) ([]models.Transaction, error)
}

// MongoTransactionRepository is the MongoDB-backed TransactionRepository.
type MongoTransactionRepository struct {
	col *mongo.Collection
}

func NewMongoTransactionRepository(db *mongo.Database) *MongoTransactionRepository {
	return &MongoTransactionRepository{col: db.Collection("transactions")}
}

func (r *MongoTransactionRepository) Create(ctx context.Context, t *models.Transaction) error {
	res, err := r.col.InsertOne(ctx, t)
	if err != nil {
		return fmt.Errorf("transactions: insert: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		t.ID = id
	}
	return nil
}

func (r *MongoTransactionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Transaction, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoTransactionRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.Status) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("transactions: update status: %w", err)
	}
	return nil
}

func (r *MongoTransactionRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Transaction, error) {
	return r.findAll(ctx, bson.M{"user": userID})
}

func (r *MongoTransactionRepository) FindOneForUser(ctx context.Context, id, userID primitive.ObjectID) (*models.Transaction, error) {
	return r.findOne(ctx, bson.M{"_id": id, "user": userID})
}

func (r *MongoTransactionRepository) All(ctx context.Context) ([]models.Transaction, error) {
	return r.findAll(ctx, bson.M{})
}

func (r *MongoTransactionRepository) findOne(ctx context.Context, filter bson.M) (*models.Transaction, error) {
	var t models.Transaction
	err := r.col.FindOne(ctx, filter).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("transactions: find: %w", err)
	}
	return &t, nil
}

func (r *MongoTransactionRepository) findAll(ctx context.Context, filter bson.M) ([]models.Transaction, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("transactions: find all: %w", err)
	}
	defer cur.Close(ctx)

	out := []models.Transaction{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("transactions: decode all: %w", err)
	}
	return out, nil
}
