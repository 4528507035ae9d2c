package seeders

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/app/models"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/auth"
)

func init() {
	Register("admin-user", seedAdminUser)
	Register("sample-catalog", seedSampleCatalog)
}

// seedAdminUser creates the bootstrap Admin account when no user with
// that name exists yet. The password must be rotated after first login.
func seedAdminUser(ctx context.Context, db *mongo.Database) error {
	users := db.Collection("users")

	n, err := users.CountDocuments(ctx, bson.M{"name": "admin"})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := auth.HashPassword("admin")
	if err != nil {
		return err
	}

	_, err = users.InsertOne(ctx, models.User{
		Name:     "admin",
		Password: hash,
		Role:     models.RoleAdmin,
	})
	return err
}

// seedSampleCatalog inserts a small demo catalogue for local development.
func seedSampleCatalog(ctx context.Context, db *mongo.Database) error {
	categories := db.Collection("categories")
	products := db.Collection("products")

	n, err := categories.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	cat := models.Category{
		Name:        "Electronics",
		Description: "Gadgets and accessories",
	}
	res, err := categories.InsertOne(ctx, cat)
	if err != nil {
		return err
	}
	catID, _ := res.InsertedID.(primitive.ObjectID)

	samples := []models.Product{
		{
			Name:        "Wireless Mouse",
			Description: "2.4 GHz wireless mouse",
			Price:       19.99,
			Stock:       120,
			CreatedAt:   time.Now(),
		},
		{
			Name:        "Mechanical Keyboard",
			Description: "87-key mechanical keyboard",
			Price:       89.90,
			Stock:       45,
			CreatedAt:   time.Now(),
		},
	}

	for i := range samples {
		samples[i].Category = catID
	}

	docs := make([]interface{}, len(samples))
	for i, p := range samples {
		docs[i] = p
	}
	_, err = products.InsertMany(ctx, docs)
	return err
}
