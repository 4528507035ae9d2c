package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category groups products in the catalogue.
type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name"          json:"name"`
	Description string             `bson:"description"   json:"description"`
}

// Product is a catalogue item. Category holds a reference into the
// categories collection; it is zero when the category was deleted.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"     json:"id"`
	Name        string             `bson:"name"              json:"name"`
	Description string             `bson:"description"       json:"description"`
	Price       float64            `bson:"price"             json:"price"`
	Stock       int                `bson:"stock"             json:"stock"`
	Category    primitive.ObjectID `bson:"category,omitempty" json:"category,omitempty"`
	Image       string             `bson:"image"             json:"image"`
	CreatedAt   time.Time          `bson:"createdAt"         json:"createdAt"`
}

// ProductView is a Product with its category reference resolved, as returned
// by catalogue read endpoints.
type ProductView struct {
	ID          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Price       float64            `json:"price"`
	Stock       int                `json:"stock"`
	Category    *Category          `json:"category"`
	Image       string             `json:"image"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// Resolve attaches cat to p. A nil cat is kept as-is (dangling reference).
func (p Product) Resolve(cat *Category) ProductView {
	return ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    cat,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
	}
}
