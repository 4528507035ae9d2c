package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status is the closed set of transaction states. A transaction starts as
// StatusPending; updates overwrite the current value (no history is kept).
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// LineItem is a (product reference, quantity) pair inside a transaction.
type LineItem struct {
	Product  primitive.ObjectID `bson:"product"  json:"product"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

// Transaction is an order document. User always references the account that
// created the order; TotalAmount is stored as supplied by the client.
type Transaction struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User        primitive.ObjectID `bson:"user"          json:"user"`
	Products    []LineItem         `bson:"products"      json:"products"`
	TotalAmount float64            `bson:"totalAmount"   json:"totalAmount"`
	Status      Status             `bson:"status"        json:"status"`
	CreatedAt   time.Time          `bson:"createdAt"     json:"createdAt"`
}

// LineItemView is a line item with the product reference resolved.
type LineItemView struct {
	Product  *Product `json:"product"`
	Quantity int      `json:"quantity"`
}

// TransactionView is a Transaction with references resolved for read
// endpoints. User is only populated on single-record reads, mirroring which
// lookups each endpoint performs.
type TransactionView struct {
	ID          primitive.ObjectID `json:"id"`
	User        *User              `json:"user,omitempty"`
	Products    []LineItemView     `json:"products"`
	TotalAmount float64            `json:"totalAmount"`
	Status      Status             `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
}
