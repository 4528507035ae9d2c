package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role is the closed set of permission levels. Stored as a plain string in
// MongoDB so documents stay readable, but application code only ever deals
// in the two constants below.
type Role string

const (
	// RoleUser is the default role assigned at registration.
	RoleUser Role = "User"
	// RoleAdmin is the elevated role allowed to change transaction status.
	RoleAdmin Role = "Admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is the primary user document.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name"          json:"name"`
	Email    string             `bson:"email"         json:"email"`
	Password string             `bson:"password"      json:"-"` // bcrypt hash, never serialised
	Role     Role               `bson:"role"          json:"role"`
}
