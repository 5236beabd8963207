package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartEntry is one menu item sitting in a user's cart. Email is the owning
// identity; every read and delete is scoped to it.
type CartEntry struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email  string             `bson:"email" json:"email"`
	MenuID string             `bson:"menuId" json:"menuId"`
	Name   string             `bson:"name" json:"name"`
	Image  string             `bson:"image" json:"image"`
	Price  float64            `bson:"price" json:"price"`
}
