package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItem is one dish in the menu catalog. The "recip" field name is
// what the frontend already ships with, so it stays.
type MenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Category string             `bson:"category" json:"category"`
	Price    float64            `bson:"price" json:"price"`
	Recipe   string             `bson:"recip" json:"recip"`
	Image    string             `bson:"image" json:"image"`
}
