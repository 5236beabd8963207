package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records one settled checkout. Append-only: never updated or
// deleted through this API. CartIDs lists the cart entries the settlement
// cleared.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Price         float64            `bson:"price" json:"price"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	CartIDs       []string           `bson:"cartIds" json:"cartIds"`
	MenuIDs       []string           `bson:"menuIds" json:"menuIds"`
	Status        string             `bson:"status" json:"status"`
	Date          time.Time          `bson:"date" json:"date"`
}
