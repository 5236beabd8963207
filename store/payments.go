package store

import (
	"context"
	"time"

	"bistro-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentStore struct {
	col *mongo.Collection
}

func NewPaymentStore(db *mongo.Database) *PaymentStore {
	return &PaymentStore{col: db.Collection("Payment")}
}

// Insert appends one payment record. Records are never updated or deleted.
func (s *PaymentStore) Insert(ctx context.Context, p *models.Payment) (string, error) {
	if p.Date.IsZero() {
		p.Date = time.Now()
	}
	res, err := s.col.InsertOne(ctx, p)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *PaymentStore) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	cur, err := s.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	var payments []models.Payment
	if err := cur.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
