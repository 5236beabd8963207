package store

import (
	"context"

	"bistro-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CartStore struct {
	col *mongo.Collection
}

func NewCartStore(db *mongo.Database) *CartStore {
	return &CartStore{col: db.Collection("carts")}
}

func (s *CartStore) ListByEmail(ctx context.Context, email string) ([]models.CartEntry, error) {
	cur, err := s.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	var entries []models.CartEntry
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *CartStore) Insert(ctx context.Context, entry *models.CartEntry) (string, error) {
	res, err := s.col.InsertOne(ctx, entry)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// DeleteOwned removes one entry only if it belongs to email. A foreign or
// absent entry matches nothing and yields a zero count, not an error.
func (s *CartStore) DeleteOwned(ctx context.Context, id primitive.ObjectID, email string) (int64, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id, "email": email})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteMany clears every entry whose id is in ids. Ids that no longer
// exist are skipped silently, which is what makes settlement retries safe.
func (s *CartStore) DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	res, err := s.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
