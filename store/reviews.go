package store

import (
	"context"

	"bistro-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewStore struct {
	col *mongo.Collection
}

func NewReviewStore(db *mongo.Database) *ReviewStore {
	// The live site stores reviews under "remenu"; keeping the collection
	// name avoids a data migration.
	return &ReviewStore{col: db.Collection("remenu")}
}

func (s *ReviewStore) List(ctx context.Context) ([]models.Review, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var reviews []models.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
