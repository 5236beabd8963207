package store

import (
	"context"
	"errors"

	"bistro-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MenuStore struct {
	col *mongo.Collection
}

func NewMenuStore(db *mongo.Database) *MenuStore {
	return &MenuStore{col: db.Collection("menu")}
}

func (s *MenuStore) List(ctx context.Context, category string) ([]models.MenuItem, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	cur, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var items []models.MenuItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MenuStore) Get(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	var item models.MenuItem
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *MenuStore) Insert(ctx context.Context, item *models.MenuItem) (string, error) {
	res, err := s.col.InsertOne(ctx, item)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// Update sets the editable fields and reports matched/modified counts.
func (s *MenuStore) Update(ctx context.Context, id primitive.ObjectID, item *models.MenuItem) (matched, modified int64, err error) {
	update := bson.M{"$set": bson.M{
		"name":     item.Name,
		"category": item.Category,
		"price":    item.Price,
		"recip":    item.Recipe,
		"image":    item.Image,
	}}
	res, err := s.col.UpdateByID(ctx, id, update)
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

func (s *MenuStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
