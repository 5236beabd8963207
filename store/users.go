package store

import (
	"context"
	"errors"
	"time"

	"bistro-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a looked-up document does not exist.
var ErrNotFound = errors.New("not found")

type UserStore struct {
	col *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{col: db.Collection("users")}
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// RoleByEmail returns the stored role for an email. A missing user is not
// an admin, so ErrNotFound propagates for the caller to map to forbidden.
func (s *UserStore) RoleByEmail(ctx context.Context, email string) (models.UserRole, error) {
	u, err := s.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return u.Role, nil
}

func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Insert creates the user document and returns the new id as hex.
func (s *UserStore) Insert(ctx context.Context, u *models.User) (string, error) {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	res, err := s.col.InsertOne(ctx, u)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// PromoteToAdmin flips the role field. This is the only write path that may
// ever set role to admin.
func (s *UserStore) PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (matched, modified int64, err error) {
	res, err := s.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"role": models.RoleAdmin}})
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

func (s *UserStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
