package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lovedeck/lovedeck-services/internal/decksvc/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const usersCollection = "users"

type UserStore struct {
	col *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{col: db.Collection(usersCollection)}
}

func (s *UserStore) CreateProfile(ctx context.Context, user models.User) error {
	_, err := s.col.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// GetByID returns nil, nil when the profile does not exist yet. A fresh
// account may still be provisioning, callers treat absence as non-fatal.
func (s *UserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &user, nil
}

// UpdateProfile applies a partial update. The couple code is immutable
// after creation and is never part of fields.
func (s *UserStore) UpdateProfile(ctx context.Context, id string, fields bson.M) error {
	delete(fields, "couple_code")
	fields["updated_at"] = time.Now()

	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("profile %s not found", id)
	}
	return nil
}
