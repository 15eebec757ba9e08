package store

import (
	"context"
	"fmt"
	"time"

	"github.com/lovedeck/lovedeck-services/internal/decksvc/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const storiesCollection = "stories"

const storyRetrievalLimit = 20

type StoryStore struct {
	col *mongo.Collection
}

func NewStoryStore(db *mongo.Database) *StoryStore {
	return &StoryStore{col: db.Collection(storiesCollection)}
}

// Upsert replaces the user's story. The collection only ever holds the
// latest story per user; the unique index on user_id backs this up.
func (s *StoryStore) Upsert(ctx context.Context, story models.Story) error {
	opts := options.Replace().SetUpsert(true)

	_, err := s.col.ReplaceOne(ctx, bson.M{"user_id": story.UserID}, story, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert story: %w", err)
	}
	return nil
}

// ListActive returns stories that have not expired yet. The TTL index
// reaps expired documents eventually; the filter keeps the read exact.
func (s *StoryStore) ListActive(ctx context.Context, now time.Time) ([]models.Story, error) {
	opts := options.Find().SetLimit(storyRetrievalLimit)

	cursor, err := s.col.Find(ctx, bson.M{"expires_at": bson.M{"$gt": now}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}
	defer cursor.Close(ctx)

	stories := []models.Story{}
	if err := cursor.All(ctx, &stories); err != nil {
		return nil, fmt.Errorf("failed to decode stories: %w", err)
	}

	return stories, nil
}
