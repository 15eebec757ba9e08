package store

import (
	"context"
	"fmt"

	"github.com/lovedeck/lovedeck-services/internal/decksvc/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const feedCollection = "feed"

// FeedRetrievalLimit caps how many feed items a single read returns.
const FeedRetrievalLimit = 50

type FeedStore struct {
	col *mongo.Collection
}

func NewFeedStore(db *mongo.Database) *FeedStore {
	return &FeedStore{col: db.Collection(feedCollection)}
}

func (s *FeedStore) Append(ctx context.Context, item models.FeedItem) error {
	_, err := s.col.InsertOne(ctx, item)
	if err != nil {
		return fmt.Errorf("failed to append feed item: %w", err)
	}
	return nil
}

// ListRecent returns the newest items first, capped at FeedRetrievalLimit.
func (s *FeedStore) ListRecent(ctx context.Context) ([]models.FeedItem, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(FeedRetrievalLimit)

	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list feed: %w", err)
	}
	defer cursor.Close(ctx)

	items := []models.FeedItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode feed items: %w", err)
	}

	return items, nil
}

// AdjustLikes moves the like counter by delta (like toggle sends +1/-1).
func (s *FeedStore) AdjustLikes(ctx context.Context, id string, delta int) error {
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"likes": delta}})
	if err != nil {
		return fmt.Errorf("failed to adjust likes: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("feed item %s not found", id)
	}
	return nil
}

func (s *FeedStore) IncrementComments(ctx context.Context, id string) error {
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"comments": 1}})
	if err != nil {
		return fmt.Errorf("failed to increment comments: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("feed item %s not found", id)
	}
	return nil
}

// CountByUser counts feed items authored by the given user.
func (s *FeedStore) CountByUser(ctx context.Context, userID string) (int64, error) {
	n, err := s.col.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("failed to count played cards: %w", err)
	}
	return n, nil
}

// CountByOthers counts feed items authored by anyone else, the
// "cards received" number on the profile screen.
func (s *FeedStore) CountByOthers(ctx context.Context, userID string) (int64, error) {
	n, err := s.col.CountDocuments(ctx, bson.M{"user_id": bson.M{"$ne": userID}})
	if err != nil {
		return 0, fmt.Errorf("failed to count received cards: %w", err)
	}
	return n, nil
}
