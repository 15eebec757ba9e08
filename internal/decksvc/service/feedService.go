package service

import (
	"context"
	"time"

	"github.com/lovedeck/lovedeck-services/internal/decksvc/models"
	"github.com/lovedeck/lovedeck-services/internal/decksvc/store"
)

// ProfileStats are the counters on the profile screen.
type ProfileStats struct {
	CardsPlayed   int64 `json:"cards_played"`
	CardsReceived int64 `json:"cards_received"`
	CardsInHand   int   `json:"cards_in_hand"`
}

// FeedService struct represents the feed/story read side
type FeedService struct {
	feedStore  *store.FeedStore
	storyStore *store.StoryStore
}

// NewFeedService creates a new FeedService instance
func NewFeedService(feedStore *store.FeedStore, storyStore *store.StoryStore) *FeedService {
	return &FeedService{
		feedStore:  feedStore,
		storyStore: storyStore,
	}
}

func (s *FeedService) GetFeed(ctx context.Context) ([]models.FeedItem, error) {
	return s.feedStore.ListRecent(ctx)
}

func (s *FeedService) GetStories(ctx context.Context) ([]models.Story, error) {
	return s.storyStore.ListActive(ctx, time.Now())
}

// ToggleLike moves the like counter up or down by one.
func (s *FeedService) ToggleLike(ctx context.Context, feedItemID string, on bool) error {
	delta := 1
	if !on {
		delta = -1
	}
	return s.feedStore.AdjustLikes(ctx, feedItemID, delta)
}

// AddComment bumps the comment counter. Comment bodies are not stored.
func (s *FeedService) AddComment(ctx context.Context, feedItemID string) error {
	return s.feedStore.IncrementComments(ctx, feedItemID)
}

// Stats computes the profile counters for the given user.
func (s *FeedService) Stats(ctx context.Context, user *models.User) (*ProfileStats, error) {
	played, err := s.feedStore.CountByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	received, err := s.feedStore.CountByOthers(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &ProfileStats{
		CardsPlayed:   played,
		CardsReceived: received,
		CardsInHand:   len(user.Hand),
	}, nil
}
