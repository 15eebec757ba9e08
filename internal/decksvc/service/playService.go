package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lovedeck/lovedeck-services/internal/decksvc/deck"
	"github.com/lovedeck/lovedeck-services/internal/decksvc/models"
)

// StoryLifetime is how long a story stays visible after its play.
const StoryLifetime = 24 * time.Hour

var ErrCardNotInHand = errors.New("card is not in the user's hand")

// TextGenerator decorates a play with announcement text. Implementations
// must return a usable string on every path; failures fall back internally.
type TextGenerator interface {
	CardFlavor(ctx context.Context, card models.Card, user models.User) string
}

// ProfileWriter is the slice of the user store the play transaction needs.
type ProfileWriter interface {
	UpdateProfile(ctx context.Context, id string, fields bson.M) error
}

// FeedAppender appends one play event to the feed.
type FeedAppender interface {
	Append(ctx context.Context, item models.FeedItem) error
}

// StoryUpserter replaces the user's story.
type StoryUpserter interface {
	Upsert(ctx context.Context, story models.Story) error
}

// PlayResult is everything a confirmed play produced.
type PlayResult struct {
	FeedItem models.FeedItem `json:"feed_item"`
	Story    models.Story    `json:"story"`
	User     models.User     `json:"user"`
}

// PlayService runs the card-play transaction: feed append, story upsert
// and profile mutation committed as one batch.
type PlayService struct {
	db      *mongo.Database
	users   ProfileWriter
	feed    FeedAppender
	stories StoryUpserter
	flavor  TextGenerator
	now     func() time.Time
}

// NewPlayService creates a new PlayService instance. db may be nil, in
// which case the three writes run sequentially without a transaction.
func NewPlayService(db *mongo.Database, users ProfileWriter, feed FeedAppender,
	stories StoryUpserter, flavor TextGenerator) *PlayService {
	return &PlayService{
		db:      db,
		users:   users,
		feed:    feed,
		stories: stories,
		flavor:  flavor,
		now:     time.Now,
	}
}

// Play commits the daily card play for user. The card must be in the
// user's hand. The daily-limit gate belongs to the caller; Play itself
// does not re-check eligibility.
func (s *PlayService) Play(ctx context.Context, user *models.User, cardID string) (*PlayResult, error) {
	var card models.Card
	found := false
	for _, c := range user.Hand {
		if c.ID == cardID {
			card = c
			found = true
			break
		}
	}
	if !found {
		return nil, ErrCardNotInHand
	}

	// flavor text is fetched before anything is written, so an abandoned
	// confirmation leaves no partial state behind
	flavorText := s.flavor.CardFlavor(ctx, card, *user)

	now := s.now()
	played := card
	played.PlayedAt = &now
	played.PlayedBy = user.ID
	played.FlavorText = flavorText

	item := models.FeedItem{
		ID:         uuid.New().String(),
		Card:       played,
		UserID:     user.ID,
		UserName:   user.Name,
		UserAvatar: user.Avatar,
		Timestamp:  now,
		Likes:      0,
		Comments:   0,
	}

	story := models.Story{
		ID:         uuid.New().String(),
		UserID:     user.ID,
		UserName:   user.Name,
		UserAvatar: user.Avatar,
		ActiveCard: played,
		ExpiresAt:  now.Add(StoryLifetime),
	}

	hand, _ := deck.Discard(user.Hand, cardID)

	err := s.inTransaction(ctx, func(txCtx context.Context) error {
		if err := s.feed.Append(txCtx, item); err != nil {
			return err
		}
		if err := s.stories.Upsert(txCtx, story); err != nil {
			return err
		}
		return s.users.UpdateProfile(txCtx, user.ID, bson.M{
			"hand":             hand,
			"last_played_date": now,
		})
	})
	if err != nil {
		return nil, err
	}

	updated := *user
	updated.Hand = hand
	updated.LastPlayedDate = &now

	return &PlayResult{
		FeedItem: item,
		Story:    story,
		User:     updated,
	}, nil
}

// inTransaction wraps fn in a Mongo multi-document transaction so the
// feed, story and profile writes land together or not at all.
func (s *PlayService) inTransaction(ctx context.Context, fn func(context.Context) error) error {
	if s.db == nil {
		return fn(ctx)
	}

	session, err := s.db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	return err
}
