package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/lovedeck/lovedeck-services/internal/decksvc/deck"
	"github.com/lovedeck/lovedeck-services/internal/decksvc/flavor"
	"github.com/lovedeck/lovedeck-services/internal/decksvc/models"
)

type fakeProfileWriter struct {
	updates []bson.M
	err     error
}

func (f *fakeProfileWriter) UpdateProfile(_ context.Context, _ string, fields bson.M) error {
	if f.err != nil {
		return f.err
	}
	f.updates = append(f.updates, fields)
	return nil
}

type fakeFeed struct {
	items []models.FeedItem
	err   error
}

func (f *fakeFeed) Append(_ context.Context, item models.FeedItem) error {
	if f.err != nil {
		return f.err
	}
	f.items = append(f.items, item)
	return nil
}

type fakeStories struct {
	byUser map[string]models.Story
}

func (f *fakeStories) Upsert(_ context.Context, story models.Story) error {
	if f.byUser == nil {
		f.byUser = map[string]models.Story{}
	}
	f.byUser[story.UserID] = story
	return nil
}

type fakeFlavor struct {
	text string
	fail bool
}

func (f *fakeFlavor) CardFlavor(_ context.Context, _ models.Card, user models.User) string {
	if f.fail {
		return flavor.Fallback(user)
	}
	return f.text
}

func testHand() []models.Card {
	return []models.Card{
		{ID: "c01", Title: "Breakfast in Bed", Rarity: models.RarityCommon},
		{ID: "c06", Title: "Twenty-Minute Massage", Rarity: models.RarityRare},
		{ID: "c15", Title: "Weekend Getaway Draft", Rarity: models.RarityLegendary},
	}
}

func testPlayer() *models.User {
	return &models.User{
		ID:          "u1",
		Name:        "Ana",
		PartnerName: "Leo",
		CoupleCode:  "X4K9PZ",
		Hand:        testHand(),
	}
}

func newTestPlayService(users *fakeProfileWriter, feed *fakeFeed, stories *fakeStories, gen TextGenerator, now time.Time) *PlayService {
	s := NewPlayService(nil, users, feed, stories, gen)
	s.now = func() time.Time { return now }
	return s
}

func TestPlay(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)

	users := &fakeProfileWriter{}
	feed := &fakeFeed{}
	stories := &fakeStories{}
	s := newTestPlayService(users, feed, stories, &fakeFlavor{text: "Ana strikes!"}, now)

	user := testPlayer()
	res, err := s.Play(context.Background(), user, "c06")
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	if len(res.User.Hand) != len(testHand())-1 {
		t.Errorf("hand size = %d, want %d", len(res.User.Hand), len(testHand())-1)
	}
	for _, c := range res.User.Hand {
		if c.ID == "c06" {
			t.Error("played card still in hand")
		}
	}

	if !deck.PlayedToday(res.User.LastPlayedDate, now) {
		t.Error("PlayedToday() = false after a successful play")
	}

	if got := res.Story.ExpiresAt; !got.Equal(now.Add(24 * time.Hour)) {
		t.Errorf("story expiry = %v, want exactly play time + 24h", got)
	}

	if res.FeedItem.Card.FlavorText != "Ana strikes!" {
		t.Errorf("flavor text = %q", res.FeedItem.Card.FlavorText)
	}
	if res.FeedItem.Likes != 0 || res.FeedItem.Comments != 0 {
		t.Error("new feed item must start with zero social counters")
	}
	if res.FeedItem.Card.PlayedBy != user.ID {
		t.Errorf("played by = %q, want %q", res.FeedItem.Card.PlayedBy, user.ID)
	}

	if len(feed.items) != 1 {
		t.Fatalf("feed appends = %d, want 1", len(feed.items))
	}
	if len(users.updates) != 1 {
		t.Fatalf("profile updates = %d, want 1", len(users.updates))
	}
	if _, ok := users.updates[0]["last_played_date"]; !ok {
		t.Error("profile update missing last_played_date")
	}
}

func TestPlayCardNotInHand(t *testing.T) {
	users := &fakeProfileWriter{}
	feed := &fakeFeed{}
	stories := &fakeStories{}
	s := newTestPlayService(users, feed, stories, &fakeFlavor{text: "x"}, time.Now())

	_, err := s.Play(context.Background(), testPlayer(), "c99")
	if !errors.Is(err, ErrCardNotInHand) {
		t.Fatalf("Play() error = %v, want ErrCardNotInHand", err)
	}
	if len(feed.items) != 0 || len(users.updates) != 0 || len(stories.byUser) != 0 {
		t.Error("rejected play must not write anything")
	}
}

func TestPlayGenerationFailureUsesFallback(t *testing.T) {
	users := &fakeProfileWriter{}
	feed := &fakeFeed{}
	stories := &fakeStories{}
	s := newTestPlayService(users, feed, stories, &fakeFlavor{fail: true}, time.Now())

	user := testPlayer()
	res, err := s.Play(context.Background(), user, "c01")
	if err != nil {
		t.Fatalf("Play() error = %v, generation failure must not block the play", err)
	}

	want := flavor.Fallback(*user)
	if res.FeedItem.Card.FlavorText != want {
		t.Errorf("flavor text = %q, want fallback %q", res.FeedItem.Card.FlavorText, want)
	}
}

func TestPlayReplacesPriorStory(t *testing.T) {
	day1 := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	day2 := day1.Add(26 * time.Hour)

	users := &fakeProfileWriter{}
	feed := &fakeFeed{}
	stories := &fakeStories{}

	user := testPlayer()

	s := newTestPlayService(users, feed, stories, &fakeFlavor{text: "x"}, day1)
	res1, err := s.Play(context.Background(), user, "c01")
	if err != nil {
		t.Fatalf("first Play() error = %v", err)
	}

	s.now = func() time.Time { return day2 }
	res2, err := s.Play(context.Background(), &res1.User, "c06")
	if err != nil {
		t.Fatalf("second Play() error = %v", err)
	}

	if len(stories.byUser) != 1 {
		t.Fatalf("stories for user = %d, want exactly 1", len(stories.byUser))
	}
	got := stories.byUser[user.ID]
	if got.ID != res2.Story.ID {
		t.Error("store kept the older story instead of the latest one")
	}
	if got.ActiveCard.ID != "c06" {
		t.Errorf("active card = %s, want c06", got.ActiveCard.ID)
	}
}

func TestPlayFeedWriteFailureAborts(t *testing.T) {
	users := &fakeProfileWriter{}
	feed := &fakeFeed{err: errors.New("connection reset")}
	stories := &fakeStories{}
	s := newTestPlayService(users, feed, stories, &fakeFlavor{text: "x"}, time.Now())

	_, err := s.Play(context.Background(), testPlayer(), "c01")
	if err == nil {
		t.Fatal("Play() error = nil, want feed write failure surfaced")
	}
	if len(users.updates) != 0 {
		t.Error("profile must not be mutated when the batch fails")
	}
}
