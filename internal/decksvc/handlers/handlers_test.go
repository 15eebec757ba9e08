package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/lovedeck/lovedeck-services/internal/comm"
	"github.com/lovedeck/lovedeck-services/internal/decksvc/models"
	"github.com/lovedeck/lovedeck-services/internal/decksvc/service"
)

type fakeProfileStore struct {
	profiles map[string]models.User
	getErr   error
}

func (f *fakeProfileStore) CreateProfile(_ context.Context, user models.User) error {
	f.profiles[user.ID] = user
	return nil
}

func (f *fakeProfileStore) GetByID(_ context.Context, id string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.profiles[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeProfileStore) UpdateProfile(_ context.Context, id string, fields bson.M) error {
	u := f.profiles[id]
	if hand, ok := fields["hand"].([]models.Card); ok {
		u.Hand = hand
	}
	if played, ok := fields["last_played_date"].(time.Time); ok {
		u.LastPlayedDate = &played
	}
	f.profiles[id] = u
	return nil
}

type fakeFeedStore struct {
	items []models.FeedItem
}

func (f *fakeFeedStore) Append(_ context.Context, item models.FeedItem) error {
	f.items = append(f.items, item)
	return nil
}

type fakeStoryStore struct {
	byUser map[string]models.Story
}

func (f *fakeStoryStore) Upsert(_ context.Context, story models.Story) error {
	if f.byUser == nil {
		f.byUser = map[string]models.Story{}
	}
	f.byUser[story.UserID] = story
	return nil
}

type fakeFlavorGen struct{}

func (fakeFlavorGen) CardFlavor(_ context.Context, _ models.Card, user models.User) string {
	return user.Name + " played a card!"
}

type fakePublisher struct {
	events []comm.PlayEvent
}

func (f *fakePublisher) PublishPlayEvent(ev comm.PlayEvent) {
	f.events = append(f.events, ev)
}

type playFixture struct {
	handler *Handler
	router  *chi.Mux
	token   string
	users   *fakeProfileStore
	feed    *fakeFeedStore
	stories *fakeStoryStore
	pub     *fakePublisher
}

func setupPlayFixture(t *testing.T) *playFixture {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	users := &fakeProfileStore{profiles: map[string]models.User{
		"acc-1": {
			ID:          "acc-1",
			Name:        "Ana",
			PartnerName: "Leo",
			CoupleCode:  "X4K9PZ",
			Hand: []models.Card{
				{ID: "c01", Title: "Breakfast in Bed", Rarity: models.RarityCommon},
				{ID: "c06", Title: "Twenty-Minute Massage", Rarity: models.RarityRare},
			},
		},
	}}
	feed := &fakeFeedStore{}
	stories := &fakeStoryStore{}
	pub := &fakePublisher{}

	userService := service.NewUserService(users)
	playService := service.NewPlayService(nil, users, feed, stories, fakeFlavorGen{})

	h := NewHandler(nil, userService, playService, nil, pub)
	h.InitAuth()

	r := chi.NewRouter()
	h.SetRoutes(r)

	token, err := h.issueToken("acc-1")
	if err != nil {
		t.Fatalf("issueToken() error = %v", err)
	}

	return &playFixture{handler: h, router: r, token: token, users: users, feed: feed, stories: stories, pub: pub}
}

func (f *playFixture) play(t *testing.T, cardID string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"card_id": cardID})
	req := httptest.NewRequest(http.MethodPost, "/v1/plays", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+f.token)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestPlayCardHandler(t *testing.T) {
	f := setupPlayFixture(t)

	rec := f.play(t, "c01")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	if len(f.feed.items) != 1 {
		t.Fatalf("feed items = %d, want 1", len(f.feed.items))
	}
	if len(f.stories.byUser) != 1 {
		t.Fatalf("stories = %d, want 1", len(f.stories.byUser))
	}
	if len(f.pub.events) != 1 {
		t.Fatalf("published events = %d, want 1", len(f.pub.events))
	}
	if f.pub.events[0].CoupleCode != "X4K9PZ" {
		t.Errorf("event couple code = %q", f.pub.events[0].CoupleCode)
	}

	if got := len(f.users.profiles["acc-1"].Hand); got != 1 {
		t.Errorf("hand size after play = %d, want 1", got)
	}
}

func TestPlayCardHandlerDailyLimit(t *testing.T) {
	f := setupPlayFixture(t)

	if rec := f.play(t, "c01"); rec.Code != http.StatusOK {
		t.Fatalf("first play status = %d, want 200", rec.Code)
	}

	rec := f.play(t, "c06")
	if rec.Code != http.StatusConflict {
		t.Fatalf("second play status = %d, want 409", rec.Code)
	}

	// the gate must prevent any second write
	if len(f.feed.items) != 1 {
		t.Errorf("feed items = %d, want 1 after rejected play", len(f.feed.items))
	}
	if len(f.stories.byUser) != 1 {
		t.Errorf("stories = %d, want 1 after rejected play", len(f.stories.byUser))
	}
	if len(f.pub.events) != 1 {
		t.Errorf("published events = %d, want 1 after rejected play", len(f.pub.events))
	}
}

func TestPlayCardHandlerCardNotInHand(t *testing.T) {
	f := setupPlayFixture(t)

	rec := f.play(t, "c99")
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	if len(f.feed.items) != 0 {
		t.Error("rejected play must not reach the feed")
	}
}

func TestPlayCardHandlerRequiresToken(t *testing.T) {
	f := setupPlayFixture(t)

	body, _ := json.Marshal(map[string]string{"card_id": "c01"})
	req := httptest.NewRequest(http.MethodPost, "/v1/plays", bytes.NewReader(body))

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func (f *playFixture) stats(t *testing.T) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/v1/profiles/me/stats", nil)
	req.Header.Set("Authorization", "Bearer "+f.token)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestStatsHandlerStoreError(t *testing.T) {
	f := setupPlayFixture(t)
	f.users.getErr = errors.New("connection reset")

	rec := f.stats(t)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500, body: %s", rec.Code, rec.Body.String())
	}
}

func TestStatsHandlerProfileProvisioning(t *testing.T) {
	f := setupPlayFixture(t)
	delete(f.users.profiles, "acc-1")

	rec := f.stats(t)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404, body: %s", rec.Code, rec.Body.String())
	}
}

func TestReshuffleHandler(t *testing.T) {
	f := setupPlayFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/deck/reshuffle", nil)
	req.Header.Set("Authorization", "Bearer "+f.token)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var rsp struct {
		Data models.User `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &rsp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(rsp.Data.Hand) != 5 {
		t.Errorf("reshuffled hand size = %d, want 5", len(rsp.Data.Hand))
	}
}
