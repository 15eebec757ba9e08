package flavor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lovedeck/lovedeck-services/internal/decksvc/models"
)

var testCard = models.Card{
	ID:          "c11",
	Title:       "Mystery Date",
	Description: "Plan a full date and reveal nothing until you are both out the door.",
	Rarity:      models.RarityEpic,
}

var testUser = models.User{
	ID:          "u1",
	Name:        "Ana",
	Gender:      "female",
	PartnerName: "Leo",
}

func TestCardFlavorSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if !strings.Contains(r.URL.Path, "generateContent") {
			t.Errorf("path = %s, want generateContent endpoint", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Ana has cast Mystery Date! Leo, clear your evening."}]}}]}`))
	}))
	defer srv.Close()

	g := NewGenerator(Config{BaseURL: srv.URL, APIKey: "test", HTTPClient: srv.Client()})

	got := g.CardFlavor(context.Background(), testCard, testUser)
	want := "Ana has cast Mystery Date! Leo, clear your evening."
	if got != want {
		t.Errorf("CardFlavor() = %q, want %q", got, want)
	}
}

func TestCardFlavorFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "quota exceeded", http.StatusTooManyRequests)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
		},
		{
			name: "empty candidates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"candidates":[]}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			g := NewGenerator(Config{BaseURL: srv.URL, APIKey: "test", HTTPClient: srv.Client()})

			got := g.CardFlavor(context.Background(), testCard, testUser)
			if got != Fallback(testUser) {
				t.Errorf("CardFlavor() = %q, want fallback", got)
			}
			if !strings.Contains(got, testUser.Name) || !strings.Contains(got, testUser.PartnerName) {
				t.Errorf("fallback %q must name both partners", got)
			}
		})
	}
}

func TestCardFlavorUnreachableHost(t *testing.T) {
	g := NewGenerator(Config{BaseURL: "http://127.0.0.1:1", APIKey: "test"})

	got := g.CardFlavor(context.Background(), testCard, testUser)
	if got != Fallback(testUser) {
		t.Errorf("CardFlavor() = %q, want fallback", got)
	}
}

func TestBuildPromptEmbedsContext(t *testing.T) {
	prompt := buildPrompt(testCard, testUser)

	for _, want := range []string{testCard.Title, testCard.Description, testUser.Name, testUser.PartnerName, testUser.Gender} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
