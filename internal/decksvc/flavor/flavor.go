package flavor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/lovedeck/lovedeck-services/internal/decksvc/models"
)

// Config configures the Gemini generateContent endpoint and HTTP behavior.
type Config struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

// Generator decorates play events with generated announcement text.
// Generation is decorative: every failure path degrades to a deterministic
// fallback string, never to an error.
type Generator struct {
	cfg Config
}

// NewGenerator builds a flavor text generator.
func NewGenerator(cfg Config) *Generator {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = "gemini-2.0-flash"
	}
	return &Generator{cfg: cfg}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// CardFlavor generates the announcement text for a played card.
func (g *Generator) CardFlavor(ctx context.Context, card models.Card, user models.User) string {
	prompt := buildPrompt(card, user)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		log.Errorf("flavor: marshal request: %v", err)
		return Fallback(user)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		strings.TrimRight(g.cfg.BaseURL, "/"), g.cfg.Model, g.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		log.Errorf("flavor: build request: %v", err)
		return Fallback(user)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.cfg.HTTPClient.Do(req)
	if err != nil {
		log.Errorf("flavor: generate call failed: %v", err)
		return Fallback(user)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Errorf("flavor: generate returned %d: %s", resp.StatusCode, string(raw))
		return Fallback(user)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Errorf("flavor: decode response: %v", err)
		return Fallback(user)
	}

	text := extractText(out)
	if text == "" {
		return Fallback(user)
	}
	return text
}

func buildPrompt(card models.Card, user models.User) string {
	userGenderInfo := ""
	if user.Gender != "" {
		userGenderInfo = fmt.Sprintf(" (gender: %s)", user.Gender)
	}
	partnerGenderInfo := ""
	if user.PartnerGender != "" {
		partnerGenderInfo = fmt.Sprintf(" (gender: %s)", user.PartnerGender)
	}

	return fmt.Sprintf(`Act as the "Game Master" of a couples app called LoveDeck.

The card played is: %q
Description: %q
Player (caster): %s%s
Receiver (partner): %s%s

Write a short announcement (two sentences at most), witty and playful, declaring that this card has been played.
Adapt tone and pronouns to the genders given, if any.
It should read like an RPG notification or a sports commentator's call.
End with a very brief suggestion for how the receiver can react.`,
		card.Title, card.Description,
		user.Name, userGenderInfo,
		user.PartnerName, partnerGenderInfo)
}

func extractText(out generateResponse) string {
	for _, c := range out.Candidates {
		for _, p := range c.Content.Parts {
			if t := strings.TrimSpace(p.Text); t != "" {
				return t
			}
		}
	}
	return ""
}

// Fallback is the deterministic announcement used whenever generation
// fails. Always names both partners.
func Fallback(user models.User) string {
	return fmt.Sprintf("%s just played a legendary card! %s, it is your turn to shine.",
		user.Name, user.PartnerName)
}
