package deck

import (
	"math/rand"
	"time"

	"github.com/lovedeck/lovedeck-services/internal/decksvc/models"
)

// DealSize is how many cards a fresh hand holds.
const DealSize = 5

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const codeLength = 6

// Deal shuffles a copy of the catalog and returns the first size cards.
// A permutation prefix, so the hand never holds duplicate card ids.
// Reshuffle is the same call; the previous hand is simply replaced.
func Deal(catalog []models.Card, size int) []models.Card {
	if size > len(catalog) {
		size = len(catalog)
	}
	if size <= 0 {
		return []models.Card{}
	}

	shuffled := make([]models.Card, len(catalog))
	copy(shuffled, catalog)
	rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	return shuffled[:size]
}

// PlayedToday reports whether lastPlayed falls on the same calendar day
// as now, in now's location. The daily limit resets at local midnight,
// not on a rolling 24h window.
func PlayedToday(lastPlayed *time.Time, now time.Time) bool {
	if lastPlayed == nil {
		return false
	}
	y1, m1, d1 := lastPlayed.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Discard removes the card with the given id from the hand. The second
// return is false when the card is not in the hand.
func Discard(hand []models.Card, cardID string) ([]models.Card, bool) {
	out := make([]models.Card, 0, len(hand))
	found := false
	for _, c := range hand {
		if c.ID == cardID {
			found = true
			continue
		}
		out = append(out, c)
	}
	return out, found
}

// NewCoupleCode generates the 6 character pairing code shown at profile
// creation. Generated once, immutable afterwards. Collisions are not
// checked against existing codes.
func NewCoupleCode() string {
	code := make([]byte, codeLength)
	for i := range code {
		code[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(code)
}
