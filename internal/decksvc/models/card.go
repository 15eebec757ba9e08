package models

import "time"

// Rarity is the display tier of a card.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RaritySpecial   Rarity = "special"
)

// Rarities lists every tier in display order.
var Rarities = []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary, RaritySpecial}

// Card is a single prompt/challenge unit. Play metadata is only
// set on the copy attached to a feed item or story.
type Card struct {
	ID          string     `json:"id" bson:"id"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description" bson:"description"`
	Rarity      Rarity     `json:"rarity" bson:"rarity"`
	PlayedAt    *time.Time `json:"played_at,omitempty" bson:"played_at,omitempty"`
	PlayedBy    string     `json:"played_by,omitempty" bson:"played_by,omitempty"`
	FlavorText  string     `json:"flavor_text,omitempty" bson:"flavor_text,omitempty"`
}
