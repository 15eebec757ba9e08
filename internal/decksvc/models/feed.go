package models

import "time"

// FeedItem is one play event in the shared feed collection. Append-only;
// only the social counters change after insert.
type FeedItem struct {
	ID          string    `json:"id" bson:"_id"`
	Card        Card      `json:"card" bson:"card"`
	UserID      string    `json:"user_id" bson:"user_id"`
	UserName    string    `json:"user_name" bson:"user_name"`
	UserAvatar  string    `json:"user_avatar,omitempty" bson:"user_avatar,omitempty"`
	Timestamp   time.Time `json:"timestamp" bson:"timestamp"`
	Likes       int       `json:"likes" bson:"likes"`
	Comments    int       `json:"comments" bson:"comments"`
	MemoryImage string    `json:"memory_image,omitempty" bson:"memory_image,omitempty"`
}

// Story is the ephemeral 24h view of a user's most recent play.
// One document per user, replaced on every new play.
type Story struct {
	ID         string    `json:"id" bson:"_id"`
	UserID     string    `json:"user_id" bson:"user_id"`
	UserName   string    `json:"user_name" bson:"user_name"`
	UserAvatar string    `json:"user_avatar,omitempty" bson:"user_avatar,omitempty"`
	ActiveCard Card      `json:"active_card" bson:"active_card"`
	ExpiresAt  time.Time `json:"expires_at" bson:"expires_at"`
}
