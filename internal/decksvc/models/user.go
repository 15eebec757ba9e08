package models

import (
	"time"
)

// User represents a couple member's profile document in the users collection.
type User struct {
	ID             string     `json:"user_id" bson:"_id"`
	Name           string     `json:"name" bson:"name"`
	Email          string     `json:"email,omitempty" bson:"email,omitempty"`
	Gender         string     `json:"gender,omitempty" bson:"gender,omitempty"`
	Avatar         string     `json:"avatar,omitempty" bson:"avatar,omitempty"`
	PartnerName    string     `json:"partner_name,omitempty" bson:"partner_name,omitempty"`
	PartnerGender  string     `json:"partner_gender,omitempty" bson:"partner_gender,omitempty"`
	CoupleCode     string     `json:"couple_code,omitempty" bson:"couple_code,omitempty"`
	LastPlayedDate *time.Time `json:"last_played_date,omitempty" bson:"last_played_date,omitempty"`
	Hand           []Card     `json:"hand" bson:"hand"`
	CreatedAt      time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" bson:"updated_at"`
}
