package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/lovedeck/lovedeck-services/internal/decksvc/catalog"
	"github.com/lovedeck/lovedeck-services/internal/decksvc/deck"
	"github.com/lovedeck/lovedeck-services/internal/decksvc/models"
)

var (
	ErrMissingName        = errors.New("name is required")
	ErrMissingPartnerName = errors.New("partner name is required")
	ErrMissingCode        = errors.New("couple code is required to join")
	ErrProfileNotFound    = errors.New("profile not found")
)

// ProfileInput carries the onboarding form. Join=true is the second
// partner's path: they type the code the first partner generated.
type ProfileInput struct {
	Name          string
	Email         string
	Gender        string
	PartnerName   string
	PartnerGender string
	Join          bool
	Code          string
}

// ProfileStore is the slice of the user store the profile flows need.
type ProfileStore interface {
	CreateProfile(ctx context.Context, user models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, fields bson.M) error
}

// UserService struct represents the profile service layer
type UserService struct {
	userStore ProfileStore
}

// NewUserService creates a new UserService instance
func NewUserService(userStore ProfileStore) *UserService {
	return &UserService{
		userStore: userStore,
	}
}

// CreateProfile finishes onboarding: generates or accepts the couple
// code, deals the first hand and persists the profile. A joined code is
// stored as typed; no check that a matching partner profile exists.
func (s *UserService) CreateProfile(ctx context.Context, accountID string, in ProfileInput) (*models.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, ErrMissingName
	}
	in.PartnerName = strings.TrimSpace(in.PartnerName)
	if in.PartnerName == "" {
		return nil, ErrMissingPartnerName
	}

	code := ""
	if in.Join {
		code = strings.ToUpper(strings.TrimSpace(in.Code))
		if code == "" {
			return nil, ErrMissingCode
		}
	} else {
		code = deck.NewCoupleCode()
	}

	now := time.Now()
	user := models.User{
		ID:            accountID,
		Name:          in.Name,
		Email:         in.Email,
		Gender:        in.Gender,
		Avatar:        avatarURL(in.Name),
		PartnerName:   in.PartnerName,
		PartnerGender: in.PartnerGender,
		CoupleCode:    code,
		Hand:          deck.Deal(catalog.Cards, deck.DealSize),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.userStore.CreateProfile(ctx, user); err != nil {
		return nil, err
	}

	return &user, nil
}

// GetProfile returns nil, nil for a profile that does not exist yet.
func (s *UserService) GetProfile(ctx context.Context, id string) (*models.User, error) {
	return s.userStore.GetByID(ctx, id)
}

// Rename updates the display name and regenerates the avatar from it.
func (s *UserService) Rename(ctx context.Context, id, name string) (*models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingName
	}

	fields := bson.M{
		"name":   name,
		"avatar": avatarURL(name),
	}
	if err := s.userStore.UpdateProfile(ctx, id, fields); err != nil {
		return nil, err
	}

	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrProfileNotFound
	}
	return user, nil
}

// Reshuffle deals a fresh hand, discarding whatever is left of the old one.
func (s *UserService) Reshuffle(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrProfileNotFound
	}

	hand := deck.Deal(catalog.Cards, deck.DealSize)
	if err := s.userStore.UpdateProfile(ctx, id, bson.M{"hand": hand}); err != nil {
		return nil, err
	}

	user.Hand = hand
	return user, nil
}

// avatarURL derives the avatar deterministically from the display name,
// so a rename regenerates it.
func avatarURL(name string) string {
	return fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", url.QueryEscape(name))
}
