package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/lovedeck/lovedeck-services/internal/decksvc/models"
	"github.com/lovedeck/lovedeck-services/internal/decksvc/store"
)

// ErrInvalidCredentials covers both unknown email and wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService struct represents the identity service layer
type AuthService struct {
	accountStore *store.AccountStore
}

// NewAuthService creates a new AuthService instance
func NewAuthService(accountStore *store.AccountStore) *AuthService {
	return &AuthService{
		accountStore: accountStore,
	}
}

// Register creates an account for the email. When the email is already
// registered it falls back to a sign-in attempt with the same credentials,
// so a returning user tapping "register" still gets in.
func (s *AuthService) Register(ctx context.Context, email, password string) (*models.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := models.Account{
		AccountID:    uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Status:       "ACTIVE",
	}

	_, err = s.accountStore.CreateAccount(ctx, account)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			log.Infof("register for existing email, attempting sign-in instead")
			return s.Login(ctx, email, password)
		}
		return nil, err
	}

	return &account, nil
}

// Login authenticates an email/password pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Account, error) {
	account, err := s.accountStore.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}
