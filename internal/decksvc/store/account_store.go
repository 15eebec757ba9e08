package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/lovedeck/lovedeck-services/internal/decksvc/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrDuplicateEmail signals a registration attempt with an email that
// already has an account.
var ErrDuplicateEmail = errors.New("email already registered")

type AccountStore struct {
	db *pgxpool.Pool
}

func NewAccountStore(db *pgxpool.Pool) *AccountStore {
	return &AccountStore{db: db}
}

func (s *AccountStore) CreateAccount(ctx context.Context, account models.Account) (string, error) {
	var accountId string

	query := `
        INSERT INTO accounts (account_id, email, password_hash, status)
        VALUES ($1, $2, $3, $4)
        RETURNING account_id;
    `

	err := s.db.QueryRow(ctx, query, account.AccountID, account.Email, account.PasswordHash, account.Status).Scan(&accountId)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", ErrDuplicateEmail
		}
		return "", fmt.Errorf("could not create account: %w", err)
	}

	return accountId, nil
}

func (s *AccountStore) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	row := s.db.QueryRow(ctx, `
        SELECT account_id, email, password_hash, status, created_at, updated_at
        FROM accounts
        WHERE email = $1
    `, email)

	a := &models.Account{}
	err := row.Scan(
		&a.AccountID,
		&a.Email,
		&a.PasswordHash,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}

	return a, nil
}

func (s *AccountStore) GetByID(ctx context.Context, id string) (*models.Account, error) {
	row := s.db.QueryRow(ctx, `
        SELECT account_id, email, password_hash, status, created_at, updated_at
        FROM accounts
        WHERE account_id = $1
    `, id)

	a := &models.Account{}
	err := row.Scan(
		&a.AccountID,
		&a.Email,
		&a.PasswordHash,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account by id: %w", err)
	}

	return a, nil
}
