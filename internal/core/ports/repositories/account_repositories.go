package repositories

import (
	"context"

	"github.com/prospectr-app/prospectr/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its internal ID.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountBySFID retrieves an account by its CRM record ID.
	FindAccountBySFID(ctx context.Context, sfid string) (*domain.Account, error)

	// ListAccounts retrieves accounts matching the exact-match filter set.
	// Unknown filter fields are rejected with ErrValidation.
	ListAccounts(ctx context.Context, filters map[string]string, limit int, offset int) ([]domain.Account, error)

	// ListAccountsByStatus retrieves all accounts with the given status.
	ListAccountsByStatus(ctx context.Context, status domain.AccountStatus) ([]domain.Account, error)

	// ListCompletedAccounts retrieves accounts with both cleanup flags set.
	ListCompletedAccounts(ctx context.Context) ([]domain.Account, error)

	// ListAccountsWithPrep retrieves accounts that have a prospecting rep
	// assigned (the contact-collection population).
	ListAccountsWithPrep(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's fields.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account; owned contacts cascade.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountRepository combines all account repository operations.
type AccountRepository interface {
	AccountReader
	AccountWriter
}
