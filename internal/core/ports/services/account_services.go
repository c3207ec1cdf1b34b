package services

import (
	"context"

	"github.com/prospectr-app/prospectr/internal/core/domain"
	"github.com/prospectr-app/prospectr/internal/dto"
)

// AccountReaderSvc defines read operations for account data.
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its internal ID.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves accounts matching the exact-match filter set.
	ListAccounts(ctx context.Context, filters map[string]string, limit int, offset int) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data.
type AccountWriterSvc interface {
	// CreateAccount persists a new account work item.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount applies the explicit patch structure to an account.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes an account and its contacts.
	DeleteAccount(ctx context.Context, accountID string) error

	// MarkAccount flips the account's status, or the cleaned/enriched flag
	// when mark is "cleaned"/"enriched".
	MarkAccount(ctx context.Context, accountID string, mark string) (*domain.Account, error)

	// QueueContacts sets every contact under the account to upload status.
	QueueContacts(ctx context.Context, accountID string) error

	// CancelEnrichment pushes completion to the CRM and removes the account
	// from the local queue.
	CancelEnrichment(ctx context.Context, accountID string) error
}

// AccountEnricherSvc defines enrichment-side operations on accounts.
type AccountEnricherSvc interface {
	// GetHierarchy fetches the live org chart for the account and stores it.
	GetHierarchy(ctx context.Context, accountID string) (string, error)
}

// AccountSvcFacade combines all account-related service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountEnricherSvc
}
