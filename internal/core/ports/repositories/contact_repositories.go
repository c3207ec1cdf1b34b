package repositories

import (
	"context"

	"github.com/prospectr-app/prospectr/internal/core/domain"
)

// ContactReader defines read operations for contact data.
type ContactReader interface {
	// FindContactByID retrieves a specific contact by its internal ID.
	FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error)

	// FindContactByAccountAndName retrieves the contact with the given name
	// under the account. This is the reconciler's upsert key.
	FindContactByAccountAndName(ctx context.Context, accountID string, name string) (*domain.Contact, error)

	// ListContacts retrieves contacts matching the exact-match filter set.
	ListContacts(ctx context.Context, filters map[string]string, limit int, offset int) ([]domain.Contact, error)

	// ListContactsByAccount retrieves every contact under an account.
	ListContactsByAccount(ctx context.Context, accountID string) ([]domain.Contact, error)

	// ListAllContacts retrieves every contact in the store. Used by the
	// qualification job.
	ListAllContacts(ctx context.Context) ([]domain.Contact, error)
}

// ContactWriter defines write operations for contact data.
type ContactWriter interface {
	// SaveContact persists a new contact.
	SaveContact(ctx context.Context, contact domain.Contact) error

	// UpdateContact updates an existing contact's fields.
	UpdateContact(ctx context.Context, contact domain.Contact) error

	// DeleteContact removes a contact.
	DeleteContact(ctx context.Context, contactID string) error
}

// ContactRepository combines all contact repository operations.
type ContactRepository interface {
	ContactReader
	ContactWriter
}
