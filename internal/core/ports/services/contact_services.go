package services

import (
	"context"

	"github.com/prospectr-app/prospectr/internal/core/domain"
	"github.com/prospectr-app/prospectr/internal/dto"
)

// ContactReaderSvc defines read operations for contact data.
type ContactReaderSvc interface {
	// GetContactByID retrieves a specific contact by its internal ID.
	GetContactByID(ctx context.Context, contactID string) (*domain.Contact, error)

	// ListContacts retrieves contacts matching the exact-match filter set.
	ListContacts(ctx context.Context, filters map[string]string, limit int, offset int) ([]domain.Contact, error)
}

// ContactWriterSvc defines write operations for contact data.
type ContactWriterSvc interface {
	// CreateContact adds a contact under its owning account.
	CreateContact(ctx context.Context, req dto.CreateContactRequest) (*domain.Contact, error)

	// UpdateContact applies the explicit patch structure to a contact.
	UpdateContact(ctx context.Context, contactID string, req dto.UpdateContactRequest) (*domain.Contact, error)

	// DeleteContact removes a contact.
	DeleteContact(ctx context.Context, contactID string) error

	// MarkContact flips the contact's status, or the cleaned flag when mark
	// is "cleaned".
	MarkContact(ctx context.Context, contactID string, mark string) (*domain.Contact, error)

	// QueueContact sets the contact to upload status.
	QueueContact(ctx context.Context, contactID string) (*domain.Contact, error)
}

// ContactSvcFacade combines all contact-related service interfaces.
type ContactSvcFacade interface {
	ContactReaderSvc
	ContactWriterSvc
}
