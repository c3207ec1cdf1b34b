package clients

import (
	"context"

	"github.com/prospectr-app/prospectr/internal/core/domain"
)

// CRMClient talks to the system of record. Fetch methods return descriptor
// values without local IDs; the reconciler owns upsert semantics.
type CRMClient interface {
	// FetchTargets collects accounts where enrichment is requested and not
	// yet complete.
	FetchTargets(ctx context.Context) ([]domain.Account, error)

	// FetchDeltaTargets collects contact-less accounts in the delta segment.
	FetchDeltaTargets(ctx context.Context) ([]domain.Account, error)

	// FetchContacts collects the CRM's existing contacts for an account.
	FetchContacts(ctx context.Context, account domain.Account) ([]domain.Contact, error)

	// CreateContacts bulk-inserts new contacts under the account. A failure
	// fails the whole batch.
	CreateContacts(ctx context.Context, account domain.Account, contacts []domain.Contact) error

	// UpdateContacts bulk-updates existing contacts. A failure fails the
	// whole batch.
	UpdateContacts(ctx context.Context, account domain.Account, contacts []domain.Contact) error

	// CompleteAccount marks the enrichment request complete in the CRM.
	CompleteAccount(ctx context.Context, account domain.Account) error
}

// OrgSearchClient searches a third-party org database by company domain.
// Implementations obtain a short-lived session token at construction;
// expiry is not tracked.
type OrgSearchClient interface {
	// SearchContacts finds people at the account's company.
	SearchContacts(ctx context.Context, account domain.Account) ([]domain.Contact, error)

	// OrgChart returns the serialized org hierarchy for a provider company
	// ID, to the given depth.
	OrgChart(ctx context.Context, doid string, depth int) (string, error)
}

// EnrichResult carries the details an enrichment lookup can return.
type EnrichResult struct {
	Direct string
	Mobile string
	Email  string
}

// EnrichClient looks up phone numbers and email for a person by name and
// company.
type EnrichClient interface {
	Enrich(ctx context.Context, fullName, company string) (*EnrichResult, error)
}
