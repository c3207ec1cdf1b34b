package services

import (
	"context"

	"github.com/prospectr-app/prospectr/internal/core/domain"
)

// SyncSvc drives the reconciliation pipeline. Each method corresponds to one
// scheduled job pass; failures inside a pass are logged and held, never
// retried within the same run.
type SyncSvc interface {
	// SyncAccounts pulls enrichment targets (and delta targets) from the CRM
	// and upserts them by sfid.
	SyncAccounts(ctx context.Context) error

	// CollectContacts pulls CRM and org-search contacts for every account
	// with a prospecting rep and upserts them by (account, name).
	CollectContacts(ctx context.Context) error

	// QualifyContacts rates and prioritizes every contact by title keywords.
	QualifyContacts(ctx context.Context) error

	// Upload pushes queued records to the CRM and deletes rows on success.
	Upload(ctx context.Context) error
}

// ErrorLogSvc exposes stored external-call failures.
type ErrorLogSvc interface {
	ListErrorLogs(ctx context.Context, limit int, offset int) ([]domain.ErrorLog, error)
}
