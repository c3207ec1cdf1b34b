package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prospectr-app/prospectr/internal/apperrors"
	"github.com/prospectr-app/prospectr/internal/core/domain"
	portsclients "github.com/prospectr-app/prospectr/internal/core/ports/clients"
	portsrepo "github.com/prospectr-app/prospectr/internal/core/ports/repositories"
	portssvc "github.com/prospectr-app/prospectr/internal/core/ports/services"
	"github.com/prospectr-app/prospectr/internal/dto"
)

// orgChartDepth is how many levels of the provider org chart GetHierarchy
// requests.
const orgChartDepth = 7

// accountService implements portssvc.AccountSvcFacade.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
	contactRepo portsrepo.ContactRepository
	crm         portsclients.CRMClient
	orgSearch   portsclients.OrgSearchClient
}

// NewAccountService creates the account service.
func NewAccountService(accountRepo portsrepo.AccountRepository, contactRepo portsrepo.ContactRepository, crm portsclients.CRMClient, orgSearch portsclients.OrgSearchClient) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
		contactRepo: contactRepo,
		crm:         crm,
		orgSearch:   orgSearch,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, filters map[string]string, limit int, offset int) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, filters, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	now := time.Now()

	status := domain.AccountStatus(req.Status)
	if status == "" {
		status = domain.AccountStatusEnrich
	}

	account := domain.Account{
		AccountID: uuid.NewString(),
		SFID:      req.SFID,
		DOID:      req.DOID,
		Prep:      req.Prep,
		Status:    status,
		Name:      req.Name,
		Domain:    req.Domain,
		Phone:     req.Phone,
		Summary:   req.Summary,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to create account", slog.String("sfid", req.SFID))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return &account, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account for update: %w", err)
	}

	if req.DOID != nil {
		account.DOID = *req.DOID
	}
	if req.Prep != nil {
		account.Prep = *req.Prep
	}
	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Domain != nil {
		account.Domain = *req.Domain
	}
	if req.Phone != nil {
		account.Phone = *req.Phone
	}
	if req.Summary != nil {
		account.Summary = *req.Summary
	}
	account.LastUpdatedAt = time.Now()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID string) error {
	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

// accountMarks maps the mark path parameter to the mutation it performs.
var accountStatusMarks = map[string]domain.AccountStatus{
	"enrich":    domain.AccountStatusEnrich,
	"queued":    domain.AccountStatusQueued,
	"upload":    domain.AccountStatusUpload,
	"done":      domain.AccountStatusDone,
	"hold":      domain.AccountStatusHold,
	"delta-new": domain.AccountStatusDeltaNew,
}

func (s *accountService) MarkAccount(ctx context.Context, accountID string, mark string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account for mark: %w", err)
	}

	switch mark {
	case "cleaned":
		account.Cleaned = true
	case "enriched":
		account.Enriched = true
	default:
		status, ok := accountStatusMarks[mark]
		if !ok {
			return nil, fmt.Errorf("unknown account mark %q: %w", mark, apperrors.ErrValidation)
		}
		account.Status = status
	}
	account.LastUpdatedAt = time.Now()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return nil, fmt.Errorf("failed to mark account: %w", err)
	}
	return account, nil
}

// QueueContacts flips the whole account and every contact under it to upload
// status in one call, the reviewer's "ship it" action.
func (s *accountService) QueueContacts(ctx context.Context, accountID string) error {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to find account for queueing: %w", err)
	}

	contacts, err := s.contactRepo.ListContactsByAccount(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to list contacts for queueing: %w", err)
	}

	now := time.Now()
	for i := range contacts {
		contacts[i].Status = domain.ContactStatusUpload
		contacts[i].LastUpdatedAt = now
		if err := s.contactRepo.UpdateContact(ctx, contacts[i]); err != nil {
			return fmt.Errorf("failed to queue contact %s: %w", contacts[i].ContactID, err)
		}
	}

	account.Status = domain.AccountStatusUpload
	account.LastUpdatedAt = now
	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return fmt.Errorf("failed to queue account: %w", err)
	}

	s.LogInfo(ctx, "Account queued for upload",
		slog.String("account_id", accountID),
		slog.Int("contacts", len(contacts)))
	return nil
}

// CancelEnrichment tells the CRM the request is complete without pushing any
// contacts, then drops the local work item.
func (s *accountService) CancelEnrichment(ctx context.Context, accountID string) error {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to find account for cancellation: %w", err)
	}

	if err := s.crm.CompleteAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to push cancellation to CRM", slog.String("sfid", account.SFID))
		return fmt.Errorf("failed to complete account in CRM: %w", apperrors.ErrExternal)
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		return fmt.Errorf("failed to remove cancelled account: %w", err)
	}

	s.LogInfo(ctx, "Enrichment cancelled", slog.String("account_id", accountID), slog.String("sfid", account.SFID))
	return nil
}

// GetHierarchy returns the stored org chart, fetching and caching it on first
// request. Accounts without a provider ID cannot have one.
func (s *accountService) GetHierarchy(ctx context.Context, accountID string) (string, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return "", fmt.Errorf("failed to find account for hierarchy: %w", err)
	}

	if account.Hierarchy != "" {
		return account.Hierarchy, nil
	}
	if account.DOID == "" {
		return "", fmt.Errorf("account has no org-search ID: %w", apperrors.ErrValidation)
	}

	hierarchy, err := s.orgSearch.OrgChart(ctx, account.DOID, orgChartDepth)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch org chart", slog.String("doid", account.DOID))
		return "", fmt.Errorf("failed to fetch org chart: %w", apperrors.ErrExternal)
	}

	account.Hierarchy = hierarchy
	account.LastUpdatedAt = time.Now()
	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return "", fmt.Errorf("failed to store org chart: %w", err)
	}
	return hierarchy, nil
}
