package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prospectr-app/prospectr/internal/core/domain"
	portsclients "github.com/prospectr-app/prospectr/internal/core/ports/clients"
	portsrepo "github.com/prospectr-app/prospectr/internal/core/ports/repositories"
	portssvc "github.com/prospectr-app/prospectr/internal/core/ports/services"
)

// updatedDateLayout is the granularity of the org-search pull throttle. One
// pull per account per calendar day.
const updatedDateLayout = "2006-01-02"

// syncService implements portssvc.SyncSvc, the four recurring pipeline
// passes. Each pass works account by account; a failed external call parks
// the affected rows on hold and records the error, then the pass moves on.
type syncService struct {
	BaseService
	accountRepo  portsrepo.AccountRepository
	contactRepo  portsrepo.ContactRepository
	errorLogRepo portsrepo.ErrorLogRepository
	crm          portsclients.CRMClient
	orgSearch    portsclients.OrgSearchClient
	enrich       portsclients.EnrichClient
	now          func() time.Time
}

// NewSyncService creates the pipeline service.
func NewSyncService(repos *portsrepo.RepositoryProvider, crm portsclients.CRMClient, orgSearch portsclients.OrgSearchClient, enrich portsclients.EnrichClient) portssvc.SyncSvc {
	return &syncService{
		accountRepo:  repos.AccountRepo,
		contactRepo:  repos.ContactRepo,
		errorLogRepo: repos.ErrorLogRepo,
		crm:          crm,
		orgSearch:    orgSearch,
		enrich:       enrich,
		now:          time.Now,
	}
}

var _ portssvc.SyncSvc = (*syncService)(nil)

// recordError appends a row to the error log for later human inspection. The
// log itself failing is only logged; it never aborts a pass.
func (s *syncService) recordError(ctx context.Context, err error) {
	entry := domain.ErrorLog{
		ErrorLogID: uuid.NewString(),
		Timestamp:  s.now(),
		Traceback:  err.Error(),
	}
	if saveErr := s.errorLogRepo.SaveErrorLog(ctx, entry); saveErr != nil {
		s.LogError(ctx, saveErr, "Failed to record error log entry")
	}
}

// SyncAccounts pulls enrichment targets and delta targets from the CRM and
// upserts them by sfid. Existing rows keep their local status so a pull never
// knocks an account back in the pipeline.
func (s *syncService) SyncAccounts(ctx context.Context) error {
	targets, err := s.crm.FetchTargets(ctx)
	if err != nil {
		s.recordError(ctx, err)
		return fmt.Errorf("failed to fetch enrichment targets: %w", err)
	}

	deltas, err := s.crm.FetchDeltaTargets(ctx)
	if err != nil {
		// Delta collection is best effort; the main targets still land.
		s.LogWarn(ctx, "Delta target fetch failed", slog.String("error", err.Error()))
		s.recordError(ctx, err)
		deltas = nil
	}

	synced := 0
	for _, incoming := range append(targets, deltas...) {
		if incoming.Name == "" || incoming.Domain == "" {
			continue
		}
		if err := s.upsertAccount(ctx, incoming); err != nil {
			s.LogError(ctx, err, "Failed to upsert account", slog.String("sfid", incoming.SFID))
			continue
		}
		synced++
	}

	s.LogInfo(ctx, "Account sync complete", slog.Int("synced", synced))
	return nil
}

func (s *syncService) upsertAccount(ctx context.Context, incoming domain.Account) error {
	existing, err := s.accountRepo.FindAccountBySFID(ctx, incoming.SFID)
	if err == nil {
		// Refresh CRM-owned fields, keep local pipeline state.
		existing.DOID = incoming.DOID
		existing.Prep = incoming.Prep
		existing.Name = incoming.Name
		existing.Domain = incoming.Domain
		existing.Phone = incoming.Phone
		if incoming.Summary != "" {
			existing.Summary = incoming.Summary
		}
		existing.LastUpdatedAt = s.now()
		return s.accountRepo.UpdateAccount(ctx, *existing)
	}

	now := s.now()
	incoming.AccountID = uuid.NewString()
	incoming.CreatedAt = now
	incoming.LastUpdatedAt = now
	return s.accountRepo.SaveAccount(ctx, incoming)
}

// CollectContacts pulls CRM contacts for every account with a prospecting
// rep, plus org-search results at most once per day per account, and upserts
// them by (account, name). Existing rows keep their status and ctype.
func (s *syncService) CollectContacts(ctx context.Context) error {
	accounts, err := s.accountRepo.ListAccountsWithPrep(ctx)
	if err != nil {
		return fmt.Errorf("failed to list accounts for collection: %w", err)
	}

	for i := range accounts {
		account := accounts[i]

		crmContacts, err := s.crm.FetchContacts(ctx, account)
		if err != nil {
			s.LogError(ctx, err, "CRM contact fetch failed", slog.String("sfid", account.SFID))
			s.recordError(ctx, err)
			crmContacts = nil
		}

		var orgContacts []domain.Contact
		today := s.now().Format(updatedDateLayout)
		if account.Updated != today {
			orgContacts, err = s.orgSearch.SearchContacts(ctx, account)
			if err != nil {
				s.LogError(ctx, err, "Org search failed", slog.String("domain", account.Domain))
				s.recordError(ctx, err)
				orgContacts = nil
			}

			account.Updated = today
			account.LastUpdatedAt = s.now()
			if err := s.accountRepo.UpdateAccount(ctx, account); err != nil {
				s.LogError(ctx, err, "Failed to stamp org-search pull", slog.String("account_id", account.AccountID))
			}
		}

		for _, incoming := range append(crmContacts, orgContacts...) {
			if incoming.Name == "" {
				continue
			}
			if err := s.upsertContact(ctx, account, incoming); err != nil {
				s.LogError(ctx, err, "Failed to upsert contact",
					slog.String("account_id", account.AccountID),
					slog.String("name", incoming.Name))
			}
		}
	}

	s.LogInfo(ctx, "Contact collection complete", slog.Int("accounts", len(accounts)))
	return nil
}

func (s *syncService) upsertContact(ctx context.Context, account domain.Account, incoming domain.Contact) error {
	existing, err := s.contactRepo.FindContactByAccountAndName(ctx, account.AccountID, incoming.Name)
	if err == nil {
		// Refresh source-owned fields, keep review state.
		if incoming.SFID != "" {
			existing.SFID = incoming.SFID
		}
		if incoming.DOID != "" {
			existing.DOID = incoming.DOID
		}
		existing.Title = incoming.Title
		if incoming.Email != "" {
			existing.Email = incoming.Email
		}
		if incoming.Office != "" {
			existing.Office = incoming.Office
		}
		if incoming.Direct != "" {
			existing.Direct = incoming.Direct
		}
		if incoming.Mobile != "" {
			existing.Mobile = incoming.Mobile
		}
		existing.LastUpdatedAt = s.now()
		return s.contactRepo.UpdateContact(ctx, *existing)
	}

	now := s.now()
	incoming.ContactID = uuid.NewString()
	incoming.AccountID = account.AccountID
	incoming.Rating = domain.RatingUnqualified
	incoming.Priority = domain.RatingUnqualified
	incoming.CreatedAt = now
	incoming.LastUpdatedAt = now
	return s.contactRepo.SaveContact(ctx, incoming)
}

// QualifyContacts rates and prioritizes every stored contact by title
// keywords. Only changed rows are written back.
func (s *syncService) QualifyContacts(ctx context.Context) error {
	contacts, err := s.contactRepo.ListAllContacts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list contacts for qualification: %w", err)
	}

	qualified := 0
	for i := range contacts {
		before := contacts[i]
		Qualify(&contacts[i])
		if contacts[i].Rating == before.Rating && contacts[i].Priority == before.Priority {
			continue
		}

		contacts[i].LastUpdatedAt = s.now()
		if err := s.contactRepo.UpdateContact(ctx, contacts[i]); err != nil {
			s.LogError(ctx, err, "Failed to store qualification", slog.String("contact_id", contacts[i].ContactID))
			continue
		}
		qualified++
	}

	s.LogInfo(ctx, "Contact qualification complete", slog.Int("qualified", qualified))
	return nil
}

// Upload pushes queued records to the CRM. Updated and created contacts are
// deleted locally on success and parked on hold on failure. Accounts with
// both cleanup flags set get the completion push and are dropped from the
// queue.
func (s *syncService) Upload(ctx context.Context) error {
	accounts, err := s.accountRepo.ListAccountsByStatus(ctx, domain.AccountStatusUpload)
	if err != nil {
		return fmt.Errorf("failed to list upload accounts: %w", err)
	}

	for i := range accounts {
		s.uploadAccount(ctx, accounts[i])
	}

	if err := s.completeAccounts(ctx); err != nil {
		return err
	}

	s.LogInfo(ctx, "Upload pass complete", slog.Int("accounts", len(accounts)))
	return nil
}

func (s *syncService) uploadAccount(ctx context.Context, account domain.Account) {
	contacts, err := s.contactRepo.ListContactsByAccount(ctx, account.AccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list contacts for upload", slog.String("account_id", account.AccountID))
		return
	}

	var old, fresh []domain.Contact
	for i := range contacts {
		c := contacts[i]
		if c.Status != domain.ContactStatusUpload {
			continue
		}

		if !c.Patched {
			s.enrichContact(ctx, account, &c)
		}

		switch {
		case c.CType == domain.ContactTypeOld && c.Cleaned:
			old = append(old, c)
		case c.CType == domain.ContactTypeNew:
			fresh = append(fresh, c)
		}
	}

	if len(old) > 0 {
		s.pushBatch(ctx, account, old, s.crm.UpdateContacts)
	}
	if len(fresh) > 0 {
		s.pushBatch(ctx, account, fresh, s.crm.CreateContacts)
	}
}

// pushBatch sends one bulk call and settles the batch locally: rows are
// deleted on success and held on failure.
func (s *syncService) pushBatch(ctx context.Context, account domain.Account, batch []domain.Contact, push func(context.Context, domain.Account, []domain.Contact) error) {
	if err := push(ctx, account, batch); err != nil {
		s.LogError(ctx, err, "CRM push failed",
			slog.String("account_id", account.AccountID),
			slog.Int("batch", len(batch)))
		s.recordError(ctx, err)
		s.holdContacts(ctx, batch)
		return
	}

	for i := range batch {
		if err := s.contactRepo.DeleteContact(ctx, batch[i].ContactID); err != nil {
			s.LogError(ctx, err, "Failed to remove uploaded contact", slog.String("contact_id", batch[i].ContactID))
		}
	}
}

func (s *syncService) holdContacts(ctx context.Context, batch []domain.Contact) {
	for i := range batch {
		batch[i].Status = domain.ContactStatusHold
		batch[i].LastUpdatedAt = s.now()
		if err := s.contactRepo.UpdateContact(ctx, batch[i]); err != nil {
			s.LogError(ctx, err, "Failed to hold contact", slog.String("contact_id", batch[i].ContactID))
		}
	}
}

// enrichContact fills missing phone numbers from the enrichment provider.
// The contact is marked patched regardless of the lookup outcome so the
// provider is only ever billed once per contact.
func (s *syncService) enrichContact(ctx context.Context, account domain.Account, contact *domain.Contact) {
	if contact.Direct == "" || contact.Mobile == "" {
		result, err := s.enrich.Enrich(ctx, contact.Name, account.Name)
		if err != nil {
			s.LogWarn(ctx, "Enrichment lookup failed",
				slog.String("contact_id", contact.ContactID),
				slog.String("error", err.Error()))
		} else if result != nil {
			if result.Direct != "" {
				contact.Direct = result.Direct
			}
			if result.Mobile != "" {
				contact.Mobile = result.Mobile
			}
			if result.Email != "" && contact.Email == "" {
				contact.Email = result.Email
			}
		}
	}

	contact.Patched = true
	contact.LastUpdatedAt = s.now()
	if err := s.contactRepo.UpdateContact(ctx, *contact); err != nil {
		s.LogError(ctx, err, "Failed to store enrichment", slog.String("contact_id", contact.ContactID))
	}
}

// completeAccounts pushes the completion flag for every account a reviewer
// has fully processed and removes the local rows.
func (s *syncService) completeAccounts(ctx context.Context) error {
	completed, err := s.accountRepo.ListCompletedAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list completed accounts: %w", err)
	}

	for i := range completed {
		account := completed[i]
		if err := s.crm.CompleteAccount(ctx, account); err != nil {
			s.LogError(ctx, err, "Completion push failed", slog.String("sfid", account.SFID))
			s.recordError(ctx, err)

			account.Status = domain.AccountStatusHold
			account.LastUpdatedAt = s.now()
			if updErr := s.accountRepo.UpdateAccount(ctx, account); updErr != nil {
				s.LogError(ctx, updErr, "Failed to hold account", slog.String("account_id", account.AccountID))
			}
			continue
		}

		if err := s.accountRepo.DeleteAccount(ctx, account.AccountID); err != nil {
			s.LogError(ctx, err, "Failed to remove completed account", slog.String("account_id", account.AccountID))
		}
	}
	return nil
}
