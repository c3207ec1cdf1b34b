package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prospectr-app/prospectr/internal/apperrors"
	"github.com/prospectr-app/prospectr/internal/core/domain"
	portsrepo "github.com/prospectr-app/prospectr/internal/core/ports/repositories"
	portssvc "github.com/prospectr-app/prospectr/internal/core/ports/services"
	"github.com/prospectr-app/prospectr/internal/dto"
)

// defaultContactName is the placeholder for manually added contacts awaiting
// review.
const defaultContactName = "New Contact"

// contactService implements portssvc.ContactSvcFacade.
type contactService struct {
	BaseService
	contactRepo portsrepo.ContactRepository
	accountRepo portsrepo.AccountRepository
}

// NewContactService creates the contact service.
func NewContactService(contactRepo portsrepo.ContactRepository, accountRepo portsrepo.AccountRepository) portssvc.ContactSvcFacade {
	return &contactService{contactRepo: contactRepo, accountRepo: accountRepo}
}

var _ portssvc.ContactSvcFacade = (*contactService)(nil)

func (s *contactService) GetContactByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	contact, err := s.contactRepo.FindContactByID(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return contact, nil
}

func (s *contactService) ListContacts(ctx context.Context, filters map[string]string, limit int, offset int) ([]domain.Contact, error) {
	contacts, err := s.contactRepo.ListContacts(ctx, filters, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

func (s *contactService) CreateContact(ctx context.Context, req dto.CreateContactRequest) (*domain.Contact, error) {
	// Manually added contacts must land under a real account.
	if _, err := s.accountRepo.FindAccountByID(ctx, req.AccountID); err != nil {
		return nil, fmt.Errorf("failed to find owning account: %w", err)
	}

	now := time.Now()

	name := req.Name
	if name == "" {
		name = defaultContactName
	}
	ctype := domain.ContactType(req.CType)
	if ctype == "" {
		ctype = domain.ContactTypeNew
	}
	status := domain.ContactStatus(req.Status)
	if status == "" {
		status = domain.ContactStatusReview
	}

	contact := domain.Contact{
		ContactID: uuid.NewString(),
		AccountID: req.AccountID,
		CType:     ctype,
		Status:    status,
		Rating:    domain.RatingUnqualified,
		Priority:  domain.RatingUnqualified,
		Name:      name,
		Title:     req.Title,
		Email:     req.Email,
		Office:    req.Office,
		Direct:    req.Direct,
		Mobile:    req.Mobile,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.contactRepo.SaveContact(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return &contact, nil
}

func (s *contactService) UpdateContact(ctx context.Context, contactID string, req dto.UpdateContactRequest) (*domain.Contact, error) {
	contact, err := s.contactRepo.FindContactByID(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to find contact for update: %w", err)
	}

	if req.Name != nil {
		contact.Name = *req.Name
	}
	if req.Title != nil {
		contact.Title = *req.Title
	}
	if req.Email != nil {
		contact.Email = *req.Email
	}
	if req.Office != nil {
		contact.Office = *req.Office
	}
	if req.Direct != nil {
		contact.Direct = *req.Direct
	}
	if req.Mobile != nil {
		contact.Mobile = *req.Mobile
	}
	contact.LastUpdatedAt = time.Now()

	if err := s.contactRepo.UpdateContact(ctx, *contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	return contact, nil
}

func (s *contactService) DeleteContact(ctx context.Context, contactID string) error {
	if err := s.contactRepo.DeleteContact(ctx, contactID); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}

var contactStatusMarks = map[string]domain.ContactStatus{
	"enrich": domain.ContactStatusEnrich,
	"review": domain.ContactStatusReview,
	"upload": domain.ContactStatusUpload,
	"hold":   domain.ContactStatusHold,
}

func (s *contactService) MarkContact(ctx context.Context, contactID string, mark string) (*domain.Contact, error) {
	contact, err := s.contactRepo.FindContactByID(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to find contact for mark: %w", err)
	}

	switch mark {
	case "cleaned":
		contact.Cleaned = true
	default:
		status, ok := contactStatusMarks[mark]
		if !ok {
			return nil, fmt.Errorf("unknown contact mark %q: %w", mark, apperrors.ErrValidation)
		}
		contact.Status = status
	}
	contact.LastUpdatedAt = time.Now()

	if err := s.contactRepo.UpdateContact(ctx, *contact); err != nil {
		return nil, fmt.Errorf("failed to mark contact: %w", err)
	}
	return contact, nil
}

func (s *contactService) QueueContact(ctx context.Context, contactID string) (*domain.Contact, error) {
	return s.MarkContact(ctx, contactID, "upload")
}
