package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/prospectr-app/prospectr/internal/core/domain"
	portsclients "github.com/prospectr-app/prospectr/internal/core/ports/clients"
)

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) FindAccountBySFID(ctx context.Context, sfid string) (*domain.Account, error) {
	args := m.Called(ctx, sfid)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, filters map[string]string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, filters, limit, offset)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByStatus(ctx context.Context, status domain.AccountStatus) ([]domain.Account, error) {
	args := m.Called(ctx, status)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) ListCompletedAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) ListAccountsWithPrep(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// --- Mock ContactRepository ---

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	args := m.Called(ctx, contactID)
	var contact *domain.Contact
	if args.Get(0) != nil {
		contact = args.Get(0).(*domain.Contact)
	}
	return contact, args.Error(1)
}

func (m *MockContactRepository) FindContactByAccountAndName(ctx context.Context, accountID string, name string) (*domain.Contact, error) {
	args := m.Called(ctx, accountID, name)
	var contact *domain.Contact
	if args.Get(0) != nil {
		contact = args.Get(0).(*domain.Contact)
	}
	return contact, args.Error(1)
}

func (m *MockContactRepository) ListContacts(ctx context.Context, filters map[string]string, limit int, offset int) ([]domain.Contact, error) {
	args := m.Called(ctx, filters, limit, offset)
	var contacts []domain.Contact
	if args.Get(0) != nil {
		contacts = args.Get(0).([]domain.Contact)
	}
	return contacts, args.Error(1)
}

func (m *MockContactRepository) ListContactsByAccount(ctx context.Context, accountID string) ([]domain.Contact, error) {
	args := m.Called(ctx, accountID)
	var contacts []domain.Contact
	if args.Get(0) != nil {
		contacts = args.Get(0).([]domain.Contact)
	}
	return contacts, args.Error(1)
}

func (m *MockContactRepository) ListAllContacts(ctx context.Context) ([]domain.Contact, error) {
	args := m.Called(ctx)
	var contacts []domain.Contact
	if args.Get(0) != nil {
		contacts = args.Get(0).([]domain.Contact)
	}
	return contacts, args.Error(1)
}

func (m *MockContactRepository) SaveContact(ctx context.Context, contact domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) UpdateContact(ctx context.Context, contact domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) DeleteContact(ctx context.Context, contactID string) error {
	args := m.Called(ctx, contactID)
	return args.Error(0)
}

// --- Mock ErrorLogRepository ---

type MockErrorLogRepository struct {
	mock.Mock
}

func (m *MockErrorLogRepository) SaveErrorLog(ctx context.Context, entry domain.ErrorLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockErrorLogRepository) ListErrorLogs(ctx context.Context, limit int, offset int) ([]domain.ErrorLog, error) {
	args := m.Called(ctx, limit, offset)
	var entries []domain.ErrorLog
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.ErrorLog)
	}
	return entries, args.Error(1)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByAPIToken(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock CRMClient ---

type MockCRMClient struct {
	mock.Mock
}

func (m *MockCRMClient) FetchTargets(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockCRMClient) FetchDeltaTargets(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockCRMClient) FetchContacts(ctx context.Context, account domain.Account) ([]domain.Contact, error) {
	args := m.Called(ctx, account)
	var contacts []domain.Contact
	if args.Get(0) != nil {
		contacts = args.Get(0).([]domain.Contact)
	}
	return contacts, args.Error(1)
}

func (m *MockCRMClient) CreateContacts(ctx context.Context, account domain.Account, contacts []domain.Contact) error {
	args := m.Called(ctx, account, contacts)
	return args.Error(0)
}

func (m *MockCRMClient) UpdateContacts(ctx context.Context, account domain.Account, contacts []domain.Contact) error {
	args := m.Called(ctx, account, contacts)
	return args.Error(0)
}

func (m *MockCRMClient) CompleteAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// --- Mock OrgSearchClient ---

type MockOrgSearchClient struct {
	mock.Mock
}

func (m *MockOrgSearchClient) SearchContacts(ctx context.Context, account domain.Account) ([]domain.Contact, error) {
	args := m.Called(ctx, account)
	var contacts []domain.Contact
	if args.Get(0) != nil {
		contacts = args.Get(0).([]domain.Contact)
	}
	return contacts, args.Error(1)
}

func (m *MockOrgSearchClient) OrgChart(ctx context.Context, doid string, depth int) (string, error) {
	args := m.Called(ctx, doid, depth)
	return args.String(0), args.Error(1)
}

// --- Mock EnrichClient ---

type MockEnrichClient struct {
	mock.Mock
}

func (m *MockEnrichClient) Enrich(ctx context.Context, fullName, company string) (*portsclients.EnrichResult, error) {
	args := m.Called(ctx, fullName, company)
	var result *portsclients.EnrichResult
	if args.Get(0) != nil {
		result = args.Get(0).(*portsclients.EnrichResult)
	}
	return result, args.Error(1)
}
