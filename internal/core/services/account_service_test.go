package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/prospectr-app/prospectr/internal/apperrors"
	"github.com/prospectr-app/prospectr/internal/core/domain"
	portssvc "github.com/prospectr-app/prospectr/internal/core/ports/services"
	"github.com/prospectr-app/prospectr/internal/core/services"
	"github.com/prospectr-app/prospectr/internal/dto"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockContactRepo *MockContactRepository
	mockCRM         *MockCRMClient
	mockOrgSearch   *MockOrgSearchClient
	service         portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockContactRepo = new(MockContactRepository)
	suite.mockCRM = new(MockCRMClient)
	suite.mockOrgSearch = new(MockOrgSearchClient)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockContactRepo, suite.mockCRM, suite.mockOrgSearch)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DefaultsToEnrichStatus() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		SFID:   "001A",
		Name:   "Acme Corp",
		Domain: "acme.example",
	}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountID != "" && a.Status == domain.AccountStatusEnrich
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.AccountStatusEnrich, account.Status)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestMarkAccount_StatusAndFlags() {
	ctx := context.Background()

	stored := &domain.Account{AccountID: "acct-1", Status: domain.AccountStatusEnrich}
	suite.mockAccountRepo.On("FindAccountByID", ctx, "acct-1").Return(stored, nil)
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.Anything).Return(nil)

	account, err := suite.service.MarkAccount(ctx, "acct-1", "queued")
	suite.Require().NoError(err)
	suite.Equal(domain.AccountStatusQueued, account.Status)

	account, err = suite.service.MarkAccount(ctx, "acct-1", "cleaned")
	suite.Require().NoError(err)
	suite.True(account.Cleaned)

	account, err = suite.service.MarkAccount(ctx, "acct-1", "enriched")
	suite.Require().NoError(err)
	suite.True(account.Enriched)
}

func (suite *AccountServiceTestSuite) TestMarkAccount_UnknownMark() {
	ctx := context.Background()
	stored := &domain.Account{AccountID: "acct-1", Status: domain.AccountStatusEnrich}
	suite.mockAccountRepo.On("FindAccountByID", ctx, "acct-1").Return(stored, nil).Once()

	_, err := suite.service.MarkAccount(ctx, "acct-1", "bogus")

	suite.Require().Error(err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestQueueContacts_FlipsAccountAndContacts() {
	ctx := context.Background()

	stored := &domain.Account{AccountID: "acct-1", Status: domain.AccountStatusQueued}
	suite.mockAccountRepo.On("FindAccountByID", ctx, "acct-1").Return(stored, nil).Once()

	contacts := []domain.Contact{
		{ContactID: "cont-1", AccountID: "acct-1", Status: domain.ContactStatusReview},
		{ContactID: "cont-2", AccountID: "acct-1", Status: domain.ContactStatusEnrich},
	}
	suite.mockContactRepo.On("ListContactsByAccount", ctx, "acct-1").Return(contacts, nil).Once()
	suite.mockContactRepo.On("UpdateContact", ctx, mock.MatchedBy(func(c domain.Contact) bool {
		return c.Status == domain.ContactStatusUpload
	})).Return(nil).Twice()

	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountID == "acct-1" && a.Status == domain.AccountStatusUpload
	})).Return(nil).Once()

	err := suite.service.QueueContacts(ctx, "acct-1")

	suite.Require().NoError(err)
	suite.mockContactRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCancelEnrichment_PushesCompletionThenDeletes() {
	ctx := context.Background()

	stored := &domain.Account{AccountID: "acct-1", SFID: "001A"}
	suite.mockAccountRepo.On("FindAccountByID", ctx, "acct-1").Return(stored, nil).Once()
	suite.mockCRM.On("CompleteAccount", ctx, *stored).Return(nil).Once()
	suite.mockAccountRepo.On("DeleteAccount", ctx, "acct-1").Return(nil).Once()

	err := suite.service.CancelEnrichment(ctx, "acct-1")

	suite.Require().NoError(err)
	suite.mockCRM.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCancelEnrichment_CRMFailureKeepsAccount() {
	ctx := context.Background()

	stored := &domain.Account{AccountID: "acct-1", SFID: "001A"}
	suite.mockAccountRepo.On("FindAccountByID", ctx, "acct-1").Return(stored, nil).Once()
	suite.mockCRM.On("CompleteAccount", ctx, *stored).Return(assert.AnError).Once()

	err := suite.service.CancelEnrichment(ctx, "acct-1")

	suite.Require().Error(err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrExternal)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "DeleteAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestGetHierarchy_FetchesAndCaches() {
	ctx := context.Background()

	stored := &domain.Account{AccountID: "acct-1", DOID: "4242"}
	suite.mockAccountRepo.On("FindAccountByID", ctx, "acct-1").Return(stored, nil).Once()
	suite.mockOrgSearch.On("OrgChart", ctx, "4242", 7).Return(`[{"id":1}]`, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Hierarchy == `[{"id":1}]`
	})).Return(nil).Once()

	hierarchy, err := suite.service.GetHierarchy(ctx, "acct-1")

	suite.Require().NoError(err)
	suite.Equal(`[{"id":1}]`, hierarchy)
	suite.mockOrgSearch.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetHierarchy_ServedFromCache() {
	ctx := context.Background()

	stored := &domain.Account{AccountID: "acct-1", DOID: "4242", Hierarchy: "cached"}
	suite.mockAccountRepo.On("FindAccountByID", ctx, "acct-1").Return(stored, nil).Once()

	hierarchy, err := suite.service.GetHierarchy(ctx, "acct-1")

	suite.Require().NoError(err)
	suite.Equal("cached", hierarchy)
	suite.mockOrgSearch.AssertNotCalled(suite.T(), "OrgChart", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestGetHierarchy_NoProviderID() {
	ctx := context.Background()

	stored := &domain.Account{AccountID: "acct-1"}
	suite.mockAccountRepo.On("FindAccountByID", ctx, "acct-1").Return(stored, nil).Once()

	_, err := suite.service.GetHierarchy(ctx, "acct-1")

	suite.Require().Error(err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
