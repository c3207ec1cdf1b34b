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

type ContactServiceTestSuite struct {
	suite.Suite
	mockContactRepo *MockContactRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.ContactSvcFacade
}

func (suite *ContactServiceTestSuite) SetupTest() {
	suite.mockContactRepo = new(MockContactRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewContactService(suite.mockContactRepo, suite.mockAccountRepo)
}

func (suite *ContactServiceTestSuite) TestCreateContact_DefaultsForManualAdd() {
	ctx := context.Background()

	account := &domain.Account{AccountID: "acct-1"}
	suite.mockAccountRepo.On("FindAccountByID", ctx, "acct-1").Return(account, nil).Once()

	suite.mockContactRepo.On("SaveContact", ctx, mock.MatchedBy(func(c domain.Contact) bool {
		return c.ContactID != "" &&
			c.AccountID == "acct-1" &&
			c.Name == "New Contact" && // placeholder for the add-and-review flow
			c.CType == domain.ContactTypeNew &&
			c.Status == domain.ContactStatusReview &&
			c.Rating == domain.RatingUnqualified &&
			c.Priority == domain.RatingUnqualified
	})).Return(nil).Once()

	contact, err := suite.service.CreateContact(ctx, dto.CreateContactRequest{AccountID: "acct-1"})

	suite.Require().NoError(err)
	suite.Equal("New Contact", contact.Name)
	suite.mockContactRepo.AssertExpectations(suite.T())
}

func (suite *ContactServiceTestSuite) TestCreateContact_UnknownAccount() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	contact, err := suite.service.CreateContact(ctx, dto.CreateContactRequest{AccountID: "nope"})

	suite.Require().Error(err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	suite.Nil(contact)
	suite.mockContactRepo.AssertNotCalled(suite.T(), "SaveContact", mock.Anything, mock.Anything)
}

func (suite *ContactServiceTestSuite) TestUpdateContact_AppliesOnlyProvidedFields() {
	ctx := context.Background()

	stored := &domain.Contact{
		ContactID: "cont-1",
		Name:      "Jane Doe",
		Title:     "Director",
		Email:     "jane@acme.example",
	}
	suite.mockContactRepo.On("FindContactByID", ctx, "cont-1").Return(stored, nil).Once()

	newTitle := "VP of Talent"
	suite.mockContactRepo.On("UpdateContact", ctx, mock.MatchedBy(func(c domain.Contact) bool {
		return c.Title == newTitle &&
			c.Name == "Jane Doe" &&
			c.Email == "jane@acme.example"
	})).Return(nil).Once()

	contact, err := suite.service.UpdateContact(ctx, "cont-1", dto.UpdateContactRequest{Title: &newTitle})

	suite.Require().NoError(err)
	suite.Equal(newTitle, contact.Title)
	suite.mockContactRepo.AssertExpectations(suite.T())
}

func (suite *ContactServiceTestSuite) TestMarkContact_CleanedFlag() {
	ctx := context.Background()

	stored := &domain.Contact{ContactID: "cont-1", Status: domain.ContactStatusReview}
	suite.mockContactRepo.On("FindContactByID", ctx, "cont-1").Return(stored, nil).Once()
	suite.mockContactRepo.On("UpdateContact", ctx, mock.MatchedBy(func(c domain.Contact) bool {
		return c.Cleaned && c.Status == domain.ContactStatusReview
	})).Return(nil).Once()

	contact, err := suite.service.MarkContact(ctx, "cont-1", "cleaned")

	suite.Require().NoError(err)
	suite.True(contact.Cleaned)
}

func (suite *ContactServiceTestSuite) TestQueueContact_SetsUploadStatus() {
	ctx := context.Background()

	stored := &domain.Contact{ContactID: "cont-1", Status: domain.ContactStatusReview}
	suite.mockContactRepo.On("FindContactByID", ctx, "cont-1").Return(stored, nil).Once()
	suite.mockContactRepo.On("UpdateContact", ctx, mock.MatchedBy(func(c domain.Contact) bool {
		return c.Status == domain.ContactStatusUpload
	})).Return(nil).Once()

	contact, err := suite.service.QueueContact(ctx, "cont-1")

	suite.Require().NoError(err)
	suite.Equal(domain.ContactStatusUpload, contact.Status)
}

func (suite *ContactServiceTestSuite) TestMarkContact_UnknownMark() {
	ctx := context.Background()

	stored := &domain.Contact{ContactID: "cont-1", Status: domain.ContactStatusReview}
	suite.mockContactRepo.On("FindContactByID", ctx, "cont-1").Return(stored, nil).Once()

	_, err := suite.service.MarkContact(ctx, "cont-1", "bogus")

	suite.Require().Error(err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockContactRepo.AssertNotCalled(suite.T(), "UpdateContact", mock.Anything, mock.Anything)
}

func TestContactServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContactServiceTestSuite))
}
