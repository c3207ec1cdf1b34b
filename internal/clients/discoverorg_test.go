package clients_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/prospectr-app/prospectr/internal/clients"
	"github.com/prospectr-app/prospectr/internal/core/domain"
	"github.com/prospectr-app/prospectr/internal/platform/config"
)

type DiscoverOrgClientTestSuite struct {
	suite.Suite
	server        *httptest.Server
	client        *clients.DiscoverOrgClient
	searchPayload string
}

func (suite *DiscoverOrgClientTestSuite) SetupTest() {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-AUTH-TOKEN", "session-1")
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/v1/search/persons", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), "session-1", r.Header.Get("X-AUTH-TOKEN"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(suite.searchPayload))
	})
	suite.server = httptest.NewServer(mux)

	cfg := &config.Config{
		OrgSearchBaseURL:    suite.server.URL,
		OrgSearchUsername:   "svc",
		OrgSearchPassword:   "pw",
		OrgSearchPartnerKey: "pk",
	}
	client, err := clients.NewDiscoverOrgClient(context.Background(), cfg)
	suite.Require().NoError(err)
	suite.client = client
}

func (suite *DiscoverOrgClientTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *DiscoverOrgClientTestSuite) TestSearchContacts_KeepsOnlyAccountDomainEmails() {
	suite.searchPayload = `{"content": [
		{"id": 101, "fullName": "Jordan Reyes", "title": "Head of Talent", "email": "jordan@acme.example"},
		{"id": 102, "fullName": "Sam Oduya", "title": "Consultant", "email": "sam@agency.example"},
		{"id": 103, "fullName": "No Email", "title": "Director"}
	]}`

	account := domain.Account{SFID: "001A", Domain: "https://www.acme.example/about"}
	contacts, err := suite.client.SearchContacts(context.Background(), account)

	suite.Require().NoError(err)
	suite.Require().Len(contacts, 1)
	suite.Equal("Jordan Reyes", contacts[0].Name)
	suite.Equal("101", contacts[0].DOID)
	suite.Equal(domain.ContactTypeNew, contacts[0].CType)
	suite.Equal(domain.ContactStatusEnrich, contacts[0].Status)
}

func (suite *DiscoverOrgClientTestSuite) TestSearchContacts_BareDomainMatches() {
	suite.searchPayload = `{"content": [
		{"id": 201, "fullName": "Dana Whitfield", "title": "VP People", "email": "dana@ACME.example"}
	]}`

	account := domain.Account{SFID: "001A", Domain: "acme.example"}
	contacts, err := suite.client.SearchContacts(context.Background(), account)

	suite.Require().NoError(err)
	suite.Require().Len(contacts, 1)
	suite.Equal("Dana Whitfield", contacts[0].Name)
}

func TestDiscoverOrgClientTestSuite(t *testing.T) {
	suite.Run(t, new(DiscoverOrgClientTestSuite))
}
