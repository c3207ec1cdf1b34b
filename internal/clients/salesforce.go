package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"

	"github.com/prospectr-app/prospectr/internal/core/domain"
	portsclients "github.com/prospectr-app/prospectr/internal/core/ports/clients"
	"github.com/prospectr-app/prospectr/internal/platform/config"
)

// crmRequestsPerSecond keeps well inside the Salesforce concurrent API
// request allowance for a single integration user.
const crmRequestsPerSecond = 5

// SalesforceClient implements portsclients.CRMClient against the Salesforce
// REST API. Authentication uses the OAuth2 resource-owner password grant;
// the security token is appended to the password as Salesforce requires.
type SalesforceClient struct {
	httpClient  *http.Client
	instanceURL string
	apiVersion  string
	defaultPrep string
}

var _ portsclients.CRMClient = (*SalesforceClient)(nil)

// NewSalesforceClient authenticates against the configured login endpoint
// and returns a ready client. The token source refreshes transparently.
func NewSalesforceClient(ctx context.Context, cfg *config.Config) (*SalesforceClient, error) {
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.CRMClientID,
		ClientSecret: cfg.CRMClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL: cfg.CRMLoginURL + "/services/oauth2/token",
		},
	}

	base := newThrottledClient(crmRequestsPerSecond, crmRequestsPerSecond)
	ctx = context.WithValue(ctx, oauth2.HTTPClient, base)

	token, err := oauthCfg.PasswordCredentialsToken(ctx, cfg.CRMUsername, cfg.CRMPassword+cfg.CRMSecurityToken)
	if err != nil {
		return nil, fmt.Errorf("salesforce login failed: %w", err)
	}

	instanceURL, _ := token.Extra("instance_url").(string)
	if instanceURL == "" {
		return nil, fmt.Errorf("salesforce login response missing instance_url")
	}

	return &SalesforceClient{
		httpClient:  oauth2.NewClient(ctx, oauthCfg.TokenSource(ctx, token)),
		instanceURL: strings.TrimRight(instanceURL, "/"),
		apiVersion:  cfg.CRMAPIVersion,
		defaultPrep: cfg.DefaultPrepID,
	}, nil
}

// targetQuery collects accounts where enrichment has been requested but not
// completed.
const targetQuery = `
	SELECT Id, DSCORGPKG__DiscoverOrg_ID__c, Name, Phone, Website,
	       Enrichment_Requested_By__c
	FROM Account
	WHERE Enrichment_Requested__c = True
	AND Enrichment_Complete__c = False`

// deltaQuery collects contact-less top-tier commercial accounts, capped per
// pass so the delta segment backfills gradually.
const deltaQuery = `
	SELECT Id, OwnerId, DSCORGPKG__DiscoverOrg_ID__c, Name, Phone, Website
	FROM Account
	WHERE Id NOT IN (SELECT AccountId FROM Contact)
	AND Market_Segment__c = 'Commercial ENT'
	AND OB_Tier__c = 'Tier 1'
	LIMIT 100`

type sfAccountRecord struct {
	ID      string `json:"Id"`
	DOID    string `json:"DSCORGPKG__DiscoverOrg_ID__c"`
	OwnerID string `json:"OwnerId"`
	ReqBy   string `json:"Enrichment_Requested_By__c"`
	Name    string `json:"Name"`
	Phone   string `json:"Phone"`
	Website string `json:"Website"`
}

type sfContactRecord struct {
	ID          string `json:"Id"`
	Name        string `json:"Name"`
	Title       string `json:"Title"`
	Phone       string `json:"Phone"`
	MobilePhone string `json:"MobilePhone"`
	Email       string `json:"Email"`
}

func (c *SalesforceClient) FetchTargets(ctx context.Context) ([]domain.Account, error) {
	var result struct {
		Records []sfAccountRecord `json:"records"`
	}
	if err := c.query(ctx, targetQuery, &result); err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(result.Records))
	for _, r := range result.Records {
		prep := r.ReqBy
		if prep == "" {
			prep = c.defaultPrep
		}
		accounts = append(accounts, domain.Account{
			SFID:   r.ID,
			DOID:   r.DOID,
			Prep:   prep,
			Status: domain.AccountStatusEnrich,
			Name:   r.Name,
			Domain: r.Website,
			Phone:  r.Phone,
		})
	}
	return accounts, nil
}

func (c *SalesforceClient) FetchDeltaTargets(ctx context.Context) ([]domain.Account, error) {
	var result struct {
		Records []sfAccountRecord `json:"records"`
	}
	if err := c.query(ctx, deltaQuery, &result); err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(result.Records))
	for _, r := range result.Records {
		prep := r.OwnerID
		if prep == "" {
			prep = c.defaultPrep
		}
		accounts = append(accounts, domain.Account{
			SFID:   r.ID,
			DOID:   r.DOID,
			Prep:   prep,
			Status: domain.AccountStatusDeltaNew,
			Name:   r.Name,
			Domain: r.Website,
			Phone:  r.Phone,
		})
	}
	return accounts, nil
}

func (c *SalesforceClient) FetchContacts(ctx context.Context, account domain.Account) ([]domain.Contact, error) {
	soql := fmt.Sprintf(`
		SELECT Id, Name, Title, Phone, MobilePhone, Email
		FROM Contact
		WHERE AccountId = '%s'`, soqlEscape(account.SFID))

	var result struct {
		Records []sfContactRecord `json:"records"`
	}
	if err := c.query(ctx, soql, &result); err != nil {
		return nil, err
	}

	contacts := make([]domain.Contact, 0, len(result.Records))
	for _, r := range result.Records {
		// CRM-sourced contacts are already accepted records, so they go
		// straight to the upload lane once reviewed.
		contacts = append(contacts, domain.Contact{
			SFID:   r.ID,
			CType:  domain.ContactTypeOld,
			Status: domain.ContactStatusUpload,
			Name:   r.Name,
			Title:  r.Title,
			Office: account.Phone,
			Direct: r.Phone,
			Mobile: r.MobilePhone,
			Email:  r.Email,
		})
	}
	return contacts, nil
}

// sfCompositeRecord is one entry in a composite sobjects payload.
type sfCompositeRecord map[string]any

func (c *SalesforceClient) CreateContacts(ctx context.Context, account domain.Account, contacts []domain.Contact) error {
	records := make([]sfCompositeRecord, 0, len(contacts))
	for _, contact := range contacts {
		first, last := splitName(contact.Name)
		records = append(records, sfCompositeRecord{
			"attributes":  map[string]string{"type": "Contact"},
			"AccountId":   account.SFID,
			"OwnerId":     account.Prep,
			"FirstName":   first,
			"LastName":    last,
			"Title":       contact.Title,
			"Phone":       contact.Direct,
			"MobilePhone": contact.Mobile,
			"Email":       contact.Email,
		})
	}
	return c.composite(ctx, http.MethodPost, records)
}

func (c *SalesforceClient) UpdateContacts(ctx context.Context, account domain.Account, contacts []domain.Contact) error {
	records := make([]sfCompositeRecord, 0, len(contacts))
	for _, contact := range contacts {
		direct := contact.Direct
		if direct == "" {
			direct = account.Phone
		}
		records = append(records, sfCompositeRecord{
			"attributes":  map[string]string{"type": "Contact"},
			"Id":          contact.SFID,
			"OwnerId":     account.Prep,
			"Title":       contact.Title,
			"Phone":       direct,
			"MobilePhone": contact.Mobile,
			"Email":       contact.Email,
		})
	}
	return c.composite(ctx, http.MethodPatch, records)
}

func (c *SalesforceClient) CompleteAccount(ctx context.Context, account domain.Account) error {
	endpoint := fmt.Sprintf("%s/services/data/%s/sobjects/Account/%s", c.instanceURL, c.apiVersion, account.SFID)

	payload, err := json.Marshal(map[string]any{"Enrichment_Complete__c": true})
	if err != nil {
		return fmt.Errorf("salesforce: encode completion: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("salesforce: complete account: %w", err)
	}
	body := drainBody(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError("salesforce", resp, body)
	}
	return nil
}

// query runs a SOQL query and decodes the result envelope into out.
func (c *SalesforceClient) query(ctx context.Context, soql string, out any) error {
	endpoint := fmt.Sprintf("%s/services/data/%s/query?q=%s", c.instanceURL, c.apiVersion, url.QueryEscape(strings.TrimSpace(soql)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("salesforce: query: %w", err)
	}
	body := drainBody(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return statusError("salesforce", resp, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("salesforce: decode query result: %w", err)
	}
	return nil
}

// composite sends a bulk create or update through the composite sobjects
// endpoint. allOrNone makes a partial failure fail the whole batch, which is
// what the upload pass expects.
func (c *SalesforceClient) composite(ctx context.Context, method string, records []sfCompositeRecord) error {
	endpoint := fmt.Sprintf("%s/services/data/%s/composite/sobjects", c.instanceURL, c.apiVersion)

	payload, err := json.Marshal(map[string]any{
		"allOrNone": true,
		"records":   records,
	})
	if err != nil {
		return fmt.Errorf("salesforce: encode composite payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("salesforce: composite %s: %w", method, err)
	}
	body := drainBody(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return statusError("salesforce", resp, body)
	}

	var results []struct {
		Success bool `json:"success"`
		Errors  []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &results); err != nil {
		return fmt.Errorf("salesforce: decode composite result: %w", err)
	}
	for _, r := range results {
		if !r.Success {
			msg := "unknown error"
			if len(r.Errors) > 0 {
				msg = r.Errors[0].Message
			}
			return fmt.Errorf("salesforce: composite record failed: %s", msg)
		}
	}
	return nil
}

// splitName derives CRM first/last name fields from a stored full name.
func splitName(fullName string) (first, last string) {
	parts := strings.Fields(fullName)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], parts[len(parts)-1]
	}
}

// soqlEscape quotes single quotes and backslashes in a SOQL string literal.
func soqlEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
